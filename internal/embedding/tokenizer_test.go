package embedding

import (
	"context"
	"testing"
)

func TestSimpleTokenizer_Tokenize(t *testing.T) {
	tok := &SimpleTokenizer{}
	inputIDs, attentionMask, tokenTypeIDs := tok.Tokenize("hello world", 8)
	if len(inputIDs) != 8 || len(attentionMask) != 8 || len(tokenTypeIDs) != 8 {
		t.Fatalf("lengths: %d %d %d", len(inputIDs), len(attentionMask), len(tokenTypeIDs))
	}
	if inputIDs[0] != 101 {
		t.Errorf("missing [CLS]: %d", inputIDs[0])
	}
	if inputIDs[3] != 102 {
		t.Errorf("missing [SEP] after two words: %d", inputIDs[3])
	}
	if attentionMask[4] != 0 {
		t.Error("padding should have zero attention")
	}
}

func TestSimpleTokenizer_TruncatesLongInput(t *testing.T) {
	tok := &SimpleTokenizer{}
	inputIDs, _, _ := tok.Tokenize("a b c d e f g h", 4)
	if len(inputIDs) != 4 {
		t.Fatalf("length: %d", len(inputIDs))
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("payments") != HashString("payments") {
		t.Error("hash not deterministic")
	}
	if HashString("payments") < 0 {
		t.Error("hash should be non-negative")
	}
}

func TestMockEmbedder_DeterministicUnitVectors(t *testing.T) {
	e := NewMockEmbedder(16)
	ctx := context.Background()

	a1, err := e.Embed(ctx, "payment processing")
	if err != nil {
		t.Fatal(err)
	}
	a2, _ := e.Embed(ctx, "payment processing")
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatal("same text produced different embeddings")
		}
	}

	var sum float64
	for _, v := range a1 {
		sum += float64(v) * float64(v)
	}
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("embedding not unit length: %f", sum)
	}

	batch, err := e.EmbedBatch(ctx, []string{"x", "y", "z"})
	if err != nil {
		t.Fatal(err)
	}
	if len(batch) != 3 {
		t.Fatalf("batch size: %d", len(batch))
	}
	single, _ := e.Embed(ctx, "y")
	for i := range single {
		if batch[1][i] != single[i] {
			t.Fatal("batch order not preserved")
		}
	}
}
