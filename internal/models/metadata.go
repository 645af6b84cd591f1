// Package models defines core data structures for corpus records, chat requests, and responses.
package models

// Category identifies the knowledge corpus category a record belongs to.
type Category string

const (
	CategoryArchitecture Category = "architecture"
	CategoryPattern      Category = "pattern"
	CategoryTechStack    Category = "tech_stack"
)

// Metadata describes a corpus record for filtering. Type and Name are always
// present; Extra carries category-specific fields (e.g. "scale" for
// architectures, "category" for patterns). Metadata is never used for ranking.
type Metadata struct {
	Type  Category          `json:"type"`
	Name  string            `json:"name"`
	Extra map[string]string `json:"extra,omitempty"`
}

// Value returns the metadata value for key, checking the well-known fields
// before Extra. The second return reports whether the key exists.
func (m Metadata) Value(key string) (string, bool) {
	switch key {
	case "type":
		return string(m.Type), m.Type != ""
	case "name":
		return m.Name, m.Name != ""
	}
	v, ok := m.Extra[key]
	return v, ok
}

// Matches reports whether every key/value pair in where matches this metadata
// exactly. A key absent from the record never matches. An empty or nil filter
// matches everything.
func (m Metadata) Matches(where map[string]string) bool {
	for k, want := range where {
		got, ok := m.Value(k)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Match is a single retrieval hit: the document text, its metadata, and the
// cosine distance to the query (0 = identical, larger = less similar).
type Match struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
	Distance float64  `json:"distance"`
}
