package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 9000
llm:
  model: "gemini-2.0-flash"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Cache.DatabasePath == "" {
		t.Error("cache database_path should be defaulted")
	}
	if cfg.Debug {
		t.Error("debug should default to false when unset")
	}
}

func TestLoad_envOverridesAPIKey(t *testing.T) {
	path := writeConfig(t, `
llm:
  api_key: "from-file"
`)
	t.Setenv("GEMINI_API_KEY", "from-env")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM.APIKey != "from-env" {
		t.Errorf("api key = %q, want env override", cfg.LLM.APIKey)
	}
}

func TestLoad_expandPathDotSlashRelativeToConfigDir(t *testing.T) {
	path := writeConfig(t, `
cache:
  database_path: "./data/cache.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(filepath.Dir(path), "data", "cache.db")
	if cfg.Cache.DatabasePath != want {
		t.Errorf("cache database_path = %s, want %s", cfg.Cache.DatabasePath, want)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if cfg.Server.Host != "localhost" {
		t.Errorf("default host: got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 300 {
		t.Errorf("default request_timeout: got %d", cfg.Server.RequestTimeout)
	}
	if len(cfg.CORS.Origins) != 3 {
		t.Errorf("default CORS origins: got %v", cfg.CORS.Origins)
	}
	if cfg.Cache.TTL != 3600 {
		t.Errorf("default cache TTL: got %d", cfg.Cache.TTL)
	}
	if cfg.LLM.Model != "gemini-2.0-flash" {
		t.Errorf("default model: got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("default temperature: got %f", cfg.LLM.Temperature)
	}
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("default embedding provider: got %s", cfg.Embedding.Provider)
	}
	if cfg.Embedding.Dimensions != 384 {
		t.Errorf("default dimensions: got %d", cfg.Embedding.Dimensions)
	}
}

func TestCacheConfig_EnabledOrDefault(t *testing.T) {
	t.Run("nil_returns_true", func(t *testing.T) {
		c := &CacheConfig{}
		if !c.EnabledOrDefault() {
			t.Error("EnabledOrDefault() = false, want true")
		}
	})
	t.Run("false_returns_false", func(t *testing.T) {
		f := false
		c := &CacheConfig{Enabled: &f}
		if c.EnabledOrDefault() {
			t.Error("EnabledOrDefault() = true, want false")
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaulted config invalid: %v", err)
	}

	cfg.Embedding.Provider = "word2vec"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider accepted")
	}

	cfg.Embedding.Provider = "onnx"
	cfg.Embedding.ModelPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("onnx provider without model_path accepted")
	}

	cfg.Embedding.Provider = "mock"
	cfg.Server.Port = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative port accepted")
	}
}
