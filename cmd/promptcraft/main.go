// Package main is the PromptCraft server entry point.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/promptcraft/backend/internal/agent"
	"github.com/promptcraft/backend/internal/cache"
	"github.com/promptcraft/backend/internal/config"
	"github.com/promptcraft/backend/internal/embedding"
	"github.com/promptcraft/backend/internal/knowledge"
	"github.com/promptcraft/backend/internal/llm"
	"github.com/promptcraft/backend/internal/server"
	"github.com/promptcraft/backend/internal/vector"
	"github.com/promptcraft/backend/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/promptcraft/config.yaml"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "server":
		runServer()
	case "version", "--version", "-v":
		fmt.Printf("promptcraft version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`Usage: promptcraft <command> [flags]

Commands:
  server    start the API server
  version   print the version
  help      show this help

Server flags:
  -config   config file path (default ` + defaultConfigPath + `)
  -debug    enable debug logging
`)
}

// loadConfig loads config from path. When path is the default, a config.yaml
// in the current directory takes precedence so development runs pick up the
// project config.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.String("embedding_provider", cfg.Embedding.Provider),
		zap.Bool("debug", debugMode),
	)

	ctx := context.Background()

	embedder := newEmbedder(ctx, cfg, logger)
	defer embedder.Close()

	store := vector.NewStore(embedder)
	kb := knowledge.NewService(store, logger)
	if err := kb.Initialize(ctx); err != nil {
		// Degraded start: endpoints work, retrieval context is empty.
		logger.Warn("knowledge base initialization failed", zap.Error(err))
	}

	generator := newGenerator(ctx, cfg, logger)
	defer generator.Close()

	var responseCache *cache.Cache
	if cfg.Cache.EnabledOrDefault() {
		responseCache, err = cache.New(cfg.Cache.DatabasePath)
		if err != nil {
			logger.Warn("response cache unavailable, continuing without", zap.Error(err))
			responseCache = nil
		} else {
			defer responseCache.Close()
		}
	}

	srv := server.NewServer(
		agent.NewArchitectureAgent(generator, kb, logger),
		agent.NewUIResearchAgent(generator, logger),
		kb,
		responseCache,
		cfg,
		logger,
	)
	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(shutdownCtx)
}

// newEmbedder builds the configured embedding provider, falling back to the
// deterministic mock when a real provider cannot start.
func newEmbedder(ctx context.Context, cfg *config.Config, logger *zap.Logger) embedding.Embedder {
	switch cfg.Embedding.Provider {
	case "onnx":
		onnxEmbedder, err := embedding.NewONNXEmbedder(
			cfg.Embedding.ModelPath,
			cfg.Embedding.Dimensions,
			cfg.Embedding.MaxTokens,
			cfg.Embedding.CacheSize,
		)
		if err != nil {
			logger.Warn("ONNX embedder unavailable, falling back to mock", zap.Error(err))
			return embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
		}
		return onnxEmbedder
	case "gemini":
		geminiEmbedder := embedding.NewGeminiEmbedder(
			cfg.LLM.APIKey,
			cfg.Embedding.Model,
			cfg.Embedding.Dimensions,
			cfg.Embedding.CacheSize,
		)
		if err := geminiEmbedder.Connect(ctx); err != nil {
			logger.Warn("Gemini embedder unavailable, falling back to mock", zap.Error(err))
			return embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
		}
		return geminiEmbedder
	default:
		return embedding.NewMockEmbedder(cfg.Embedding.Dimensions)
	}
}

// newGenerator builds the Gemini generator, or the mock when no API key is
// configured so the server still starts in development.
func newGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) llm.Generator {
	if cfg.LLM.APIKey == "" {
		logger.Warn("no API key configured, using mock generator")
		return llm.NewMockGenerator("")
	}
	gen, err := llm.NewGeminiGenerator(
		cfg.LLM.APIKey,
		cfg.LLM.Model,
		cfg.LLM.Temperature,
		cfg.LLM.MaxTokens,
		logger,
	)
	if err != nil {
		logger.Warn("Gemini generator misconfigured, using mock", zap.Error(err))
		return llm.NewMockGenerator("")
	}
	if err := gen.Connect(ctx); err != nil {
		logger.Warn("Gemini generator unavailable, using mock", zap.Error(err))
		return llm.NewMockGenerator("")
	}
	return gen
}
