// Command partassist answers questions about refrigerator and
// dishwasher replacement parts, from the command line or over HTTP.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	catalogfile "github.com/reparo-labs/partassist/internal/adapters/driven/catalog/file"
	"github.com/reparo-labs/partassist/internal/adapters/driven/catalog/sqlite"
	configfile "github.com/reparo-labs/partassist/internal/adapters/driven/config/file"
	"github.com/reparo-labs/partassist/internal/adapters/driven/llm/openai"
	"github.com/reparo-labs/partassist/internal/adapters/driven/vector/chroma"
	"github.com/reparo-labs/partassist/internal/adapters/driving/cli"
	"github.com/reparo-labs/partassist/internal/core/ports/driven"
	"github.com/reparo-labs/partassist/internal/core/services"
	"github.com/reparo-labs/partassist/internal/logger"
)

// version is set at build time:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

// Default catalog snapshot locations, relative to the working directory.
const (
	defaultPartsPath      = "data/part_id_map.json"
	defaultModelPartsPath = "data/model_to_parts_map.json"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real env vars win over file values.
	_ = godotenv.Load()

	config, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}

	prompts, err := configfile.NewPromptStore(config.GetString("prompts.dir"))
	if err != nil {
		return fmt.Errorf("init prompts: %w", err)
	}
	defer prompts.Close()

	catalog, compat, err := buildCatalog(config)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	llm, err := buildLLM(config)
	if err != nil {
		return fmt.Errorf("init llm: %w", err)
	}
	defer llm.Close()

	vector := buildVector(config)
	if vector != nil {
		defer vector.Close()
	}

	classifier := services.NewClassifier(llm, prompts, config.GetBool("llm.retry_transient"))
	router := services.NewRouter(catalog, compat, vector, nil, config.GetInt("search.top_k"))
	synthesizer := services.NewSynthesizer(llm, prompts)
	pipeline := services.NewPipeline(classifier, router, synthesizer)

	cli.SetServices(pipeline, config)
	cli.SetVersion(version)
	return cli.Execute()
}

// buildCatalog loads part and compatibility data. A configured sqlite
// snapshot takes precedence over the JSON exports.
func buildCatalog(config driven.ConfigStore) (driven.CatalogIndex, driven.CompatibilityIndex, error) {
	if path := config.GetString("catalog.sqlite_path"); path != "" {
		catalog, compat, err := sqlite.Load(path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Loaded %d parts, %d models from %s", catalog.Len(), compat.Models(), path)
		return catalog, compat, nil
	}

	partsPath := config.GetString("catalog.parts_path")
	if partsPath == "" {
		partsPath = defaultPartsPath
	}
	modelPartsPath := config.GetString("catalog.model_parts_path")
	if modelPartsPath == "" {
		modelPartsPath = defaultModelPartsPath
	}

	catalog, err := catalogfile.LoadCatalog(partsPath)
	if err != nil {
		return nil, nil, err
	}
	compat, err := catalogfile.LoadCompatibility(modelPartsPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded %d parts, %d models", catalog.Len(), compat.Models())
	return catalog, compat, nil
}

func buildLLM(config driven.ConfigStore) (*openai.LLMService, error) {
	keyEnv := config.GetString("llm.api_key_env")
	if keyEnv == "" {
		keyEnv = "DEEPSEEK_API_KEY"
	}
	apiKey := os.Getenv(keyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("missing API key: set %s", keyEnv)
	}

	return openai.NewLLMService(openai.Config{
		APIKey:    apiKey,
		BaseURL:   config.GetString("llm.base_url"),
		Model:     config.GetString("llm.model"),
		Timeout:   time.Duration(config.GetInt("llm.timeout_secs")) * time.Second,
		RateLimit: config.GetFloat("llm.rate_limit_rps"),
	})
}

// buildVector returns nil when no vector store is configured. The
// router degrades semantic retrieval rather than failing.
func buildVector(config driven.ConfigStore) driven.VectorSearch {
	url := config.GetString("vector.url")
	if url == "" {
		logger.Debug("No vector.url configured, semantic search degraded")
		return nil
	}
	return chroma.NewClient(chroma.Config{
		URL:        url,
		Collection: config.GetString("vector.collection"),
		Timeout:    time.Duration(config.GetInt("vector.timeout_secs")) * time.Second,
	})
}
