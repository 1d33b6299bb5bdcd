package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	LocalStoreDir string

	DatabaseURL string

	ParserEngine string

	LLMModel     string
	OpenAIAPIKey string

	EmbeddingModel   string
	EmbeddingBaseURL string

	TaxonomyPath  string
	SemanticScope string
	Threshold     float64
	TopK          int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))

	return Config{
		Port:             getEnv("PORT", "8080"),
		CORSAllowOrigin:  splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:              env,
		LocalStoreDir:    getEnv("LOCAL_STORE_DIR", "./uploads"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		ParserEngine:     normalizeEngine(getEnv("PARSER_ENGINE", "heuristic")),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		EmbeddingModel:   getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbeddingBaseURL: getEnv("EMBEDDING_BASE_URL", ""),
		TaxonomyPath:     getEnv("TAXONOMY_PATH", "skills/skill_embeddings.json"),
		SemanticScope:    normalizeScope(getEnv("SEMANTIC_SCOPE", "document")),
		Threshold:        getEnvFloat("SEMANTIC_THRESHOLD", 0.45),
		TopK:             getEnvInt("SEMANTIC_TOP_K", 15),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid float: %v", key, err)
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "llm":
		return "llm"
	default:
		return "heuristic"
	}
}

func normalizeScope(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "skills":
		return "skills"
	default:
		return "document"
	}
}
