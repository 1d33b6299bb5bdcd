package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/descriptions"
	"resume-parser/internal/embedding"
	"resume-parser/internal/llm"
	openai "resume-parser/internal/llm/openai"
	"resume-parser/internal/parser"
	"resume-parser/internal/resumes"
	"resume-parser/internal/shared/config"
	"resume-parser/internal/shared/metrics"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
	"resume-parser/internal/shared/storage/db"
	localstore "resume-parser/internal/shared/storage/object/local"
	"resume-parser/internal/skills"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// The taxonomy and embedding tables are loaded here, before the first
// request is served; every pipeline dependency is constructed explicitly
// and injected.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	store := localstore.New(cfg.LocalStoreDir)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
			dbConn = nil
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	extractor := buildExtractor(cfg)
	llmClient := buildLLMClient(cfg)

	resumeHandler := resumes.NewHandler(store, repo, extractor, llmClient, cfg.ParserEngine)
	descriptionHandler := descriptions.NewHandler(llmClient)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	resumeHandler.RegisterRoutes(api)
	descriptionHandler.RegisterRoutes(api)

	return r
}

// buildExtractor assembles the heuristic pipeline. A missing taxonomy or
// embedding credentials degrade skill matching rather than blocking
// startup: no taxonomy means no skill lists, no embedder means
// keyword-only matching.
func buildExtractor(cfg config.Config) *parser.Extractor {
	var matcher *skills.Matcher

	tax, err := skills.LoadTaxonomy(cfg.TaxonomyPath)
	if err != nil {
		log.Printf("taxonomy unavailable, skill matching disabled: %v", err)
	} else {
		var embedder embedding.TextEmbedder
		if cfg.OpenAIAPIKey != "" {
			client, err := embedding.NewClient(cfg.OpenAIAPIKey, cfg.EmbeddingModel, cfg.EmbeddingBaseURL)
			if err != nil {
				log.Printf("embedding client unavailable, keyword-only matching: %v", err)
			} else {
				embedder = client
			}
		} else {
			log.Printf("no embedding credentials, keyword-only matching")
		}
		matcher = skills.NewMatcher(tax, embedder, skills.Options{
			Threshold: cfg.Threshold,
			TopK:      cfg.TopK,
		})
	}

	scope := parser.ScopeDocument
	if cfg.SemanticScope == "skills" {
		scope = parser.ScopeSkills
	}
	return parser.NewExtractor(matcher, scope)
}

func buildLLMClient(cfg config.Config) llm.Client {
	if cfg.OpenAIAPIKey == "" {
		return llm.PlaceholderClient{}
	}
	client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
	if err != nil {
		log.Printf("llm client unavailable: %v", err)
		return llm.PlaceholderClient{}
	}
	return client
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
