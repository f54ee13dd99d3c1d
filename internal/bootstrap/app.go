package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Sridharsing7570/resume-analyser/internal/ai"
	"github.com/Sridharsing7570/resume-analyser/internal/ai/gemini"
	"github.com/Sridharsing7570/resume-analyser/internal/ai/heuristic"
	"github.com/Sridharsing7570/resume-analyser/internal/resumes"
	"github.com/Sridharsing7570/resume-analyser/internal/services/health"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/config"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/server"
	"github.com/Sridharsing7570/resume-analyser/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	ResumesRepo   resumes.Repo
	Analyzer      ai.Analyzer
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
	Health        *health.Service
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	analyzer, err := buildAnalyzer(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := &resumes.Service{Repo: repo, Analyzer: analyzer}
	handler := resumes.NewHandler(svc)
	healthSvc := health.NewService()

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		ResumesRepo:   repo,
		Analyzer:      analyzer,
		ResumeService: svc,
		ResumeHandler: handler,
		Health:        healthSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
		Health:        healthSvc,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

// buildAnalyzer selects the analysis strategy. A missing Gemini key is not
// fatal at startup; requests fail with a configuration error instead.
func buildAnalyzer(ctx context.Context, cfg config.Config) (ai.Analyzer, error) {
	if cfg.Analyzer == "heuristic" {
		return heuristic.New(), nil
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		log.Printf("bootstrap: GEMINI_API_KEY empty; analysis requests will be rejected")
		return nil, nil
	}

	client, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, fmt.Errorf("build gemini client: %w", err)
	}
	return client, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
