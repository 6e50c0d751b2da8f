package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resume-chat-backend/internal/chat"
	"resume-chat-backend/internal/emails"
	"resume-chat-backend/internal/extract"
	"resume-chat-backend/internal/llm"
	"resume-chat-backend/internal/llm/gemini"
	"resume-chat-backend/internal/llm/openai"
	"resume-chat-backend/internal/resumes"
	"resume-chat-backend/internal/shared/config"
	"resume-chat-backend/internal/shared/server"
	"resume-chat-backend/internal/shared/storage/db"
	"resume-chat-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Log    *zap.Logger
	Router *gin.Engine
	DB     *sql.DB

	ResumesRepo resumes.Repo
	EmailsRepo  emails.Repo
	Completer   llm.Completer
	Mailer      emails.Mailer

	ResumesService *resumes.Service
	ChatService    *chat.Service
	EmailsService  *emails.Service
}

// Build prepares all dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	logger, err := telemetry.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	sqlDB, err := buildDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		Log:    logger,
		DB:     sqlDB,
	}

	buildServices(ctx, app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		Log:           logger,
		ResumeHandler: resumes.NewHandler(app.ResumesService, cfg.MaxUploadSize),
		ChatHandler:   chat.NewHandler(app.ChatService),
		EmailHandler:  emails.NewHandler(app.EmailsService),
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config, logger *zap.Logger) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			logger.Info("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			logger.Warn("bootstrap: database connect failed; using in-memory repositories", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			logger.Warn("bootstrap: migrations failed; using in-memory repositories", zap.Error(err))
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) {
	cfg := app.Config
	logger := app.Log

	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.EmailsRepo = &emails.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.EmailsRepo = emails.NewMemoryRepo()
	}

	app.Completer = buildCompleter(ctx, cfg, logger)
	app.Mailer = buildMailer(cfg, logger)

	app.ResumesService = &resumes.Service{
		Repo:    app.ResumesRepo,
		Extract: extract.Extractor{Log: logger},
	}
	app.ChatService = &chat.Service{
		Resumes:   app.ResumesRepo,
		Completer: app.Completer,
		Log:       logger,
	}
	app.EmailsService = &emails.Service{
		Repo:   app.EmailsRepo,
		Mailer: app.Mailer,
		Log:    logger,
	}
}

// buildCompleter detects the optional completion provider at startup.
// Misconfiguration degrades to the null object, never a hard failure.
func buildCompleter(ctx context.Context, cfg config.Config, logger *zap.Logger) llm.Completer {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			logger.Warn("openai completer unavailable", zap.Error(err))
			return llm.Noop{}
		}
		logger.Info("openai completer configured")
		return client
	case "gemini":
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			logger.Warn("gemini completer unavailable", zap.Error(err))
			return llm.Noop{}
		}
		logger.Info("gemini completer configured")
		return client
	default:
		return llm.Noop{}
	}
}

func buildMailer(cfg config.Config, logger *zap.Logger) emails.Mailer {
	if strings.TrimSpace(cfg.SMTPHost) == "" {
		return emails.LogMailer{Log: logger}
	}
	from := cfg.SMTPFrom
	if from == "" {
		from = cfg.SMTPUser
	}
	return &emails.SMTPMailer{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: from,
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
