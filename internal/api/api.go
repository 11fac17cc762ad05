package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/notes-summarizer/internal/api/middleware"
	"github.com/ethanbaker/notes-summarizer/internal/api/web"
	"github.com/ethanbaker/notes-summarizer/internal/config"
	"github.com/ethanbaker/notes-summarizer/internal/llm"
	"github.com/ethanbaker/notes-summarizer/internal/logger"
	"github.com/ethanbaker/notes-summarizer/internal/mailer"
	"github.com/ethanbaker/notes-summarizer/internal/prompts"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	email_module "github.com/ethanbaker/notes-summarizer/internal/api/modules/email"
	health_module "github.com/ethanbaker/notes-summarizer/internal/api/modules/health"
	prompts_module "github.com/ethanbaker/notes-summarizer/internal/api/modules/prompts"
	summary_module "github.com/ethanbaker/notes-summarizer/internal/api/modules/summary"
)

// Dependencies are the collaborators the HTTP layer is built from
type Dependencies struct {
	Config    *config.Config
	Logger    *logger.Logger
	Completer llm.Completer
	Sender    mailer.Sender
	Presets   *prompts.Presets
}

// NewDependencies builds the production collaborators from cfg
func NewDependencies(cfg *config.Config, log *logger.Logger) (*Dependencies, error) {
	presets, err := prompts.LoadPresets(cfg.Prompts.PresetsFile)
	if err != nil {
		return nil, err
	}

	if cfg.LLM.APIKey == "" {
		log.Warn().Msg("GROQ_API_KEY is not set, summary requests will fail")
	}
	if cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		log.Warn().Msg("BREVO_USER or BREVO_API_KEY is not set, email requests will fail")
	}

	return &Dependencies{
		Config:    cfg,
		Logger:    log,
		Completer: llm.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL),
		Sender: mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
		}),
		Presets: presets,
	}, nil
}

// NewEngine creates the gin engine with every module registered
func NewEngine(deps *Dependencies) *gin.Engine {
	cfg := deps.Config

	engine := gin.New()
	engine.Use(middleware.RequestLogger(deps.Logger), middleware.Recover(deps.Logger))
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSAllowedOrigins,
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Browser form
	web.RegisterRoutes(engine)

	// Base group '/api' for all API routes
	baseGroup := engine.Group("/api")

	health_module.RegisterRoutes(baseGroup, health_module.Status{
		LLMConfigured:  cfg.LLM.APIKey != "",
		SMTPConfigured: cfg.SMTP.Username != "" && cfg.SMTP.Password != "",
	})
	prompts_module.RegisterRoutes(baseGroup, deps.Presets)

	summaryService := summary_module.NewService(cfg.LLM, deps.Completer)
	summary_module.RegisterRoutes(baseGroup, summary_module.NewController(summaryService, deps.Logger))

	emailService := email_module.NewService(cfg.SMTP.From, deps.Sender)
	email_module.RegisterRoutes(baseGroup, email_module.NewController(emailService, deps.Logger))

	return engine
}

// Start serves the API until ctx is cancelled, then shuts down gracefully
func Start(ctx context.Context, deps *Dependencies) error {
	log := deps.Logger.WithComponent("api")

	server := &http.Server{
		Addr:              ":" + deps.Config.Server.Port,
		Handler:           NewEngine(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
