package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"schedule-partner/config"
	_ "schedule-partner/docs" // Swagger docs
	aiHTTP "schedule-partner/internal/ai/delivery/http"
	aiUC "schedule-partner/internal/ai/usecase"
	characterHTTP "schedule-partner/internal/character/delivery/http"
	characterRepo "schedule-partner/internal/character/repository/memory"
	characterUC "schedule-partner/internal/character/usecase"
	convRepo "schedule-partner/internal/conversation/repository/memory"
	convUC "schedule-partner/internal/conversation/usecase"
	"schedule-partner/internal/httpserver"
	"schedule-partner/internal/middleware"
	"schedule-partner/internal/model"
	reviewHTTP "schedule-partner/internal/review/delivery/http"
	reviewRepo "schedule-partner/internal/review/repository/memory"
	reviewUC "schedule-partner/internal/review/usecase"
	"schedule-partner/pkg/gcalendar"
	"schedule-partner/pkg/llm"
	"schedule-partner/pkg/log"
)

// @title       Schedule Partner API
// @description AI-powered schedule companion: natural language parsing, character chat, daily planning and review feedback.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Schedule Partner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM provider (highest-priority enabled one)
	provider, err := llm.Select(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to select LLM provider: %v", err)
		return
	}
	logger.Infof(ctx, "LLM provider: %s model=%s", provider.Name(), provider.Model())

	// 4. AI orchestration
	aiUseCase, err := aiUC.New(logger, provider, aiUC.Config{
		Timeout:            cfg.AI.Timeout,
		MinConfidence:      cfg.AI.MinConfidence,
		Timezone:           cfg.AI.Timezone,
		DefaultPersonality: model.Personality(cfg.Character.DefaultPersonality),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize AI use case: %v", err)
		return
	}

	// 5. Conversation recording (best effort)
	conversationRepo, err := convRepo.New()
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize conversation store: %v", err)
		return
	}
	conversationUseCase := convUC.New(logger, conversationRepo)

	// 6. Character companion
	characterUseCase := characterUC.New(logger, characterRepo.New(cfg.Character.StateTTL))

	// 7. Daily reviews
	reviewStore, err := reviewRepo.New()
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize review store: %v", err)
		return
	}
	reviewUseCase := reviewUC.New(logger, aiUseCase, reviewStore)

	// 8. Google Calendar mirroring (optional)
	var calendar gcalendar.EventCreator
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendar = client
		}
	}

	// 9. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       mw,
		AIHandler: aiHTTP.New(logger, aiUseCase, conversationUseCase, calendar, aiHTTP.CalendarConfig{
			CalendarID: cfg.GoogleCalendar.CalendarID,
			Timezone:   cfg.AI.Timezone,
		}),
		CharacterHandler: characterHTTP.New(logger, characterUseCase),
		ReviewHandler:    reviewHTTP.New(logger, reviewUseCase),
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
