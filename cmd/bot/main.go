package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"mediconnect-bot/internal/bot"
	"mediconnect-bot/internal/config"
	"mediconnect-bot/internal/core"
	"mediconnect-bot/internal/llm"
	"mediconnect-bot/internal/logger"
	"mediconnect-bot/internal/session"
	"mediconnect-bot/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.LogLevel)
	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("failed to close store")
		}
	}()

	chat := core.NewChatService(llm.NewOpenAIClient(llm.Options{
		APIKey:      cfg.OpenAIAPIKey,
		BaseURL:     cfg.OpenAIBaseURL,
		Model:       cfg.OpenAIModel,
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
	}), log)

	newSession := func() *session.Session {
		return session.New(session.Options{
			Chat:        chat,
			Store:       st,
			Log:         log,
			MessageCap:  cfg.MessageCap,
			TurnTimeout: cfg.TurnTimeout,
		})
	}

	b, err := bot.New(cfg.TelegramToken, newSession, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start telegram bot")
	}
	if err := b.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("bot stopped")
	}
	log.Info().Msg("shutting down")
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreMongo:
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, log)
	case config.StorePostgres:
		return store.NewPostgresStore(ctx, cfg.DatabaseURL, log)
	default:
		return store.Noop{}, nil
	}
}
