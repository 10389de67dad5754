package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

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

	sess := session.New(session.Options{
		Chat:        chat,
		Store:       st,
		Log:         log,
		MessageCap:  cfg.MessageCap,
		TurnTimeout: cfg.TurnTimeout,
	})

	fmt.Println("🏥 MediConnect Healthcare Assistant")
	fmt.Println(strings.Repeat("=", 40))
	greeting := sess.Greet(ctx)
	fmt.Printf("\n🤖 %s: %s\n\n", core.AssistantName, greeting.Body)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		select {
		case <-ctx.Done():
			return
		default:
		}

		reply := sess.HandleText(ctx, scanner.Text())
		for _, t := range reply.Texts {
			fmt.Printf("\n🤖 %s: %s\n", core.AssistantName, t.Body)
		}
		if reply.Done {
			return
		}
		if left := sess.Remaining(); left >= 0 {
			fmt.Printf("\n💬 Messages remaining: %d\n", left)
		}
		fmt.Println(strings.Repeat("-", 50))
	}
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
