package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/calmvio/backend/internal/config"
	"github.com/calmvio/backend/internal/handler"
	"github.com/calmvio/backend/internal/model/resource"
	"github.com/calmvio/backend/internal/service/ai"
	chatservice "github.com/calmvio/backend/internal/service/chat"
	"github.com/calmvio/backend/internal/service/conversation"
	moodservice "github.com/calmvio/backend/internal/service/mood"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	catalogItems, err := resource.Seed()
	if err != nil {
		log.Fatalf("failed to load resource catalog: %v", err)
	}
	catalog := resource.NewMemoryStore(catalogItems)

	sessionStore := chatservice.NewService()
	moodStore := moodservice.NewService()

	var completer conversation.Completer
	if cfg.AI.Enabled() {
		aiService, err := ai.NewService(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize AI service: %v", err)
			log.Println("continuing without AI functionality - chat turns will fail upstream")
		} else {
			completer = aiService
			log.Println("AI service initialized successfully")
		}
	} else {
		log.Println("model credentials not configured, chat turns will fail upstream")
	}

	gateway := conversation.NewService(sessionStore, completer)

	router := handler.NewRouter(cfg.HTTP, gateway, moodStore, catalog)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Calmvio backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
