package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quickserve/crew-assistant/backend/internal/config"
	"github.com/quickserve/crew-assistant/backend/internal/handler"
	"github.com/quickserve/crew-assistant/backend/internal/model/catalog"
	agentservice "github.com/quickserve/crew-assistant/backend/internal/service/agent"
	chatservice "github.com/quickserve/crew-assistant/backend/internal/service/chat"
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

	// Catalogs are read-only lookup tables shared by every request.
	catalogs := catalog.NewSeededStore()
	chatService := chatservice.NewService()

	seed := time.Now().UnixNano()
	if cfg.Agent.ComboSeed != nil {
		seed = *cfg.Agent.ComboSeed
		log.Printf("combo suggestion seed pinned to %d", seed)
	}
	// rand.Rand is not safe for concurrent use; the picker takes a lock.
	rng := rand.New(rand.NewSource(seed))
	var rngMu sync.Mutex
	pick := func(n int) int {
		rngMu.Lock()
		defer rngMu.Unlock()
		return rng.Intn(n)
	}
	agentService := agentservice.NewService(catalogs, pick)

	router := handler.NewRouter(catalogs, agentService, chatService, cfg.Server.AllowedOrigin)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Crew Assistant backend listening on %s", serverCfg.Addr)
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
