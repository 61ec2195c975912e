package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shopbot/catalog"
	"shopbot/config"
	"shopbot/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	cat, err := catalog.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("catalog error: %v", err)
	}
	defer cat.Close()

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cat).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("tool server listening on %s (catalog: %s)", cfg.Addr, cfg.DBPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("tool server stopped")
}
