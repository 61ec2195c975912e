package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"shopbot/bot"
	"shopbot/config"
	"shopbot/history"
	"shopbot/orchestrator"
	"shopbot/provider"
	"shopbot/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	llm, err := provider.NewProvider(provider.Config{
		Type:    provider.MapProviderIDToType(cfg.Provider),
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
	})
	if err != nil {
		log.Fatalf("provider error: %v", err)
	}

	backend := tools.NewClient(cfg.ToolServerURL)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := backend.Ping(pingCtx); err != nil {
		// The bot still starts: tool calls will report the outage and
		// the model can explain it to the user.
		log.Printf("warning: tool server unreachable at %s: %v", cfg.ToolServerURL, err)
	} else {
		log.Printf("tool server reachable at %s", cfg.ToolServerURL)
	}
	cancel()

	registry := tools.NewRegistry(backend)
	store := history.NewMemoryStore(cfg.HistoryMax)
	orch := orchestrator.New(llm, store, registry, "")

	b, err := bot.New(cfg.TelegramToken, orch, store)
	if err != nil {
		log.Fatalf("telegram error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("starting bot: provider=%s model=%s", cfg.Provider, llm.GetModel())
	b.Run(ctx)
	log.Println("bot stopped")
}
