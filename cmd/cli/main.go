package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/recruitedge/outreach/internal/app"
	"github.com/recruitedge/outreach/internal/config"
	"github.com/recruitedge/outreach/internal/infra/console"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Startup failed: %v", err)
	}
	defer a.Close()

	menu := console.NewMenu(os.Stdin, os.Stdout, a.GenerateEmailUC, a.SendEmailUC, a.ListLeadsUC, a.UpdateLeadUC)
	if err := menu.Run(ctx); err != nil {
		log.Printf("❌ %v", err)
	}
}
