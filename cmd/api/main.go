package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/recruitedge/outreach/internal/app"
	"github.com/recruitedge/outreach/internal/config"
	"github.com/recruitedge/outreach/internal/infra/http/handlers"
	"github.com/recruitedge/outreach/internal/infra/http/middleware"
	"github.com/recruitedge/outreach/internal/infra/worker"
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

	// Worker
	if cfg.StaleAfter > 0 {
		staleWorker := worker.NewStaleLeadWorker(a.LeadRepo, cfg.StaleAfter, cfg.StaleCheckInterval)
		go staleWorker.Start(ctx)
	}

	// Handlers
	outreachHandler := handlers.NewOutreachHandler(a.GenerateEmailUC, a.SendEmailUC, a.OutreachUC)
	leadHandler := handlers.NewLeadHandler(a.ListLeadsUC, a.UpdateLeadUC)

	leadsFile := ""
	if a.DB == nil {
		leadsFile = cfg.LeadsFile
	}
	healthHandler := handlers.NewHealthHandler(a.DB, leadsFile, nil, map[string]bool{
		"anthropic": cfg.AnthropicAPIKey != "",
		"mail":      a.MailConfigured(),
	})
	if a.RabbitMQ != nil {
		healthHandler.RabbitMQ = a.RabbitMQ.Conn
	}

	limiter := handlers.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/generate-email", outreachHandler.GenerateEmail)
		r.Post("/outreach", outreachHandler.Outreach)
	})
	r.Post("/send-email", outreachHandler.SendEmail)

	r.Get("/leads", leadHandler.ListLeads)
	r.Put("/leads/{id}", leadHandler.UpdateLead)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("⚠️ Shutdown error: %v", err)
		}
	}()

	log.Printf("🔥 RecruitEdge API running on port %s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("❌ Server error: %v", err)
	}
	log.Println("👋 Server stopped")
}
