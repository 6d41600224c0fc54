package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const Version = "1.0.0"

type HealthHandler struct {
	DB        *sql.DB
	LeadsFile string
	RabbitMQ  *amqp091.Connection
	Services  map[string]bool
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

// NewHealthHandler takes the configured backends; services maps external
// API names to whether a credential was supplied.
func NewHealthHandler(db *sql.DB, leadsFile string, rabbitMQ *amqp091.Connection, services map[string]bool) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		LeadsFile: leadsFile,
		RabbitMQ:  rabbitMQ,
		Services:  services,
		StartTime: time.Now(),
	}
}

// Handle (GET /health)
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	switch {
	case h.DB != nil:
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	case h.LeadsFile != "":
		deps["leads_file"] = checkLeadsDir(h.LeadsFile)
	}

	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	for name, configured := range h.Services {
		if configured {
			deps[name] = "configured"
		} else {
			deps[name] = "not configured"
		}
	}

	status := "ok"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	httpStatus := http.StatusOK
	if status == "degraded" {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:       status,
		Version:      Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}

func checkLeadsDir(path string) string {
	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return fmt.Sprintf("unhealthy: %v", err)
	}
	if !info.IsDir() {
		return "unhealthy: parent is not a directory"
	}
	return "healthy"
}
