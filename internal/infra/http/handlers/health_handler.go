package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// BrokerStatus é o que o health precisa da conexão com o RabbitMQ.
type BrokerStatus interface {
	IsClosed() bool
}

type LeadCounter interface {
	Count(ctx context.Context) (int, error)
}

type HealthHandler struct {
	RabbitMQ BrokerStatus
	Leads    LeadCounter
	// Integrations diz quais serviços externos têm credencial configurada.
	Integrations map[string]bool
	StartTime    time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Leads        int               `json:"leads"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(rabbitMQ BrokerStatus, leads LeadCounter, integrations map[string]bool) *HealthHandler {
	return &HealthHandler{
		RabbitMQ:     rabbitMQ,
		Leads:        leads,
		Integrations: integrations,
		StartTime:    time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	// RabbitMQ é opcional; sem ele o alerta vai direto por email
	if h.RabbitMQ != nil {
		if h.RabbitMQ.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	for name, ok := range h.Integrations {
		if ok {
			deps[name] = "configured"
		} else {
			deps[name] = "not configured"
		}
	}

	total := 0
	if h.Leads != nil {
		n, err := h.Leads.Count(r.Context())
		if err != nil {
			deps["store"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["store"] = "healthy"
			total = n
		}
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Leads:        total,
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
