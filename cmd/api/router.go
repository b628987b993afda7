package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/site-leads/internal/infra/http/handlers"
	appmw "github.com/xavierca1/site-leads/internal/infra/http/middleware"
)

type routes struct {
	Lead      *handlers.LeadHandler
	Dashboard *handlers.DashboardHandler
	ROI       *handlers.ROIHandler
	WhatsApp  *handlers.WhatsAppHandler
	Chat      *handlers.ChatHandler
	Health    *handlers.HealthHandler

	AllowedOrigins []string
}

func newRouter(rt routes) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.AllowedOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(appmw.Metrics)

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/chat", rt.Chat.Handle)

	r.Route("/api", func(r chi.Router) {
		r.Post("/leads", rt.Lead.CaptureLead)
		r.Get("/leads", rt.Lead.ListLeads)
		r.Put("/leads/{id}", rt.Lead.UpdateLead)

		r.Get("/dashboard/stats", rt.Dashboard.Stats)
		r.Post("/whatsapp/notify", rt.WhatsApp.Notify)
		r.Post("/roi-calculator", rt.ROI.Estimate)
		r.Post("/chat", rt.Chat.Handle)
	})

	return r
}
