package handlers

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/site-leads/internal/entity"
	"github.com/xavierca1/site-leads/internal/infra/http/middleware"
	"github.com/xavierca1/site-leads/internal/usecase"
)

type LeadHandler struct {
	CreateUC    *usecase.CreateLeadUseCase
	ListUC      *usecase.ListLeadsUseCase
	UpdateUC    *usecase.UpdateLeadUseCase
	rateLimiter *RateLimiter
}

// NewLeadHandler limita a captura a rateLimit requisições por minuto por IP.
func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	listUC *usecase.ListLeadsUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	rateLimit int,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:    createUC,
		ListUC:      listUC,
		UpdateUC:    updateUC,
		rateLimiter: NewRateLimiter(rateLimit, time.Minute),
	}
}

// Close encerra a limpeza do rate limiter.
func (h *LeadHandler) Close() {
	h.rateLimiter.Stop()
}

type CaptureLeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	LeadID  int64  `json:"lead_id"`
}

type ListLeadsResponse struct {
	Success bool          `json:"success"`
	Total   int           `json:"total"`
	Leads   []entity.Lead `json:"leads"`
}

type UpdateLeadResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Lead    *entity.Lead `json:"lead"`
}

// CaptureLead (POST /api/leads)
func (h *LeadHandler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Muitas requisições. Tente novamente em instantes.")
		return
	}

	var input usecase.CreateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if de, ok := usecase.AsDomainError(err); ok && de.Code == usecase.CodeValidation {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error:    "Campos obrigatórios não preenchidos",
				Code:     de.Code,
				Required: usecase.RequiredLeadFields,
			})
			return
		}
		writeUseCaseError(w, err, "Erro interno do servidor")
		return
	}

	middleware.RecordLeadCreated()

	writeJSON(w, http.StatusOK, CaptureLeadResponse{
		Success: true,
		Message: "Mensagem recebida com sucesso!",
		LeadID:  output.Lead.ID,
	})
}

// ListLeads (GET /api/leads)
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.ListUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err, "Erro ao buscar leads")
		return
	}

	writeJSON(w, http.StatusOK, ListLeadsResponse{
		Success: true,
		Total:   len(leads),
		Leads:   leads,
	})
}

// UpdateLead (PUT /api/leads/{id})
func (h *LeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// id que não é número nunca existe
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeNotFound, "Lead não encontrado")
		return
	}

	var input usecase.UpdateLeadInput
	if !decodeJSON(w, r, &input) {
		return
	}
	input.ID = id

	lead, err := h.UpdateUC.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err, "Erro ao atualizar lead")
		return
	}

	writeJSON(w, http.StatusOK, UpdateLeadResponse{
		Success: true,
		Message: "Lead atualizado",
		Lead:    lead,
	})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// primeiro da lista é o cliente
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

type visitor struct {
	count     int
	lastReset time.Time
}

// NewRateLimiter com limit <= 0 deixa tudo passar. A limpeza roda em
// segundo plano até Stop.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if limit > 0 {
		go rl.cleanup(10 * time.Minute)
	} else {
		close(rl.done)
	}
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) Allow(ip string) bool {
	if rl.limit <= 0 {
		return true
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	now := rl.now()

	if !exists {
		rl.visitors[ip] = &visitor{count: 1, lastReset: now}
		return true
	}

	if now.Sub(v.lastReset) > rl.window {
		v.count = 1
		v.lastReset = now
		return true
	}

	v.count++
	return v.count <= rl.limit
}

func (rl *RateLimiter) cleanup(every time.Duration) {
	defer close(rl.done)

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.purge()
		}
	}
}

func (rl *RateLimiter) purge() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for ip, v := range rl.visitors {
		if now.Sub(v.lastReset) > rl.window*2 {
			delete(rl.visitors, ip)
		}
	}
}
