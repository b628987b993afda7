package handlers

import (
	"net/http"
	"strconv"

	"github.com/xavierca1/site-leads/internal/usecase"
)

type WhatsAppHandler struct {
	LinkUC *usecase.WhatsAppLinkUseCase
}

func NewWhatsAppHandler(linkUC *usecase.WhatsAppLinkUseCase) *WhatsAppHandler {
	return &WhatsAppHandler{LinkUC: linkUC}
}

type WhatsAppNotifyRequest struct {
	LeadID  NumericField `json:"leadId"`
	Message string       `json:"mensagem"`
}

type WhatsAppNotifyResponse struct {
	Success     bool   `json:"success"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// Notify (POST /api/whatsapp/notify)
func (h *WhatsAppHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req WhatsAppNotifyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := strconv.ParseInt(string(req.LeadID), 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, usecase.CodeNotFound, "Lead não encontrado")
		return
	}

	link, err := h.LinkUC.Execute(r.Context(), id, req.Message)
	if err != nil {
		writeUseCaseError(w, err, "Erro ao gerar URL")
		return
	}

	writeJSON(w, http.StatusOK, WhatsAppNotifyResponse{Success: true, WhatsAppURL: link})
}
