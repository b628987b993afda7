package handlers

import (
	"net/http"

	"github.com/xavierca1/site-leads/internal/infra/http/middleware"
	"github.com/xavierca1/site-leads/internal/usecase"
)

type ChatHandler struct {
	ChatUC *usecase.ChatUseCase
}

func NewChatHandler(chatUC *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{ChatUC: chatUC}
}

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

// Handle atende /chat e /api/chat.
func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answer, err := h.ChatUC.Execute(r.Context(), req.Prompt)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			middleware.RecordIntegrationError("openai")
		}
		writeUseCaseError(w, err, "Erro ao processar a requisição")
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Answer: answer})
}
