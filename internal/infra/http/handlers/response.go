package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/xavierca1/site-leads/internal/usecase"
)

type ErrorResponse struct {
	Error    string   `json:"error"`
	Code     string   `json:"code,omitempty"`
	Field    string   `json:"field,omitempty"`
	Required []string `json:"required,omitempty"`
}

// Formulários do site cabem folgado em 1 MiB.
const maxBodyBytes = 1 << 20

// decodeJSON lê o corpo com limite de tamanho e já responde o erro.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Requisição muito grande")
			return false
		}
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeUseCaseError traduz os erros dos casos de uso para HTTP. Erro
// técnico só vai para o log; o cliente recebe a mensagem genérica.
func writeUseCaseError(w http.ResponseWriter, err error, fallback string) {
	if de, ok := usecase.AsDomainError(err); ok {
		resp := ErrorResponse{Error: de.Message, Code: de.Code}
		if len(de.Fields) == 1 {
			resp.Field = de.Fields[0]
		}
		writeJSON(w, statusFor(de.Code), resp)
		return
	}

	log.Printf("❌ %s: %v", fallback, err)
	writeErrorResponse(w, http.StatusInternalServerError, usecase.CodeInternal, fallback)
}

func statusFor(code string) int {
	switch code {
	case usecase.CodeValidation, usecase.CodeInvalidInput:
		return http.StatusBadRequest
	case usecase.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NumericField aceita tanto 1500 quanto "1500" no JSON e guarda o texto
// para o caso de uso validar.
type NumericField string

func (n *NumericField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NumericField(strings.TrimSpace(s))
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("valor numérico inválido: %s", b)
	}
	*n = NumericField(num.String())
	return nil
}
