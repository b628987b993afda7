package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/xavierca1/site-leads/internal/entity"
)

type WhatsAppLinkUseCase struct {
	Repo   LeadRepositoryInterface
	Number string
}

func NewWhatsAppLinkUseCase(repo LeadRepositoryInterface, number string) *WhatsAppLinkUseCase {
	return &WhatsAppLinkUseCase{Repo: repo, Number: number}
}

// Execute monta o link wa.me para o time seguir o lead pelo WhatsApp.
func (uc *WhatsAppLinkUseCase) Execute(ctx context.Context, leadID int64, message string) (string, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return "", notFound()
		}
		return "", internal("falha ao buscar lead", err)
	}

	text := strings.TrimSpace(fmt.Sprintf("Olá! Vi que recebemos um lead de %s (%s). %s", lead.Name, lead.Email, strings.TrimSpace(message)))
	// wa.me espera espaço como %20, não "+"
	escaped := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", uc.Number, escaped), nil
}
