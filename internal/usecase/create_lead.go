package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/site-leads/internal/entity"
)

type CreateLeadUseCase struct {
	Repo     LeadRepositoryInterface
	Notifier LeadNotifier
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface, notifier LeadNotifier) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Repo:     repo,
		Notifier: notifier,
	}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*CreateLeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	lead := entity.NewLead(input.Name, input.Email, input.Phone, input.Company, input.Message, input.Source)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, internal("falha ao salvar lead", err)
	}

	log.Printf("✅ Lead #%d recebido de %s (%s)", lead.ID, lead.Name, lead.Source)

	// Notificação não segura a resposta.
	var notified <-chan NotificationOutcome
	if uc.Notifier != nil {
		notified = uc.Notifier.Dispatch(*lead)
	}

	return &CreateLeadOutput{
		Lead:     *lead,
		Notified: notified,
	}, nil
}
