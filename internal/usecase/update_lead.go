package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/xavierca1/site-leads/internal/entity"
)

type UpdateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadUseCase(repo LeadRepositoryInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Repo: repo}
}

func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) (*entity.Lead, error) {
	lead, err := uc.Repo.Update(ctx, input.ID, entity.LeadPatch{
		Status: input.Status,
		Notes:  input.Notes,
	})
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, notFound()
		}
		return nil, internal("falha ao atualizar lead", err)
	}

	log.Printf("🔄 Lead #%d atualizado (status=%s)", lead.ID, lead.Status)
	return lead, nil
}
