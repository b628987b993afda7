package usecase

import (
	"context"

	"github.com/xavierca1/site-leads/internal/entity"
)

type ListLeadsUseCase struct {
	Repo LeadRepositoryInterface
}

func NewListLeadsUseCase(repo LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Repo: repo}
}

// Execute devolve os leads do mais recente para o mais antigo.
func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	leads, err := uc.Repo.List(ctx)
	if err != nil {
		return nil, internal("falha ao buscar leads", err)
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}
