package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/site-leads/internal/entity"
)

// ComputeStats projeta os leads nas contagens do dashboard.
// "Hoje" é o mesmo dia de calendário de now, não as últimas 24h.
func ComputeStats(leads []entity.Lead, now time.Time) entity.LeadStats {
	loc := now.Location()
	y, m, d := now.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)

	stats := entity.LeadStats{
		Total:    len(leads),
		ByStatus: make(map[string]int),
		BySource: make(map[string]int),
	}

	for _, l := range leads {
		created := l.CreatedAt.In(loc)
		cy, cm, cd := created.Date()
		if cy == y && cm == m && cd == d {
			stats.Today++
		}
		if !created.Before(monthStart) {
			stats.ThisMonth++
		}
		stats.ByStatus[l.Status]++
		stats.BySource[l.Source]++
	}

	return stats
}

type GetStatsUseCase struct {
	Repo LeadRepositoryInterface
	Now  func() time.Time
}

func NewGetStatsUseCase(repo LeadRepositoryInterface, clock func() time.Time) *GetStatsUseCase {
	if clock == nil {
		clock = time.Now
	}
	return &GetStatsUseCase{Repo: repo, Now: clock}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*entity.LeadStats, error) {
	leads, err := uc.Repo.All(ctx)
	if err != nil {
		return nil, internal("falha ao gerar estatísticas", err)
	}
	stats := ComputeStats(leads, uc.Now())
	return &stats, nil
}
