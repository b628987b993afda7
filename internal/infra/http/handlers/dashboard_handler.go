package handlers

import (
	"net/http"

	"github.com/xavierca1/site-leads/internal/entity"
	"github.com/xavierca1/site-leads/internal/usecase"
)

type DashboardHandler struct {
	StatsUC *usecase.GetStatsUseCase
}

func NewDashboardHandler(statsUC *usecase.GetStatsUseCase) *DashboardHandler {
	return &DashboardHandler{StatsUC: statsUC}
}

type StatsResponse struct {
	Success bool              `json:"success"`
	Stats   *entity.LeadStats `json:"stats"`
}

// Stats (GET /api/dashboard/stats)
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, err, "Erro ao gerar estatísticas")
		return
	}

	writeJSON(w, http.StatusOK, StatsResponse{Success: true, Stats: stats})
}
