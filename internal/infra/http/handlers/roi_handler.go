package handlers

import (
	"net/http"

	"github.com/xavierca1/site-leads/internal/infra/http/middleware"
	"github.com/xavierca1/site-leads/internal/usecase"
)

type ROIHandler struct{}

func NewROIHandler() *ROIHandler {
	return &ROIHandler{}
}

type ROIRequest struct {
	MonthlyRevenue      NumericField `json:"faturamento_mensal"`
	ProfitMargin        NumericField `json:"margem_lucro"`
	MarketingInvestment NumericField `json:"investimento_marketing"`
	Plan                string       `json:"plano_escolhido"`
}

// Estimate (POST /api/roi-calculator)
func (h *ROIHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req ROIRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := usecase.EstimateROI(usecase.ROIInput{
		MonthlyRevenue:      string(req.MonthlyRevenue),
		ProfitMargin:        string(req.ProfitMargin),
		MarketingInvestment: string(req.MarketingInvestment),
		Plan:                req.Plan,
	})
	if err != nil {
		writeUseCaseError(w, err, "Erro ao calcular ROI")
		return
	}

	middleware.RecordROIEstimate(report.Classification)
	writeJSON(w, http.StatusOK, report)
}
