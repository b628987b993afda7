package usecase

import "github.com/xavierca1/site-leads/internal/entity"

type CreateLeadInput struct {
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"telefone"`
	Company string `json:"empresa"`
	Message string `json:"mensagem"`
	Source  string `json:"origem"`
}

type CreateLeadOutput struct {
	Lead entity.Lead
	// Notified fecha quando as duas notificações terminarem. Só para log/teste.
	Notified <-chan NotificationOutcome
}

type UpdateLeadInput struct {
	ID     int64   `json:"-"`
	Status *string `json:"status"`
	Notes  *string `json:"observacoes"`
}

type ROIInput struct {
	MonthlyRevenue      string
	ProfitMargin        string
	MarketingInvestment string
	Plan                string
}

type InvestmentAdvice struct {
	Message             string `json:"mensagem"`
	SuggestedInvestment int64  `json:"investimento_sugerido"`
}

type ROIReport struct {
	Plan                     string            `json:"plano"`
	ROIPercent               int64             `json:"roi_estimado"`
	ProjectedRevenueIncrease int64             `json:"aumento_faturamento_estimado"`
	NewRevenue               int64             `json:"novo_faturamento_estimado"`
	NetGain                  int64             `json:"ganho_liquido_estimado"`
	Classification           string            `json:"classificacao"`
	Message                  string            `json:"mensagem"`
	InvestmentAdvice         *InvestmentAdvice `json:"recomendacao_investimento,omitempty"`
}
