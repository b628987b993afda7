package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xavierca1/site-leads/internal/entity"
)

const (
	ClassExcellent      = "excelente"
	ClassGood           = "bom"
	ClassModerate       = "moderado"
	ClassNeedsAttention = "atencao"

	minInvestmentShare = 0.05
	maxInvestmentShare = 0.20
)

var classificationMessages = map[string]string{
	ClassExcellent:      "Excelente retorno! O investimento tende a se pagar mais de duas vezes.",
	ClassGood:           "Bom retorno. O plano escolhido traz ganho consistente sobre o investimento.",
	ClassModerate:       "Retorno moderado. O investimento se paga, mas vale revisar a estratégia.",
	ClassNeedsAttention: "Atenção: com esses números o investimento não se paga. Fale com a gente para ajustar o plano.",
}

// EstimateROI calcula o retorno projetado de marketing. Função pura.
func EstimateROI(input ROIInput) (*ROIReport, error) {
	revenue, err := parseAmount("faturamento_mensal", input.MonthlyRevenue)
	if err != nil {
		return nil, err
	}
	if revenue <= 0 {
		return nil, invalidInput("faturamento_mensal", "deve ser maior que zero")
	}

	marginPercent, err := parseAmount("margem_lucro", input.ProfitMargin)
	if err != nil {
		return nil, err
	}
	if marginPercent < 0 || marginPercent > 100 {
		return nil, invalidInput("margem_lucro", "deve estar entre 0 e 100")
	}

	investment, err := parseAmount("investimento_marketing", input.MarketingInvestment)
	if err != nil {
		return nil, err
	}
	if investment <= 0 {
		return nil, invalidInput("investimento_marketing", "deve ser maior que zero")
	}

	plan := entity.FindPlan(input.Plan)
	margin := marginPercent / 100

	currentProfit := revenue * margin
	increase := revenue * plan.GrowthFactor
	newRevenue := revenue + increase
	newProfit := newRevenue * margin
	netGain := newProfit - currentProfit
	roi := ((netGain - investment) / investment) * 100

	// valores que não cabem em int64 sairiam com sinal trocado
	for _, v := range []float64{increase, newRevenue, netGain} {
		if !fitsInt64(v) {
			return nil, invalidInput("faturamento_mensal", "fora do intervalo suportado")
		}
	}
	if !fitsInt64(roi) {
		return nil, invalidInput("investimento_marketing", "pequeno demais para o faturamento informado")
	}

	class := classify(roi)
	return &ROIReport{
		Plan:                     plan.ID,
		ROIPercent:               round(roi),
		ProjectedRevenueIncrease: round(increase),
		NewRevenue:               round(newRevenue),
		NetGain:                  round(netGain),
		Classification:           class,
		Message:                  classificationMessages[class],
		InvestmentAdvice:         adviseInvestment(revenue, investment),
	}, nil
}

func classify(roi float64) string {
	switch {
	case roi >= 100:
		return ClassExcellent
	case roi >= 50:
		return ClassGood
	case roi >= 0:
		return ClassModerate
	default:
		return ClassNeedsAttention
	}
}

// adviseInvestment compara o investimento com a faixa de 5% a 20% do faturamento.
func adviseInvestment(revenue, investment float64) *InvestmentAdvice {
	low := revenue * minInvestmentShare
	high := revenue * maxInvestmentShare

	switch {
	case investment < low:
		return &InvestmentAdvice{
			Message:             "Investimento abaixo do recomendado (5% a 20% do faturamento). Considere aumentar para ganhar tração.",
			SuggestedInvestment: round(low),
		}
	case investment > high:
		return &InvestmentAdvice{
			Message:             "Investimento acima do recomendado (5% a 20% do faturamento). Dá para obter resultado parecido gastando menos.",
			SuggestedInvestment: round(high),
		}
	}
	return nil
}

// round arredonda para o inteiro mais próximo; .5 sobe.
func round(v float64) int64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return int64(f)
}

func fitsInt64(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) < 1<<63
}

func parseAmount(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalidInput(field, fmt.Sprintf("valor numérico inválido: %q", raw))
	}
	return v, nil
}

func invalidInput(field, msg string) *DomainError {
	return &DomainError{
		Code:    CodeInvalidInput,
		Message: field + " " + msg,
		Fields:  []string{field},
	}
}
