package entity

import "strings"

// Planos comercializados no site. O coeficiente é a taxa de crescimento
// de faturamento mensal projetada para o plano.
const (
	PlanEssencial   = "essencial"
	PlanEstrategico = "estrategico"
	PlanPremium     = "premium"
)

type Plan struct {
	ID           string
	Name         string
	GrowthFactor float64
}

var plans = map[string]Plan{
	PlanEssencial:   {ID: PlanEssencial, Name: "Essencial", GrowthFactor: 0.15},
	PlanEstrategico: {ID: PlanEstrategico, Name: "Estratégico", GrowthFactor: 0.30},
	PlanPremium:     {ID: PlanPremium, Name: "Premium", GrowthFactor: 0.50},
}

// FindPlan devolve o plano pelo ID. Plano desconhecido ou vazio cai no
// Essencial, que é o menor tier.
func FindPlan(id string) Plan {
	if p, ok := plans[strings.ToLower(strings.TrimSpace(id))]; ok {
		return p
	}
	return plans[PlanEssencial]
}
