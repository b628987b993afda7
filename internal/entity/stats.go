package entity

// LeadStats é a visão agregada do dashboard. Sempre recalculada.
type LeadStats struct {
	Total     int            `json:"total"`
	Today     int            `json:"hoje"`
	ThisMonth int            `json:"mes"`
	ByStatus  map[string]int `json:"porStatus"`
	BySource  map[string]int `json:"porOrigem"`
}
