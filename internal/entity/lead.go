package entity

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	StatusNew     = "novo"
	NotProvided   = "Não informado"
	DefaultSource = "website"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// Lead é o contato capturado pelo formulário do site.
// Só Status e Notes mudam depois da criação.
type Lead struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Email     string    `json:"email"`
	Phone     string    `json:"telefone"`
	Company   string    `json:"empresa"`
	Message   string    `json:"mensagem"`
	Source    string    `json:"origem"`
	Status    string    `json:"status"`
	Notes     string    `json:"observacoes,omitempty"`
	CreatedAt time.Time `json:"data_criacao"`
	UpdatedAt time.Time `json:"data_atualizacao"`
}

// LeadPatch carrega os campos opcionais de uma atualização.
// nil (ou string vazia) mantém o valor anterior.
type LeadPatch struct {
	Status *string
	Notes  *string
}

// NewLead monta o lead com os defaults dos campos opcionais.
// ID e timestamps ficam a cargo do repositório.
func NewLead(name, email, phone, company, message, source string) *Lead {
	return &Lead{
		Name:    strings.TrimSpace(name),
		Email:   strings.TrimSpace(email),
		Phone:   orDefault(phone, NotProvided),
		Company: orDefault(company, NotProvided),
		Message: strings.TrimSpace(message),
		Source:  orDefault(source, DefaultSource),
		Status:  StatusNew,
	}
}

// Apply faz o merge parcial do patch. Retorna true se algo mudou.
func (l *Lead) Apply(p LeadPatch) bool {
	changed := false
	if p.Status != nil && strings.TrimSpace(*p.Status) != "" {
		l.Status = strings.TrimSpace(*p.Status)
		changed = true
	}
	if p.Notes != nil && *p.Notes != "" {
		l.Notes = *p.Notes
		changed = true
	}
	return changed
}

func orDefault(v, def string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return def
	}
	return v
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id int64) (*Lead, error)
	Update(ctx context.Context, id int64, patch LeadPatch) (*Lead, error)
	All(ctx context.Context) ([]Lead, error)
	Count(ctx context.Context) (int, error)
}
