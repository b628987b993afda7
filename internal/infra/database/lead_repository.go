package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/site-leads/internal/entity"
)

// LeadRepository guarda os leads em memória. Cada instância é isolada;
// não há estado global. Create e Update são serializados pelo lock de escrita.
type LeadRepository struct {
	mu     sync.RWMutex
	leads  []entity.Lead
	index  map[int64]int
	lastID int64
	now    func() time.Time
}

var _ entity.LeadRepositoryInterface = (*LeadRepository)(nil)

func NewLeadRepository(clock func() time.Time) *LeadRepository {
	if clock == nil {
		clock = time.Now
	}
	return &LeadRepository{
		index: make(map[int64]int),
		now:   clock,
	}
}

// Create atribui ID e timestamps e grava o lead. O ID vem do horário da
// submissão em milissegundos, sempre maior que o último emitido.
func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	lead.ID = id
	lead.CreatedAt = now
	lead.UpdatedAt = now

	r.index[id] = len(r.leads)
	r.leads = append(r.leads, *lead)
	return nil
}

// List devolve uma cópia ordenada por data de criação, mais recentes primeiro.
// Empates mantêm a ordem de inserção.
func (r *LeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	out, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	lead := r.leads[idx]
	return &lead, nil
}

// Update aplica o merge parcial de status/observações e renova UpdatedAt.
// ID desconhecido devolve ErrLeadNotFound sem tocar no store.
func (r *LeadRepository) Update(ctx context.Context, id int64, patch entity.LeadPatch) (*entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}

	lead := &r.leads[idx]
	lead.Apply(patch)

	// relógio de parede pode voltar; UpdatedAt nunca regride
	if now := r.now(); now.After(lead.UpdatedAt) {
		lead.UpdatedAt = now
	}

	updated := *lead
	return &updated, nil
}

// All devolve uma cópia na ordem de inserção.
func (r *LeadRepository) All(ctx context.Context) ([]entity.Lead, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Lead, len(r.leads))
	copy(out, r.leads)
	return out, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leads), nil
}
