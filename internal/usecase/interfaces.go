package usecase

import (
	"context"

	"github.com/xavierca1/site-leads/internal/entity"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context) ([]entity.Lead, error)
	FindByID(ctx context.Context, id int64) (*entity.Lead, error)
	Update(ctx context.Context, id int64, patch entity.LeadPatch) (*entity.Lead, error)
	All(ctx context.Context) ([]entity.Lead, error)
}

// InternalAlerter avisa o time comercial que chegou lead novo.
type InternalAlerter interface {
	SendInternalAlert(ctx context.Context, lead entity.Lead) error
}

// CustomerConfirmer confirma o recebimento para quem preencheu o formulário.
type CustomerConfirmer interface {
	SendCustomerConfirmation(ctx context.Context, lead entity.Lead) error
}

// LeadNotifier é o coordenador visto pelo caso de uso de criação.
type LeadNotifier interface {
	Dispatch(lead entity.Lead) <-chan NotificationOutcome
}

// NotificationRecorder recebe o resultado de cada tentativa (métricas).
type NotificationRecorder interface {
	RecordNotification(kind string, sent bool)
}

type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
