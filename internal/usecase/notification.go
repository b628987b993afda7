package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/site-leads/internal/entity"
)

const (
	NotificationInternalAlert = "internal_alert"
	NotificationCustomerConf  = "customer_confirmation"

	defaultNotifyTimeout = 30 * time.Second
)

// NotificationOutcome é o resultado das duas tentativas de um dispatch.
type NotificationOutcome struct {
	DispatchID        string
	LeadID            int64
	InternalAlertSent bool
	ConfirmationSent  bool
}

// NotificationCoordinator dispara os avisos de lead novo em segundo plano.
// Falha (erro ou panic) vira "não enviado" e nunca chega em quem criou o lead.
type NotificationCoordinator struct {
	Alerter   InternalAlerter
	Confirmer CustomerConfirmer
	Recorder  NotificationRecorder
	Timeout   time.Duration
}

func NewNotificationCoordinator(
	alerter InternalAlerter,
	confirmer CustomerConfirmer,
	recorder NotificationRecorder,
	timeout time.Duration,
) *NotificationCoordinator {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &NotificationCoordinator{
		Alerter:   alerter,
		Confirmer: confirmer,
		Recorder:  recorder,
		Timeout:   timeout,
	}
}

// Dispatch retorna na hora. O canal recebe um único resultado e fecha;
// ninguém precisa ler dele.
func (c *NotificationCoordinator) Dispatch(lead entity.Lead) <-chan NotificationOutcome {
	done := make(chan NotificationOutcome, 1)
	outcome := NotificationOutcome{
		DispatchID: uuid.New().String(),
		LeadID:     lead.ID,
	}

	go func() {
		defer close(done)

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			outcome.InternalAlertSent = c.attempt(NotificationInternalAlert, outcome.DispatchID, func(ctx context.Context) error {
				if c.Alerter == nil {
					return fmt.Errorf("alerta interno não configurado")
				}
				return c.Alerter.SendInternalAlert(ctx, lead)
			})
		}()

		go func() {
			defer wg.Done()
			outcome.ConfirmationSent = c.attempt(NotificationCustomerConf, outcome.DispatchID, func(ctx context.Context) error {
				if c.Confirmer == nil {
					return fmt.Errorf("confirmação ao cliente não configurada")
				}
				return c.Confirmer.SendCustomerConfirmation(ctx, lead)
			})
		}()

		wg.Wait()
		log.Printf("📨 [NOTIFY %s] lead=%d alerta_interno=%t confirmacao=%t",
			outcome.DispatchID, lead.ID, outcome.InternalAlertSent, outcome.ConfirmationSent)
		done <- outcome
	}()

	return done
}

func (c *NotificationCoordinator) attempt(kind, dispatchID string, send func(context.Context) error) (sent bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️ [NOTIFY %s] %s entrou em panic: %v", dispatchID, kind, r)
			sent = false
		}
		if c.Recorder != nil {
			c.Recorder.RecordNotification(kind, sent)
		}
	}()

	if err := send(ctx); err != nil {
		log.Printf("⚠️ [NOTIFY %s] %s falhou: %v", dispatchID, kind, err)
		return false
	}
	return true
}
