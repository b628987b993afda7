package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/site-leads/internal/entity"
)

// TeamAlerter entrega o alerta de fato (email do time).
type TeamAlerter interface {
	SendInternalAlert(ctx context.Context, lead entity.Lead) error
}

// CRMClient registra o lead no CRM. Opcional.
type CRMClient interface {
	CreateLead(ctx context.Context, lead entity.Lead) (int, error)
}

// Consumer é o pedaço do *amqp.Channel usado pelo worker.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Alerter TeamAlerter
	CRM     CRMClient
}

func NewWorker(ch Consumer, alerter TeamAlerter, crm CRMClient) *Worker {
	return &Worker{
		Channel: ch,
		Alerter: alerter,
		CRM:     crm,
	}
}

// Start consome a fila até o contexto ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // ack manual
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ [WORKER] encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Println("⚠️ [WORKER] canal de entregas fechado")
				return nil
			}
			w.handleDelivery(ctx, d)
		}
	}
}

func (w *Worker) handleDelivery(ctx context.Context, d amqp.Delivery) {
	var event LeadCreatedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		log.Printf("❌ [WORKER] JSON inválido: %s", err)
		// mensagem podre vai direto para a DLQ
		d.Nack(false, false)
		return
	}

	if err := w.process(ctx, event); err != nil {
		log.Printf("❌ [WORKER] falha no alerta do lead #%d: %s", event.Lead.ID, err)
		d.Nack(false, false)
		return
	}

	log.Printf("✅ [WORKER] alerta do lead #%d entregue", event.Lead.ID)
	d.Ack(false)
}

func (w *Worker) process(ctx context.Context, event LeadCreatedEvent) error {
	if err := w.Alerter.SendInternalAlert(ctx, event.Lead); err != nil {
		return err
	}

	// CRM é complementar; falha aqui não devolve a mensagem
	if w.CRM != nil {
		if crmID, err := w.CRM.CreateLead(ctx, event.Lead); err != nil {
			log.Printf("⚠️ [WORKER] CRM falhou para lead #%d: %v", event.Lead.ID, err)
		} else {
			log.Printf("📇 [WORKER] lead #%d sincronizado no CRM (#%d)", event.Lead.ID, crmID)
		}
	}
	return nil
}
