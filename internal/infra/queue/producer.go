package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/xavierca1/site-leads/internal/entity"
)

// LeadCreatedEvent é o que vai para a fila de alertas.
type LeadCreatedEvent struct {
	Lead       entity.Lead `json:"lead"`
	Origin     string      `json:"origin"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher é o pedaço do *amqp.Channel usado pelo producer.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

// SendInternalAlert entrega o alerta do time pela fila. Quem envia o
// email (e sincroniza o CRM) é o Worker.
func (p *RabbitMQProducer) SendInternalAlert(ctx context.Context, lead entity.Lead) error {
	return p.PublishLeadCreated(ctx, LeadCreatedEvent{
		Lead:       lead,
		Origin:     "API_LEADS",
		OccurredAt: time.Now(),
	})
}

func (p *RabbitMQProducer) PublishLeadCreated(ctx context.Context, event LeadCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.New().String(),
			Timestamp:    event.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}
	return nil
}
