package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/site-leads/internal/entity"
)

type fakePublisher struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (p *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	p.exchange, p.key, p.msg = exchange, key, msg
	return p.err
}

type fakeAck struct {
	acked, nacked, requeued bool
}

func (a *fakeAck) Ack(uint64, bool) error { a.acked = true; return nil }
func (a *fakeAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}
func (a *fakeAck) Reject(_ uint64, requeue bool) error {
	a.nacked, a.requeued = true, requeue
	return nil
}

type MockAlerter struct{ mock.Mock }

func (m *MockAlerter) SendInternalAlert(ctx context.Context, lead entity.Lead) error {
	return m.Called(ctx, lead).Error(0)
}

type MockCRM struct{ mock.Mock }

func (m *MockCRM) CreateLead(ctx context.Context, lead entity.Lead) (int, error) {
	args := m.Called(ctx, lead)
	return args.Int(0), args.Error(1)
}

type fakeConsumer struct {
	ch  chan amqp.Delivery
	err error
}

func (c *fakeConsumer) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return c.ch, c.err
}

func testLead() entity.Lead {
	return entity.Lead{ID: 42, Name: "Ana", Email: "ana@example.com", Message: "Oi", Source: "website", Status: entity.StatusNew}
}

func delivery(t *testing.T, ack *fakeAck, lead entity.Lead) amqp.Delivery {
	body, err := json.Marshal(LeadCreatedEvent{Lead: lead, Origin: "API_LEADS", OccurredAt: time.Now()})
	require.NoError(t, err)
	return amqp.Delivery{Acknowledger: ack, Body: body}
}

func TestProducerSendInternalAlert(t *testing.T) {
	pub := &fakePublisher{}
	p := NewProducer(pub)

	require.NoError(t, p.SendInternalAlert(context.Background(), testLead()))

	assert.Equal(t, ExchangeName, pub.exchange)
	assert.Equal(t, RoutingKey, pub.key)
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
	assert.NotEmpty(t, pub.msg.MessageId)

	var event LeadCreatedEvent
	require.NoError(t, json.Unmarshal(pub.msg.Body, &event))
	assert.Equal(t, int64(42), event.Lead.ID)
	assert.Equal(t, "API_LEADS", event.Origin)
}

func TestProducerWrapsPublishError(t *testing.T) {
	p := NewProducer(&fakePublisher{err: errors.New("channel closed")})

	err := p.SendInternalAlert(context.Background(), testLead())
	assert.ErrorContains(t, err, "channel closed")
}

func TestWorkerAcksAfterAlertAndCRM(t *testing.T) {
	alerter := new(MockAlerter)
	crm := new(MockCRM)
	alerter.On("SendInternalAlert", mock.Anything, testLead()).Return(nil)
	crm.On("CreateLead", mock.Anything, testLead()).Return(777, nil)

	w := NewWorker(nil, alerter, crm)
	ack := &fakeAck{}
	w.handleDelivery(context.Background(), delivery(t, ack, testLead()))

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	alerter.AssertExpectations(t)
	crm.AssertExpectations(t)
}

func TestWorkerIgnoresCRMFailure(t *testing.T) {
	alerter := new(MockAlerter)
	crm := new(MockCRM)
	alerter.On("SendInternalAlert", mock.Anything, mock.Anything).Return(nil)
	crm.On("CreateLead", mock.Anything, mock.Anything).Return(0, errors.New("kommo 401"))

	w := NewWorker(nil, alerter, crm)
	ack := &fakeAck{}
	w.handleDelivery(context.Background(), delivery(t, ack, testLead()))

	assert.True(t, ack.acked)
}

func TestWorkerNacksWhenAlertFails(t *testing.T) {
	alerter := new(MockAlerter)
	crm := new(MockCRM)
	alerter.On("SendInternalAlert", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	w := NewWorker(nil, alerter, crm)
	ack := &fakeAck{}
	w.handleDelivery(context.Background(), delivery(t, ack, testLead()))

	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued)
	crm.AssertNotCalled(t, "CreateLead", mock.Anything, mock.Anything)
}

func TestWorkerNacksInvalidJSON(t *testing.T) {
	alerter := new(MockAlerter)
	w := NewWorker(nil, alerter, nil)
	ack := &fakeAck{}

	w.handleDelivery(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte("{quebrado")})

	assert.True(t, ack.nacked)
	alerter.AssertNotCalled(t, "SendInternalAlert", mock.Anything, mock.Anything)
}

func TestWorkerStartStopsOnContextCancel(t *testing.T) {
	alerter := new(MockAlerter)
	called := make(chan struct{})
	alerter.On("SendInternalAlert", mock.Anything, mock.Anything).Return(nil).
		Run(func(mock.Arguments) { close(called) })

	deliveries := make(chan amqp.Delivery, 1)
	ack := &fakeAck{}
	deliveries <- delivery(t, ack, testLead())

	w := NewWorker(&fakeConsumer{ch: deliveries}, alerter, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx, QueueName) }()

	select {
	case <-called:
	case <-time.After(time.Second):
		t.Fatal("alerta não processado")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker não encerrou")
	}
	assert.True(t, ack.acked)
}

func TestWorkerStartConsumeError(t *testing.T) {
	w := NewWorker(&fakeConsumer{err: errors.New("no channel")}, new(MockAlerter), nil)
	assert.Error(t, w.Start(context.Background(), QueueName))
}
