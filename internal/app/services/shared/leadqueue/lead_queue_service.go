package leadqueue

import (
	"context"
	"errors"
	"mediportal-service/internal/app/contracts"
	"mediportal-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const LeadQueueName = "lead_captured_queue"

// Service publishes captured leads to a durable RabbitMQ queue with publisher
// confirms. Consumers (CRM sync, ops mailer) live outside this service.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		LeadQueueName, // name
		true,          // durable
		false,         // autoDelete
		false,         // exclusive
		false,         // noWait
		nil,           // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) PublishLeadCaptured(ctx context.Context, event contracts.LeadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	// One publish at a time so the confirmation read below matches this
	// delivery.
	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx, "", LeadQueueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			return exceptions.ErrQueuePublish(errors.New("broker nacked the publish"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}

// NoopNotifier stands in when the broker is disabled.
type NoopNotifier struct{}

func NewNoopNotifier() contracts.LeadNotifier {
	return &NoopNotifier{}
}

func (n *NoopNotifier) PublishLeadCaptured(ctx context.Context, event contracts.LeadEvent) error {
	return nil
}
