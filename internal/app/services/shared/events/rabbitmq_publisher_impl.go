package events

import (
	"context"
	"sync"
	"trekora-service/internal/app/config"
	"trekora-service/internal/app/contracts"
	"trekora-service/internal/pkg/constvars"
	"trekora-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	ch       *amqp.Channel
	exchange string
	Log      *zap.Logger
	mu       sync.Mutex
}

// NewRabbitMQPublisher opens a channel and declares the durable topic
// exchange domain events are published to.
func NewRabbitMQPublisher(conn *amqp.Connection, internalConfig *config.InternalConfig, logger *zap.Logger) (contracts.EventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	err = ch.ExchangeDeclare(
		internalConfig.App.EventsExchangeName, // name
		"topic",                               // kind
		true,                                  // durable
		false,                                 // autoDelete
		false,                                 // internal
		false,                                 // noWait
		nil,                                   // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		ch:       ch,
		exchange: internalConfig.App.EventsExchangeName,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventKey, routingKey),
			zap.Error(err),
		)
		return exceptions.ErrEventPublish(err)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, routingKey),
	)
	return nil
}
