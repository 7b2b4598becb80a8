package events

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	eventPublisherInstance contracts.EventPublisher
	onceEventPublisher     sync.Once
)

type recordEventPublisher struct {
	Connection *amqp091.Connection
	QueueName  string
	Log        *zap.Logger
}

type recordEventMessage struct {
	EventType  string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

func NewRecordEventPublisher(connection *amqp091.Connection, queueName string, logger *zap.Logger) contracts.EventPublisher {
	onceEventPublisher.Do(func() {
		eventPublisherInstance = &recordEventPublisher{
			Connection: connection,
			QueueName:  queueName,
			Log:        logger,
		}
	})
	return eventPublisherInstance
}

func (p *recordEventPublisher) PublishRecordEvent(ctx context.Context, eventType string, payload interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	channel, err := p.Connection.Channel()
	if err != nil {
		p.Log.Error("recordEventPublisher.PublishRecordEvent error opening channel",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrEventPublish(err)
	}
	defer channel.Close()

	queue, err := channel.QueueDeclare(p.QueueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrEventPublish(err)
	}

	message := recordEventMessage{
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", queue.Name, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
		Headers: amqp091.Table{
			"event_type": eventType,
			"request_id": requestID,
		},
	})
	if err != nil {
		p.Log.Error("recordEventPublisher.PublishRecordEvent error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
		return exceptions.ErrEventPublish(err)
	}

	p.Log.Debug("recordEventPublisher.PublishRecordEvent published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)
	return nil
}
