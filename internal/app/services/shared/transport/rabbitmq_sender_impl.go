package transport

import (
	"context"
	"errors"
	"necessitous-service/internal/app/contracts"
	"necessitous-service/internal/pkg/constvars"
	"necessitous-service/internal/pkg/dto/requests"
	"necessitous-service/internal/pkg/exceptions"
	"necessitous-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker's answer to one publish.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// publisher publishes a message and hands back the confirmation for that
// message only.
type publisher interface {
	PublishWithDeferredConfirm(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (confirmation, error)
}

// channelPublisher adapts *amqp.Channel, which must be in confirm mode.
type channelPublisher struct {
	ch *amqp.Channel
}

func (p channelPublisher) PublishWithDeferredConfirm(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (confirmation, error) {
	dc, err := p.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, mandatory, immediate, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

type rabbitMQSender struct {
	ch        publisher
	queueName string
	log       *zap.Logger
}

// NewRabbitMQSender declares a durable queue and enables publisher confirms
// on a fresh channel of conn.
func NewRabbitMQSender(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.RequestSender, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return newRabbitMQSender(channelPublisher{ch: ch}, queueName, logger), nil
}

func newRabbitMQSender(ch publisher, queueName string, logger *zap.Logger) *rabbitMQSender {
	return &rabbitMQSender{
		ch:        ch,
		queueName: queueName,
		log:       logger,
	}
}

// Send publishes the request and waits for the broker to confirm it. The
// generated message id is returned as the request identifier.
func (s *rabbitMQSender) Send(ctx context.Context, request requests.SupplyRequest) (string, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("rabbitMQSender.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrCannotMarshalJSON(err))
	}

	messageID := utils.GenerateMessageID()
	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		MessageId:     messageID,
		CorrelationId: requestID,
		Timestamp:     time.Now().UTC(),
	}

	confirmed, err := s.ch.PublishWithDeferredConfirm(ctx, "", s.queueName, false, false, msg)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrRabbitMQPublishMessage(err, s.queueName))
	}

	ack, err := confirmed.WaitContext(ctx)
	if err != nil {
		return "", s.fail(requestID, exceptions.ErrRabbitMQPublishMessage(err, s.queueName))
	}
	if !ack {
		return "", s.fail(requestID, exceptions.ErrRabbitMQPublishMessage(errors.New("message nacked by broker"), s.queueName))
	}

	s.log.Info("rabbitMQSender.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResponseIDKey, messageID),
		zap.Int(constvars.LoggingPayloadLengthKey, len(body)),
	)
	return messageID, nil
}

func (s *rabbitMQSender) fail(requestID string, cause error) error {
	s.log.Error("rabbitMQSender.Send error publishing supply request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueNameKey, s.queueName),
		zap.Error(cause),
	)
	return exceptions.ErrTransport(contracts.ErrTransport, constvars.TransportDriverRabbitMQ)
}
