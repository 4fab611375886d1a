package mq

import (
	"context"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const (
	publishTimeout = 5 * time.Second
	closeGrace     = 500 * time.Millisecond
)

// Publisher sends plain-text messages to a durable queue. Delivery is
// best-effort: each Send dials a fresh connection in the background,
// publishes once, and tears the connection down after a short grace
// period. Failures are logged and never reach the caller.
type Publisher struct {
	url   string
	queue string
}

func NewPublisher(url, queue string) *Publisher {
	return &Publisher{url: url, queue: queue}
}

// Send never blocks and never fails from the caller's point of view.
func (p *Publisher) Send(message string) {
	if p.url == "" {
		log.Warn().Msg("RABBIT_URL not set, notification dropped")
		return
	}
	go p.publish(message)
}

func (p *Publisher) publish(message string) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Error().Err(err).Msg("dial rabbitmq")
		return
	}
	defer func() {
		time.Sleep(closeGrace)
		_ = conn.Close()
	}()

	ch, err := conn.Channel()
	if err != nil {
		log.Error().Err(err).Msg("open channel")
		return
	}
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		log.Error().Err(err).Str("queue", p.queue).Msg("declare queue")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		Body:         []byte(message),
	})
	if err != nil {
		log.Error().Err(err).Str("queue", p.queue).Msg("publish notification")
		return
	}
	log.Info().Str("queue", p.queue).Str("message", message).Msg("notification sent")
}
