package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends booking events to RabbitMQ.
type Publisher interface {
	Publish(ctx context.Context, ev BookingEvent) error
}

// Nop discards events.  It is used when publishing is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, BookingEvent) error { return nil }

// AMQPPublisher opens a connection per event.  Booking traffic of a web
// client is low enough that a pooled channel is not worth its upkeep.
type AMQPPublisher struct {
	URL string
}

func NewAMQPPublisher(url string) *AMQPPublisher { return &AMQPPublisher{URL: url} }

// Publish declares the event's queue (durable, idempotent) and publishes
// the event as a persistent JSON message.  Errors are logged and returned
// so the caller can choose to ignore them.
func (p *AMQPPublisher) Publish(ctx context.Context, ev BookingEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	q := ev.Queue()
	if _, err := ch.QueueDeclare(q, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	err = ch.PublishWithContext(ctx, "", q, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		log.Printf("rabbitmq: publish to %s failed: %v", q, err)
	}
	return err
}

// PublishAsync publishes in the background with its own timeout so the
// page that triggered the event is never held up by the broker.
func PublishAsync(p Publisher, ev BookingEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = p.Publish(ctx, ev)
	}()
}
