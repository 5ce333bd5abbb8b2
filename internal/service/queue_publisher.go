// Package queue_publisher publishes domain events to RabbitMQ.
// Errors are logged and returned so callers can ignore failures
// without interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/kidfest/event-booking/internal/queue"
)

const bookingCreatedQueue = "booking.created"

// PublishBookingCreated publishes a BookingCreatedEvent to the
// "booking.created" queue. With an empty url, publishing is disabled
// and the call is a no-op. The message is marked persistent; any
// failure is logged and returned but never fails the booking itself.
func PublishBookingCreated(ctx context.Context, url string, event q.BookingCreatedEvent) error {
	if url == "" {
		return nil
	}
	conn, err := amqp.Dial(url)
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

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(bookingCreatedQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingCreatedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
