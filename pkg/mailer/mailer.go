package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Message templates.
const (
	TemplatePasswordReset = "password_reset"
)

// Message is an email job
type Message struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Data     map[string]string `json:"data,omitempty"`
	QueuedAt time.Time         `json:"queuedAt"`
}

// Mailer represents an outbound email transport
type Mailer interface {
	Send(ctx context.Context, msg Message) error
	Close() error
}

// RabbitMQMailer publishes email jobs to a durable queue for a delivery worker
type RabbitMQMailer struct {
	conn  *amqp.Connection
	chn   *amqp.Channel
	queue string
	mu    sync.Mutex
}

// NewRabbitMQMailer dials the broker and declares the job queue
func NewRabbitMQMailer(url, queue string) (*RabbitMQMailer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	chn, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	_, err = chn.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		chn.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return &RabbitMQMailer{conn: conn, chn: chn, queue: queue}, nil
}

// Send publishes the message as a persistent JSON job
func (m *RabbitMQMailer) Send(ctx context.Context, msg Message) error {
	if msg.QueuedAt.IsZero() {
		msg.QueuedAt = time.Now().UTC()
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode email job: %w", err)
	}

	// amqp channels are not safe for concurrent publishing
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.chn.PublishWithContext(
		ctx,
		"",      // exchange
		m.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close closes the channel and connection
func (m *RabbitMQMailer) Close() error {
	if err := m.chn.Close(); err != nil {
		return err
	}
	return m.conn.Close()
}

// LogMailer writes email jobs to the log instead of sending them
type LogMailer struct {
	mu   sync.Mutex
	Sent []Message
}

// NewLogMailer creates a new LogMailer
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// Send records and logs the message
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	m.Sent = append(m.Sent, msg)
	m.mu.Unlock()
	log.Printf("[INFO] Mailer: %s email to %s queued (template %s)", msg.Subject, msg.To, msg.Template)
	return nil
}

// Messages returns a copy of the recorded messages
func (m *LogMailer) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.Sent))
	copy(out, m.Sent)
	return out
}

// Close is a no-op
func (m *LogMailer) Close() error {
	return nil
}
