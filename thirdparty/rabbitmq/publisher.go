package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

// EventPublisher announces patient changes to downstream consumers.
type EventPublisher interface {
	PublishPatientEvent(ctx context.Context, msg PatientEventMessage) error
}

type Publisher struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
}

type PatientEventMessage struct {
	Event      string    `json:"event"`
	PatientID  int64     `json:"patient_id"`
	RequestID  string    `json:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewPublisher(host string, port int, user, password, exchange string) (*Publisher, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-delete
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, exchange: exchange}, nil
}

// PublishPatientEvent routes msg by its event name, e.g. patient.created.
func (p *Publisher) PublishPatientEvent(ctx context.Context, msg PatientEventMessage) error {
	publishing, err := newPublishing(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		msg.Event,  // routing key
		false,      // mandatory
		false,      // immediate
		publishing,
	)
}

func newPublishing(msg PatientEventMessage) (amqp091.Publishing, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return amqp091.Publishing{}, err
	}

	return amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    msg.OccurredAt,
		MessageId:    msg.RequestID,
		Type:         msg.Event,
		Body:         body,
	}, nil
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
