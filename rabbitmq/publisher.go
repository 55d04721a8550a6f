// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"quickchat/commons"
	"quickchat/models"
	"strings"

	amqp "github.com/rabbitmq/amqp091-go"
)

const RoutingKeyPrefix = "messages."

func NewPublisher(c RabbitMQConfig) (*Publisher, error) {
	if c.AMQPURL == "" {
		return nil, fmt.Errorf("AMQP URL is required")
	}
	if c.Exchange == "" {
		c.Exchange = "quickchat"
	}

	conn, err := amqp.Dial(c.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}
	if err := ch.ExchangeDeclare(c.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("exchange declare: %w", err)
	}

	commons.Logger.Infof("RabbitMQ publisher ready on exchange %s", c.Exchange)
	return &Publisher{
		Exchange:    c.Exchange,
		AMQPConn:    conn,
		AMQPChannel: ch,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, m models.Message) error {
	publishing, err := NewPublishing(m)
	if err != nil {
		return err
	}
	key := RoutingKey(m.Recipient)
	if err := p.AMQPChannel.PublishWithContext(ctx, p.Exchange, key, false, false, publishing); err != nil {
		return fmt.Errorf("failed to publish message %s to %s: %w", m.ID, key, err)
	}
	commons.Logger.Debugf("Published message %s with routing key %s", m.ID, key)
	return nil
}

func (p *Publisher) Close() error {
	if p.AMQPChannel != nil {
		if err := p.AMQPChannel.Close(); err != nil {
			return err
		}
	}
	if p.AMQPConn != nil {
		return p.AMQPConn.Close()
	}
	return nil
}

// NewPublishing wraps m in a persistent JSON publishing.
func NewPublishing(m models.Message) (amqp.Publishing, error) {
	qm := models.NewQueuedMessage(m)
	body, err := json.Marshal(qm)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to encode message %s: %w", m.ID, err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    qm.Mid,
		Timestamp:    qm.CreatedAt,
		Body:         body,
	}, nil
}

// RoutingKey keeps only the digits of the recipient, so "+27838968976"
// routes as "messages.27838968976".
func RoutingKey(recipient string) string {
	var b strings.Builder
	for _, r := range recipient {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return RoutingKeyPrefix + "unknown"
	}
	return RoutingKeyPrefix + b.String()
}
