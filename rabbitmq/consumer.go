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

// BindingKeyAll matches every message published by the relay.
const BindingKeyAll = RoutingKeyPrefix + "#"

type ConsumerConfig struct {
	AMQPURL    string
	Exchange   string
	BindingKey string
	// QueueName defaults to QueueName(BindingKey).
	QueueName string
}

// Consumer reads relayed messages from a durable queue bound to the relay
// exchange.
type Consumer struct {
	Queue       string
	AMQPConn    *amqp.Connection
	AMQPChannel *amqp.Channel
}

func NewConsumer(c ConsumerConfig) (*Consumer, error) {
	if c.AMQPURL == "" {
		return nil, fmt.Errorf("AMQP URL is required")
	}
	if c.BindingKey == "" {
		c.BindingKey = BindingKeyAll
	}
	if c.QueueName == "" {
		c.QueueName = QueueName(c.BindingKey)
	}

	conn, err := amqp.Dial(c.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	consumer := &Consumer{AMQPConn: conn}

	ch, err := conn.Channel()
	if err != nil {
		consumer.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}
	consumer.AMQPChannel = ch

	if err := ch.Qos(1, 0, false); err != nil {
		consumer.Close()
		return nil, fmt.Errorf("qos: %w", err)
	}
	if err := ch.ExchangeDeclare(c.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		consumer.Close()
		return nil, fmt.Errorf("exchange declare: %w", err)
	}
	queue, err := ch.QueueDeclare(c.QueueName, true, false, false, false, nil)
	if err != nil {
		consumer.Close()
		return nil, fmt.Errorf("queue declare: %w", err)
	}
	if err := ch.QueueBind(queue.Name, c.BindingKey, c.Exchange, false, nil); err != nil {
		consumer.Close()
		return nil, fmt.Errorf("queue bind (exchange '%s'): %w", c.Exchange, err)
	}
	consumer.Queue = queue.Name

	commons.Logger.Infof("Queue ready: %s (exchange=%s, key=%s)", queue.Name, c.Exchange, c.BindingKey)
	return consumer, nil
}

// Consume hands every decodable delivery to handle until ctx is done or the
// channel closes. A delivery is acked when handle returns nil and dropped
// otherwise.
func (c *Consumer) Consume(ctx context.Context, handle func(models.QueuedMessage) error) error {
	deliveries, err := c.AMQPChannel.ConsumeWithContext(ctx, c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				commons.Logger.Info("Delivery channel closed")
				return nil
			}
			settle(d, handle)
		}
	}
}

func settle(d amqp.Delivery, handle func(models.QueuedMessage) error) {
	qm, err := DecodeQueuedMessage(d.Body)
	if err == nil {
		err = handle(qm)
	}
	if err != nil {
		commons.Logger.Errorf("Dropping delivery %s: %v", d.MessageId, err)
		if nackErr := d.Nack(false, false); nackErr != nil {
			commons.Logger.Errorf("Nack failed: %v", nackErr)
		}
		return
	}
	if err := d.Ack(false); err != nil {
		commons.Logger.Errorf("Ack failed: %v", err)
	}
}

func (c *Consumer) Close() error {
	if c.AMQPChannel != nil {
		if err := c.AMQPChannel.Close(); err != nil {
			return err
		}
	}
	if c.AMQPConn != nil {
		return c.AMQPConn.Close()
	}
	return nil
}

// DecodeQueuedMessage parses a relay delivery body.
func DecodeQueuedMessage(body []byte) (models.QueuedMessage, error) {
	var qm models.QueuedMessage
	if err := json.Unmarshal(body, &qm); err != nil {
		return qm, fmt.Errorf("failed to decode queued message: %w", err)
	}
	if qm.ID == "" || qm.PhoneNumber == "" {
		return qm, fmt.Errorf("queued message %q is missing id or phonenumber", qm.Mid)
	}
	return qm, nil
}

// QueueName derives a queue name from a binding key, e.g. "messages.#"
// becomes "messages_all".
func QueueName(bindingKey string) string {
	name := strings.ReplaceAll(bindingKey, "#", "all")
	name = strings.ReplaceAll(name, "*", "any")
	return strings.ReplaceAll(name, ".", "_")
}
