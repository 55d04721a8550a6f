// SPDX-License-Identifier: GPL-3.0-only

package rabbitmq

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQConfig struct {
	AMQPURL  string
	Exchange string
}

// Publisher relays sent messages to a topic exchange.
type Publisher struct {
	Exchange    string
	AMQPConn    *amqp.Connection
	AMQPChannel *amqp.Channel
}
