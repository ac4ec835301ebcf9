package messaging

import (
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/grooveshop/storefront/pkg/common/jsonutil"
)

// DefineTopic declares the durable exchange and queue pair for a topic.
func DefineTopic(ch *amqp.Channel, prefix string, topic ChangeTopic) error {
	name := topicName(prefix, topic)
	if err := ch.ExchangeDeclare(
		name,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		return err
	}
	_, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // noWait
		nil,
	)
	return err
}

// SendChange publishes one JSON-encoded payload on the topic.
func SendChange[V any](c *amqp.Connection, prefix string, topic ChangeTopic, data V) error {
	body, err := jsonutil.Marshal(data)
	if err != nil {
		return err
	}
	ch, err := c.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	name := topicName(prefix, topic)
	return ch.Publish(
		name,
		name,
		true, // mandatory
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}
