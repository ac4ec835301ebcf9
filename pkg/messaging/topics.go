// Package messaging moves catalog change events over RabbitMQ so
// storefront replicas stay in sync with the commerce backend.
package messaging

import "fmt"

type ChangeTopic string

const (
	ProductsUpserted ChangeTopic = "product_upserted"
	ProductDeleted   ChangeTopic = "product_deleted"
)

func topicName(prefix string, topic ChangeTopic) string {
	return fmt.Sprintf("%s_%s", prefix, topic)
}
