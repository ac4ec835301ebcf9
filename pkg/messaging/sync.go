package messaging

import (
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/grooveshop/storefront/pkg/common/jsonutil"
	"github.com/grooveshop/storefront/pkg/types"
)

type RabbitConfig struct {
	Url         string
	VHost       string
	TopicPrefix string
}

// ProductSink receives catalog changes pulled off the broker.
type ProductSink interface {
	UpsertProducts(items []types.Product)
	DeleteProduct(id string)
}

// CatalogSync connects one storefront instance to the product change
// topics. The same connection serves publish and consume.
type CatalogSync struct {
	RabbitConfig
	connection *amqp.Connection
}

func NewCatalogSync(cfg RabbitConfig) *CatalogSync {
	return &CatalogSync{RabbitConfig: cfg}
}

func (s *CatalogSync) Connect() error {
	conn, err := amqp.DialConfig(s.Url, amqp.Config{
		Vhost:      s.VHost,
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return err
	}
	s.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	for _, topic := range []ChangeTopic{ProductsUpserted, ProductDeleted} {
		if err := DefineTopic(ch, s.TopicPrefix, topic); err != nil {
			return err
		}
	}
	return nil
}

// Listen consumes both change topics and feeds the sink until the
// connection drops.
func (s *CatalogSync) Listen(sink ProductSink) error {
	upsertCh, err := s.connection.Channel()
	if err != nil {
		return err
	}
	err = ListenToTopic(upsertCh, s.TopicPrefix, ProductsUpserted, func(d amqp.Delivery) error {
		var items []types.Product
		if err := jsonutil.Unmarshal(d.Body, &items); err != nil {
			log.Printf("Failed to unmarshal upsert message %v", err)
			return nil
		}
		log.Printf("Got upserts %d", len(items))
		sink.UpsertProducts(items)
		return nil
	})
	if err != nil {
		return err
	}

	deleteCh, err := s.connection.Channel()
	if err != nil {
		return err
	}
	return ListenToTopic(deleteCh, s.TopicPrefix, ProductDeleted, func(d amqp.Delivery) error {
		var id string
		if err := jsonutil.Unmarshal(d.Body, &id); err != nil {
			log.Printf("Failed to unmarshal delete message %v", err)
			return nil
		}
		sink.DeleteProduct(id)
		return nil
	})
}

func (s *CatalogSync) PublishUpserts(items []types.Product) error {
	return SendChange(s.connection, s.TopicPrefix, ProductsUpserted, items)
}

func (s *CatalogSync) PublishDelete(id string) error {
	return SendChange(s.connection, s.TopicPrefix, ProductDeleted, id)
}

func (s *CatalogSync) Close() {
	if s.connection != nil && !s.connection.IsClosed() {
		s.connection.Close()
	}
}
