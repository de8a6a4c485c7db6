package storage

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"goodfood-shop/internal/domain"
)

// Topic names. The platform's MQTT-era topics used slashes; Kafka forbids
// them, so the dotted forms below are the canonical mapping.
const (
	TopicOrders                  = "shop.orders"
	TopicSponsorshipRestaurateur = "sponsor.sponsorship.restaurateur"
	TopicSponsorshipClient       = "sponsor.sponsorship.client"
	TopicUsers                   = "auth.users"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishOrder(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.Restaurant.ID),
		Value: payload,
	})
}
