package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/Shopify/sarama"
	"github.com/questx-lab/concierge/pkg/pubsub"
	"github.com/questx-lab/concierge/pkg/xcontext"
)

type publisher struct {
	clientID    string
	brokerAddrs []string
	producer    sarama.SyncProducer
}

func NewPublisher(clientID string, brokerAddrs []string) (*publisher, error) {
	config := sarama.NewConfig()
	config.ClientID = clientID
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(brokerAddrs, config)
	if err != nil {
		return nil, err
	}

	return newPublisher(clientID, brokerAddrs, producer), nil
}

func newPublisher(clientID string, brokerAddrs []string, producer sarama.SyncProducer) *publisher {
	return &publisher{
		clientID:    clientID,
		brokerAddrs: brokerAddrs,
		producer:    producer,
	}
}

func (p *publisher) Stop(ctx context.Context) error {
	return p.producer.Close()
}

// Publish sends msg synchronously. Messages with the same key go to the same
// partition, so events of one order keep their order.
func (p *publisher) Publish(ctx context.Context, topic string, msg *pubsub.Pack) error {
	m := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.ByteEncoder(msg.Key),
		Value:     sarama.ByteEncoder(msg.Msg),
		Timestamp: time.Now(),
		Headers: []sarama.RecordHeader{
			{Key: []byte("producer"), Value: []byte(p.clientID)},
		},
	}

	partition, offset, err := p.producer.SendMessage(m)
	if err != nil {
		return fmt.Errorf("cannot send message to %s: %w", topic, err)
	}

	xcontext.Logger(ctx).Debugf("Published message %s to %s/%d at offset %d",
		msg.Key, topic, partition, offset)
	return nil
}
