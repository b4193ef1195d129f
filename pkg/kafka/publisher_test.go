package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/questx-lab/concierge/pkg/pubsub"
	"github.com/stretchr/testify/require"
)

func TestPublisher_Publish(t *testing.T) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true

	producer := mocks.NewSyncProducer(t, config)
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		require.Equal(t, `{"order_id":"o1"}`, string(val))
		return nil
	})
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := newPublisher("test", []string{"localhost:9092"}, producer)
	ctx := context.Background()

	err := p.Publish(ctx, "order_settled", &pubsub.Pack{Key: []byte("o1"), Msg: []byte(`{"order_id":"o1"}`)})
	require.NoError(t, err)

	err = p.Publish(ctx, "order_settled", &pubsub.Pack{Key: []byte("o2"), Msg: []byte(`{}`)})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)

	require.NoError(t, p.Stop(ctx))
}
