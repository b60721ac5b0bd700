package kafka

import (
	"context"

	"github.com/Shopify/sarama"
	"github.com/learnquest-lab/backend/pkg/pubsub"
	"github.com/learnquest-lab/backend/pkg/xcontext"
)

type subscriber struct {
	groupID string
	topics  []string
	client  sarama.ConsumerGroup
	handler pubsub.SubscribeHandler
}

func NewSubscriber(
	groupID string,
	brokerAddrs []string,
	topics []string,
	handler pubsub.SubscribeHandler,
) (pubsub.Subscriber, error) {
	config := sarama.NewConfig()
	config.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRoundRobin
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	client, err := sarama.NewConsumerGroup(brokerAddrs, groupID, config)
	if err != nil {
		return nil, err
	}

	return &subscriber{
		groupID: groupID,
		topics:  topics,
		client:  client,
		handler: handler,
	}, nil
}

func (s *subscriber) Subscribe(ctx context.Context) {
	handler := &consumerGroupHandler{ready: make(chan struct{}), fn: s.handler}

	go func() {
		for {
			// Consume must be called again after every server-side rebalance
			// to pick up the new claims.
			if err := s.client.Consume(ctx, s.topics, handler); err != nil {
				xcontext.Logger(ctx).Errorf("Consumer group %s stopped: %v", s.groupID, err)
				return
			}

			if ctx.Err() != nil {
				return
			}

			handler.ready = make(chan struct{})
		}
	}()

	<-handler.ready
}

func (s *subscriber) Stop(ctx context.Context) error {
	return s.client.Close()
}

type consumerGroupHandler struct {
	ready chan struct{}
	fn    pubsub.SubscribeHandler
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	close(h.ready)
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(
	session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim,
) error {
	for message := range claim.Messages() {
		session.MarkMessage(message, "")
		h.fn(session.Context(), &pubsub.Pack{
			Key: message.Key,
			Msg: message.Value,
		}, message.Timestamp)
	}

	return nil
}
