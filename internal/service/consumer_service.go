package service

import (
	"context"
	"encoding/json"
	"log"

	"babybook-be/internal/dto"
	"babybook-be/pkg/viewcache"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains book invalidation messages and drops the
// corresponding cached views. Invalidation is advisory; a failed drop
// only means a stale view lives until its TTL.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	cache     viewcache.Cache
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cache viewcache.Cache,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		cache:     cache,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.InvalidateBookViewMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal invalidation message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.cache.Delete(ctx, BookViewCacheKey(payload.FamilyId))
	msg.Ack()
}
