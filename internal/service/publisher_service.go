package service

import (
	"context"
	"encoding/json"
	"time"

	"printing-support-be/internal/entity"
	"printing-support-be/internal/pkg/logger"
	"printing-support-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	// PublishChatActivity emits an activity event for a persisted
	// message. Best-effort: failures are logged, never surfaced to the
	// request path.
	PublishChatActivity(ctx context.Context, msg *entity.ChatMessage)
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	log       logger.ILogger
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		log:       log,
	}
}

func (p *publisherService) PublishChatActivity(ctx context.Context, msg *entity.ChatMessage) {
	evt := events.ChatActivityEvent{
		SessionId: msg.SessionId,
		UserId:    msg.UserId,
		MessageId: msg.Id,
		Role:      msg.Role,
		At:        time.Now(),
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		p.log.Warn("events", "failed to marshal activity event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := p.pubSub.Publish(p.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		p.log.Warn("events", "failed to publish activity event", map[string]interface{}{"error": err.Error()})
	}
}
