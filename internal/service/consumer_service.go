package service

import (
	"context"
	"encoding/json"

	"printing-support-be/internal/pkg/logger"
	"printing-support-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains chat activity events into the isolated audit
// log, keeping the write out of the request path.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditLog  logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, auditLog logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		auditLog:  auditLog,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var evt events.ChatActivityEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		cs.auditLog.Warn("activity", "dropping malformed activity event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	cs.auditLog.Info("activity", "chat message appended", map[string]interface{}{
		"session_id": evt.SessionId.String(),
		"user_id":    evt.UserId.String(),
		"message_id": evt.MessageId.String(),
		"role":       evt.Role,
		"at":         evt.At,
	})

	msg.Ack()
}
