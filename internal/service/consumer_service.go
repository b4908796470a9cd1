package service

import (
	"context"
	"encoding/json"
	"time"

	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/pkg/logger"
	"vaul-ai-be/internal/repository/specification"
	"vaul-ai-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService tracks per-user daily assistant usage off the request
// path, fed by ASSISTANT_TURN_RECORDED events.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
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
	var payload dto.AssistantTurnRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "Failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payload, retrying cannot help
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: payload.UserId})
	if err != nil {
		cs.log.Error("consumer", "Failed to load user for usage tracking", map[string]interface{}{
			"user_id": payload.UserId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}
	if user == nil {
		msg.Ack() // account deleted since the turn was recorded
		return
	}

	now := time.Now()
	if !sameDay(user.AiDailyUsageLastReset, now) {
		user.AiDailyUsage = 0
		user.AiDailyUsageLastReset = now
	}
	user.AiDailyUsage++

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		cs.log.Error("consumer", "Failed to update usage counter", map[string]interface{}{
			"user_id": payload.UserId,
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
