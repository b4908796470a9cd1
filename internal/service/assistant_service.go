package service

import (
	"context"
	"time"

	"vaul-ai-be/internal/constant"
	"vaul-ai-be/internal/dto"
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/pkg/logger"
	"vaul-ai-be/internal/repository/specification"
	"vaul-ai-be/internal/repository/unitofwork"
	"vaul-ai-be/pkg/llm"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Ask(ctx context.Context, userId uuid.UUID, prompt string) (*dto.AskAssistantResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationTurnResponse, error)
}

type assistantService struct {
	uowFactory       unitofwork.RepositoryFactory
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	log              logger.ILogger
}

func NewAssistantService(
	uowFactory unitofwork.RepositoryFactory,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		uowFactory:       uowFactory,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		log:              log,
	}
}

// Ask performs the single request/response transaction: one completion call,
// then one history insert. The two side effects are independent; a failed
// insert never withholds an already generated response.
func (s *assistantService) Ask(ctx context.Context, userId uuid.UUID, prompt string) (*dto.AskAssistantResponse, error) {
	// The model is stateless per call: fixed persona instruction plus the
	// one user turn. Prior history is never sent.
	response, err := s.llmProvider.Chat(ctx, []llm.Message{
		{Role: "system", Content: constant.AssistantSystemInstruction},
		{Role: "user", Content: prompt},
	}, llm.WithMaxTokens(constant.AssistantMaxTokens))
	if err != nil {
		return nil, err
	}

	if response == "" {
		response = constant.AssistantFallbackResponse
	}

	turn := entity.ConversationTurn{
		Id:        uuid.New(),
		UserId:    userId,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationTurnRepository().Create(ctx, &turn); err != nil {
		// Accepted inconsistency: the turn is missing from history on next
		// load, but the caller still gets their answer.
		s.log.Error("assistant", "Failed to save conversation history", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
	} else if s.publisherService != nil {
		if err := s.publisherService.PublishTurnRecorded(ctx, &dto.AssistantTurnRecordedMessage{
			UserId: userId,
			TurnId: turn.Id,
		}); err != nil {
			s.log.Warn("assistant", "Failed to publish turn recorded event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	return &dto.AskAssistantResponse{Response: response}, nil
}

// GetHistory returns the caller's most recent turns, oldest first.
func (s *assistantService) GetHistory(ctx context.Context, userId uuid.UUID) ([]*dto.ConversationTurnResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	turns, err := uow.ConversationTurnRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Limit{N: constant.AssistantHistoryLimit},
	)
	if err != nil {
		return nil, err
	}

	// Fetched newest-first to apply the limit; reversed so the transcript
	// reads oldest to newest.
	res := make([]*dto.ConversationTurnResponse, len(turns))
	for i, t := range turns {
		res[len(turns)-1-i] = &dto.ConversationTurnResponse{
			Id:        t.Id,
			Prompt:    t.Prompt,
			Response:  t.Response,
			CreatedAt: t.CreatedAt,
		}
	}
	return res, nil
}
