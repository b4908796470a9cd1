package mapper

import (
	"vaul-ai-be/internal/entity"
	"vaul-ai-be/internal/model"
)

type AssistantMapper struct{}

func NewAssistantMapper() *AssistantMapper {
	return &AssistantMapper{}
}

func (m *AssistantMapper) TurnToEntity(t *model.ConversationTurn) *entity.ConversationTurn {
	if t == nil {
		return nil
	}
	return &entity.ConversationTurn{
		Id:        t.Id,
		UserId:    t.UserId,
		Prompt:    t.Prompt,
		Response:  t.Response,
		CreatedAt: t.CreatedAt,
	}
}

func (m *AssistantMapper) TurnToModel(t *entity.ConversationTurn) *model.ConversationTurn {
	if t == nil {
		return nil
	}
	return &model.ConversationTurn{
		Id:        t.Id,
		UserId:    t.UserId,
		Prompt:    t.Prompt,
		Response:  t.Response,
		CreatedAt: t.CreatedAt,
	}
}
