package mapper

import (
	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/model"

	"gorm.io/datatypes"
)

type SystemLogMapper struct{}

func NewSystemLogMapper() *SystemLogMapper {
	return &SystemLogMapper{}
}

func (m *SystemLogMapper) ToModel(e *entity.SystemLog) *model.SystemLog {
	return &model.SystemLog{
		Id:        e.Id,
		Category:  e.Category,
		SessionId: e.SessionId,
		Message:   e.Message,
		Details:   datatypes.JSONMap(e.Details),
		CreatedAt: e.CreatedAt,
	}
}

func (m *SystemLogMapper) ToEntity(mod *model.SystemLog) *entity.SystemLog {
	return &entity.SystemLog{
		Id:        mod.Id,
		Category:  mod.Category,
		SessionId: mod.SessionId,
		Message:   mod.Message,
		Details:   map[string]interface{}(mod.Details),
		CreatedAt: mod.CreatedAt,
	}
}
