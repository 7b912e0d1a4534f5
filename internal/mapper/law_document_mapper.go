package mapper

import (
	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type LawDocumentMapper struct{}

func NewLawDocumentMapper() *LawDocumentMapper {
	return &LawDocumentMapper{}
}

func (m *LawDocumentMapper) ToModel(e *entity.LawDocument) *model.LawDocument {
	return &model.LawDocument{
		Id:        e.Id,
		Content:   e.Content,
		DocType:   e.DocType,
		Answer:    e.Answer,
		Source:    e.Source,
		Metadata:  datatypes.JSONMap(e.Metadata),
		Embedding: pgvector.NewVector(e.Embedding),
		CreatedAt: e.CreatedAt,
	}
}

func (m *LawDocumentMapper) ToEntity(mod *model.LawDocument) *entity.LawDocument {
	return &entity.LawDocument{
		Id:        mod.Id,
		Content:   mod.Content,
		DocType:   mod.DocType,
		Answer:    mod.Answer,
		Source:    mod.Source,
		Metadata:  map[string]interface{}(mod.Metadata),
		Embedding: mod.Embedding.Slice(),
		CreatedAt: mod.CreatedAt,
	}
}
