package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type LawDocument struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content   string            `gorm:"type:text;not null"`
	DocType   string            `gorm:"type:varchar(50);index"`
	Answer    string            `gorm:"type:text"`
	Source    string            `gorm:"type:varchar(255)"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	Embedding pgvector.Vector   `gorm:"type:vector(768)"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (LawDocument) TableName() string {
	return "law_documents"
}
