package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SystemLog struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Category  string            `gorm:"type:varchar(100);not null;index"`
	SessionId string            `gorm:"type:varchar(255);index"`
	Message   string            `gorm:"type:text"`
	Details   datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (SystemLog) TableName() string {
	return "system_logs"
}
