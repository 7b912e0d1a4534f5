package entity

import (
	"time"

	"github.com/google/uuid"
)

type SystemLog struct {
	Id        uuid.UUID
	Category  string
	SessionId string
	Message   string
	Details   map[string]interface{}
	CreatedAt time.Time
}
