package entity

import (
	"time"

	"github.com/google/uuid"
)

// LawDocument is an indexed passage of the legal corpus. FAQ documents
// (DocType "Hỏi-đáp") store the canonical question as Content and carry the
// curated answer separately.
type LawDocument struct {
	Id        uuid.UUID
	Content   string
	DocType   string
	Answer    string
	Source    string
	Metadata  map[string]interface{}
	Embedding []float32
	CreatedAt time.Time
}
