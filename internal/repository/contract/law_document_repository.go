package contract

import (
	"context"

	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/repository/specification"
)

// ScoredLawDocument wraps LawDocument with its cosine similarity score
type ScoredLawDocument struct {
	Document   *entity.LawDocument
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

// LawDocumentRepository is the access surface of the vector index. The chat
// pipeline only reads from it; writes happen in the offline indexing tools.
type LawDocumentRepository interface {
	CreateBulk(ctx context.Context, docs []*entity.LawDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LawDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LawDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*ScoredLawDocument, error)
}
