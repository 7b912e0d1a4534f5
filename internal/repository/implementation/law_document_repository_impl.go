package implementation

import (
	"context"
	"errors"

	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/mapper"
	"vilaw-chatbot-be/internal/model"
	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type LawDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LawDocumentMapper
}

func NewLawDocumentRepository(db *gorm.DB) contract.LawDocumentRepository {
	return &LawDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewLawDocumentMapper(),
	}
}

func (r *LawDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LawDocumentRepositoryImpl) CreateBulk(ctx context.Context, docs []*entity.LawDocument) error {
	models := make([]*model.LawDocument, len(docs))
	for i, d := range docs {
		models[i] = r.mapper.ToModel(d)
	}

	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}

	for i, m := range models {
		*docs[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *LawDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LawDocument, error) {
	var m model.LawDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LawDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LawDocument, error) {
	var models []*model.LawDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.LawDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *LawDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.LawDocument{}).Count(&count).Error
	return count, err
}

// SearchSimilar returns the top documents by cosine similarity, most similar
// first. Cosine distance in pgvector is 1 - cosine_similarity, so the score
// is computed as 1 - (embedding <=> query_vector).
func (r *LawDocumentRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredLawDocument, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.LawDocument
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("law_documents").
		Select("law_documents.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	scored := make([]*contract.ScoredLawDocument, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredLawDocument{
			Document:   r.mapper.ToEntity(&res.LawDocument),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}
