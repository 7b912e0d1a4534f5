package retriever

import (
	"context"
	"errors"
	"testing"

	"vilaw-chatbot-be/internal/entity"
	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/internal/repository/specification"
	"vilaw-chatbot-be/pkg/embedding"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmbedder struct {
	vector   []float32
	err      error
	lastText string
	lastTask string
}

func (f *fakeEmbedder) Generate(ctx context.Context, text string, taskType string) (*embedding.EmbeddingResponse, error) {
	f.lastText = text
	f.lastTask = taskType
	if f.err != nil {
		return nil, f.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: f.vector},
	}, nil
}

type fakeDocRepo struct {
	scored    []*contract.ScoredLawDocument
	err       error
	lastLimit int
	lastQuery []float32
}

func (f *fakeDocRepo) CreateBulk(ctx context.Context, docs []*entity.LawDocument) error {
	return errors.New("read-only")
}

func (f *fakeDocRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.LawDocument, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.LawDocument, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDocRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.scored)), nil
}

func (f *fakeDocRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredLawDocument, error) {
	f.lastQuery = embedding
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.scored, nil
}

func TestRetrieveEmbedsQueryForRetrieval(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{0.1, 0.2}}
	repo := &fakeDocRepo{}
	r := NewRetriever(embedder, repo, 5)

	_, err := r.Retrieve(context.Background(), "câu hỏi")
	require.NoError(t, err)

	assert.Equal(t, "câu hỏi", embedder.lastText)
	assert.Equal(t, embedding.TaskTypeRetrievalQuery, embedder.lastTask)
	assert.Equal(t, []float32{0.1, 0.2}, repo.lastQuery)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestRetrieveDefaultsTopK(t *testing.T) {
	embedder := &fakeEmbedder{vector: []float32{1}}
	repo := &fakeDocRepo{}
	r := NewRetriever(embedder, repo, 0)

	_, err := r.Retrieve(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, DefaultTopK, repo.lastLimit)
}

func TestRetrieveMapsDocumentsWithMetadata(t *testing.T) {
	id := uuid.New()
	repo := &fakeDocRepo{scored: []*contract.ScoredLawDocument{
		{
			Document: &entity.LawDocument{
				Id:      id,
				Content: "Thủ tục đăng ký kết hôn?",
				DocType: "Hỏi-đáp",
				Answer:  "Nộp hồ sơ tại UBND cấp xã.",
				Source:  "faq",
			},
			Similarity: 0.93,
		},
		{
			Document:   &entity.LawDocument{Id: uuid.New(), Content: "Điều 8"},
			Similarity: 0.71,
		},
	}}
	r := NewRetriever(&fakeEmbedder{vector: []float32{1}}, repo, 5)

	docs, err := r.Retrieve(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, id.String(), docs[0].ID)
	assert.Equal(t, "Hỏi-đáp", docs[0].Metadata["type"])
	assert.Equal(t, "Nộp hồ sơ tại UBND cấp xã.", docs[0].Metadata["answer"])
	assert.Equal(t, "faq", docs[0].Metadata["source"])
	assert.InDelta(t, 0.93, float64(docs[0].Score), 1e-6)

	// Plain passages carry no FAQ metadata
	_, hasType := docs[1].Metadata["type"]
	assert.False(t, hasType)
}

func TestRetrieveEmbeddingFailure(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{err: errors.New("quota")}, &fakeDocRepo{}, 5)

	_, err := r.Retrieve(context.Background(), "q")
	assert.Error(t, err)
}

func TestRetrieveSearchFailure(t *testing.T) {
	r := NewRetriever(&fakeEmbedder{vector: []float32{1}}, &fakeDocRepo{err: errors.New("db down")}, 5)

	_, err := r.Retrieve(context.Background(), "q")
	assert.Error(t, err)
}
