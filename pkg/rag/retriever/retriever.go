package retriever

import (
	"context"
	"fmt"

	"vilaw-chatbot-be/internal/repository/contract"
	"vilaw-chatbot-be/pkg/embedding"
	"vilaw-chatbot-be/pkg/store"
)

const DefaultTopK = 5

// Retriever maps a query string to the top-K most similar corpus documents.
// It embeds the query and delegates the similarity search to the vector
// index; it never writes to the index.
type Retriever struct {
	embeddingProvider embedding.EmbeddingProvider
	docRepo           contract.LawDocumentRepository
	topK              int
}

func NewRetriever(
	embeddingProvider embedding.EmbeddingProvider,
	docRepo contract.LawDocumentRepository,
	topK int,
) *Retriever {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Retriever{
		embeddingProvider: embeddingProvider,
		docRepo:           docRepo,
		topK:              topK,
	}
}

// Retrieve returns documents ordered by similarity, most similar first.
func (r *Retriever) Retrieve(ctx context.Context, query string) ([]store.Document, error) {
	embeddingRes, err := r.embeddingProvider.Generate(ctx, query, embedding.TaskTypeRetrievalQuery)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	scored, err := r.docRepo.SearchSimilar(ctx, embeddingRes.Embedding.Values, r.topK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}

	docs := make([]store.Document, 0, len(scored))
	for _, s := range scored {
		metadata := map[string]interface{}{}
		for k, v := range s.Document.Metadata {
			metadata[k] = v
		}
		if s.Document.DocType != "" {
			metadata["type"] = s.Document.DocType
		}
		if s.Document.Answer != "" {
			metadata["answer"] = s.Document.Answer
		}
		if s.Document.Source != "" {
			metadata["source"] = s.Document.Source
		}

		docs = append(docs, store.Document{
			ID:       s.Document.Id.String(),
			Content:  s.Document.Content,
			Score:    float32(s.Similarity),
			Metadata: metadata,
		})
	}
	return docs, nil
}
