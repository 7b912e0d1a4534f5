package store

// Document represents a retrieved context unit from the legal corpus
type Document struct {
	ID       string                 `json:"id"`
	Content  string                 `json:"content"`
	Score    float32                `json:"score"`
	Metadata map[string]interface{} `json:"metadata"`
}

// DocType returns the document type tag from metadata ("" when untagged)
func (d *Document) DocType() string {
	if d.Metadata == nil {
		return ""
	}
	if t, ok := d.Metadata["type"].(string); ok {
		return t
	}
	return ""
}

// Answer returns the curated sample answer carried by FAQ documents ("" when absent)
func (d *Document) Answer() string {
	if d.Metadata == nil {
		return ""
	}
	if a, ok := d.Metadata["answer"].(string); ok {
		return a
	}
	return ""
}

// ConversationTurn is a single role-tagged message within a session transcript
type ConversationTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)
