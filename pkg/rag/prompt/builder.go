package prompt

import (
	"strings"

	"vilaw-chatbot-be/internal/constant"
	"vilaw-chatbot-be/pkg/llm"
	"vilaw-chatbot-be/pkg/store"
)

// Builder composes the generation prompt from the rendered context, the
// current question and the prior conversation turns.
type Builder struct {
	template string
}

func NewBuilder() *Builder {
	return &Builder{template: constant.LegalAssistantPromptV1}
}

// Build substitutes {context} and {question} into the system template, then
// lays out messages as: system instruction → history (oldest first) → final
// user message repeating the question. Missing context or question becomes
// empty text, never an error.
func (b *Builder) Build(contextBlock, question string, history []store.ConversationTurn) []llm.Message {
	system := strings.NewReplacer(
		"{context}", contextBlock,
		"{question}", question,
	).Replace(b.template)

	messages := make([]llm.Message, 0, len(history)+2)
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleSystem,
		Content: system,
	})
	for _, turn := range history {
		messages = append(messages, llm.Message{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}
	messages = append(messages, llm.Message{
		Role:    constant.ChatMessageRoleUser,
		Content: question,
	})
	return messages
}
