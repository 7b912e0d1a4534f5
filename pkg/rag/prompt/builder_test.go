package prompt

import (
	"strings"
	"testing"

	"vilaw-chatbot-be/internal/constant"
	"vilaw-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSubstitutesSlots(t *testing.T) {
	b := NewBuilder()

	messages := b.Build("NỘI DUNG LUẬT", "Câu hỏi của tôi", nil)

	require.Len(t, messages, 2)
	assert.Equal(t, constant.ChatMessageRoleSystem, messages[0].Role)
	assert.Contains(t, messages[0].Content, "NỘI DUNG LUẬT")
	assert.Contains(t, messages[0].Content, "Câu hỏi của tôi")
	assert.NotContains(t, messages[0].Content, "{context}")
	assert.NotContains(t, messages[0].Content, "{question}")
}

func TestBuildFinalMessageRepeatsQuestion(t *testing.T) {
	b := NewBuilder()

	messages := b.Build("ctx", "Thủ tục ly hôn?", nil)

	last := messages[len(messages)-1]
	assert.Equal(t, constant.ChatMessageRoleUser, last.Role)
	assert.Equal(t, "Thủ tục ly hôn?", last.Content)
}

func TestBuildInsertsHistoryBetweenSystemAndQuestion(t *testing.T) {
	b := NewBuilder()
	history := []store.ConversationTurn{
		{Role: store.TurnRoleUser, Content: "câu hỏi đầu"},
		{Role: store.TurnRoleAssistant, Content: "trả lời đầu"},
	}

	messages := b.Build("ctx", "câu hỏi sau", history)

	require.Len(t, messages, 4)
	assert.Equal(t, constant.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, "câu hỏi đầu", messages[1].Content)
	assert.Equal(t, store.TurnRoleUser, messages[1].Role)
	assert.Equal(t, "trả lời đầu", messages[2].Content)
	assert.Equal(t, store.TurnRoleAssistant, messages[2].Role)
	assert.Equal(t, "câu hỏi sau", messages[3].Content)
}

func TestBuildEmptyValuesAreNotErrors(t *testing.T) {
	b := NewBuilder()

	messages := b.Build("", "", nil)

	require.Len(t, messages, 2)
	// Both slots collapse to empty text, the template skeleton survives
	assert.True(t, strings.Contains(messages[0].Content, "### CÂU HỎI CỦA NGƯỜI DÙNG ###"))
}
