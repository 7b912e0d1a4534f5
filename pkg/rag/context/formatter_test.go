package context

import (
	"testing"

	"vilaw-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestFormatEmpty(t *testing.T) {
	assert.Equal(t, "", Format(nil))
	assert.Equal(t, "", Format([]store.Document{}))
}

func TestFormatFAQDocument(t *testing.T) {
	docs := []store.Document{
		{
			Content: "Thủ tục đăng ký kết hôn?",
			Metadata: map[string]interface{}{
				"type":   "Hỏi-đáp",
				"answer": "Nộp hồ sơ tại UBND cấp xã nơi cư trú.",
			},
		},
	}

	out := Format(docs)
	assert.Equal(t,
		"Câu hỏi thường gặp: Thủ tục đăng ký kết hôn?\n"+
			"Câu trả lời mẫu: Nộp hồ sơ tại UBND cấp xã nơi cư trú.",
		out,
	)
}

func TestFormatFAQWithoutAnswer(t *testing.T) {
	docs := []store.Document{
		{
			Content:  "Câu hỏi chưa có đáp án",
			Metadata: map[string]interface{}{"type": "Hỏi-đáp"},
		},
	}

	out := Format(docs)
	assert.Equal(t, "Câu hỏi thường gặp: Câu hỏi chưa có đáp án\nCâu trả lời mẫu: ", out)
}

func TestFormatJoinsWithSeparator(t *testing.T) {
	docs := []store.Document{
		{Content: "A"},
		{Content: "B"},
	}

	assert.Equal(t, "A\n\n---\n\nB", Format(docs))
}

func TestFormatMixedPreservesRetrievalOrder(t *testing.T) {
	docs := []store.Document{
		{Content: "Điều 8 Luật Hôn nhân và gia đình"},
		{
			Content: "Tuổi kết hôn tối thiểu là bao nhiêu?",
			Metadata: map[string]interface{}{
				"type":   "Hỏi-đáp",
				"answer": "Nam từ đủ 20 tuổi, nữ từ đủ 18 tuổi.",
			},
		},
	}

	out := Format(docs)
	assert.Equal(t,
		"Điều 8 Luật Hôn nhân và gia đình"+
			"\n\n---\n\n"+
			"Câu hỏi thường gặp: Tuổi kết hôn tối thiểu là bao nhiêu?\n"+
			"Câu trả lời mẫu: Nam từ đủ 20 tuổi, nữ từ đủ 18 tuổi.",
		out,
	)
}

func TestFormatIsPure(t *testing.T) {
	docs := []store.Document{
		{Content: "A", Metadata: map[string]interface{}{"type": "Hỏi-đáp", "answer": "B"}},
		{Content: "C"},
	}

	first := Format(docs)
	second := Format(docs)
	assert.Equal(t, first, second)
}
