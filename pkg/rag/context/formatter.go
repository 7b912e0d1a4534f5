package context

import (
	"strings"

	"vilaw-chatbot-be/internal/constant"
	"vilaw-chatbot-be/pkg/store"
)

// Format renders retrieved documents into a single context block. FAQ
// documents become a labeled question/answer pair (the content is the
// canonical question, the sample answer comes from metadata); everything else
// is rendered verbatim. Units keep retrieval order and are joined with the
// fixed separator. Pure function: no documents → empty string.
func Format(docs []store.Document) string {
	if len(docs) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		if doc.DocType() == constant.DocTypeFAQ {
			rendered = append(rendered,
				constant.FAQQuestionLabel+doc.Content+"\n"+
					constant.FAQAnswerLabel+doc.Answer())
		} else {
			rendered = append(rendered, doc.Content)
		}
	}

	return strings.Join(rendered, constant.ContextSeparator)
}
