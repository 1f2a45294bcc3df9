package jsonld

// FAQItem is one question and its answer.
type FAQItem struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// FAQPage lists question/answer pairs in display order.
type FAQPage struct {
	Items []FAQItem `json:"items" yaml:"items"`
}

// Build returns an FAQPage document. Items without a question or an answer
// are dropped; mainEntity is always present, possibly empty.
func (f FAQPage) Build() Result {
	doc := newDocument("FAQPage")
	questions := make([]any, 0, len(f.Items))
	var skipped []Skipped

	for i, item := range f.Items {
		if reason := missingReason("question", item.Question, "answer", item.Answer); reason != "" {
			skipped = append(skipped, Skipped{Field: "mainEntity", Index: i, Reason: reason})
			continue
		}
		questions = append(questions, map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		})
	}

	doc["mainEntity"] = questions
	return Result{Document: doc, Skipped: skipped}
}
