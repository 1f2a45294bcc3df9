package jsonld

// HowToStep is a single instruction. URL is optional and usually points at an
// anchor on the guide page.
type HowToStep struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// HowTo describes a step-by-step guide. TotalTime is an ISO 8601 duration
// such as "PT10M" (see FormatDuration).
type HowTo struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	TotalTime   string      `json:"total-time" yaml:"total-time"`
	Steps       []HowToStep `json:"steps" yaml:"steps"`
	Supplies    []string    `json:"supplies,omitempty" yaml:"supplies,omitempty"`
	Tools       []string    `json:"tools,omitempty" yaml:"tools,omitempty"`
}

// Build returns a HowTo document. Steps missing a name or text are dropped and
// the remaining steps are numbered from 1 in their original order.
func (h HowTo) Build() Result {
	doc := newDocument("HowTo")
	doc["name"] = h.Name
	doc["description"] = h.Description
	doc["totalTime"] = h.TotalTime

	if len(h.Supplies) > 0 {
		doc["supply"] = typedNames("HowToSupply", h.Supplies)
	}
	if len(h.Tools) > 0 {
		doc["tool"] = typedNames("HowToTool", h.Tools)
	}

	steps := make([]any, 0, len(h.Steps))
	var skipped []Skipped
	position := 1
	for i, step := range h.Steps {
		if reason := missingReason("name", step.Name, "text", step.Text); reason != "" {
			skipped = append(skipped, Skipped{Field: "step", Index: i, Reason: reason})
			continue
		}
		s := map[string]any{
			"@type":    "HowToStep",
			"position": position,
			"name":     step.Name,
			"text":     step.Text,
		}
		if step.URL != "" {
			s["url"] = step.URL
		}
		steps = append(steps, s)
		position++
	}
	doc["step"] = steps

	return Result{Document: doc, Skipped: skipped}
}

func typedNames(typ string, names []string) []any {
	items := make([]any, 0, len(names))
	for _, name := range names {
		items = append(items, map[string]any{
			"@type": typ,
			"name":  name,
		})
	}
	return items
}
