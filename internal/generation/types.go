// Package generation calls the external content generation service and
// decodes its responses, including the failure signatures the service embeds
// inside otherwise-successful payloads.
package generation

// ItemsPerContent is the fixed question count per generated content set.
const ItemsPerContent = 5

// Content is one generated reading set: a titled passage with its question
// prompts, answer labels, and solution explanations.
type Content struct {
	Title    string   `json:"title"`
	Passage  string   `json:"passage"`
	Question []string `json:"question"`
	Answer   []string `json:"answer"`
	Solution []string `json:"solution"`
}

// Result is the upstream response: three independent content variants for
// one keyword at one level. Variants are ordered by generation slot, not by
// quality. A Result is never mutated once decoded.
type Result struct {
	Keyword     string  `json:"keyword"`
	Level       string  `json:"level"`
	Generation0 Content `json:"generation0"`
	Generation1 Content `json:"generation1"`
	Generation2 Content `json:"generation2"`
}

// Variants returns the three content variants in slot order.
func (r *Result) Variants() [3]Content {
	return [3]Content{r.Generation0, r.Generation1, r.Generation2}
}

// Learner identifies the requesting learner to the upstream service. The
// levels are claims the upstream checks against the requested endpoint.
type Learner struct {
	ID            string
	InferredLevel string
	AssignedLevel string
}
