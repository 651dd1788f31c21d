package assessment

import "strings"

// optionLabels maps a submitted option index to its display label. Questions
// carry up to five options.
var optionLabels = [...]string{"a", "b", "c", "d", "e"}

// NoAnswerLabel marks a question with no valid submitted option.
const NoAnswerLabel = "no answer"

// Outcome is the scored view of one submitted answer set.
type Outcome struct {
	Labels      []string `json:"labels"`
	Correctness []bool   `json:"correctness"`
	Score       int      `json:"score"`
}

// Score grades submitted option indices against the correct answer labels.
// An out-of-range index becomes NoAnswerLabel with false correctness, and a
// missing correct label compares false; neither is an error. Pure function,
// mutates nothing.
func Score(submitted []int, correct []string) Outcome {
	out := Outcome{
		Labels:      make([]string, len(submitted)),
		Correctness: make([]bool, len(submitted)),
	}

	for i, idx := range submitted {
		label := NoAnswerLabel
		if idx >= 0 && idx < len(optionLabels) {
			label = optionLabels[idx]
		}
		out.Labels[i] = label

		if label == NoAnswerLabel || i >= len(correct) {
			continue
		}
		if strings.EqualFold(label, correct[i]) {
			out.Correctness[i] = true
			out.Score++
		}
	}

	return out
}
