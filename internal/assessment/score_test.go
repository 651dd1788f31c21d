package assessment

import (
	"reflect"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		submitted []int
		correct   []string
		want      Outcome
	}{
		{
			name:      "perfect score",
			submitted: []int{2, 2, 2, 3, 3},
			correct:   []string{"c", "c", "c", "d", "d"},
			want: Outcome{
				Labels:      []string{"c", "c", "c", "d", "d"},
				Correctness: []bool{true, true, true, true, true},
				Score:       5,
			},
		},
		{
			name:      "partial score",
			submitted: []int{0, 1, 2, 3, 4},
			correct:   []string{"a", "a", "c", "c", "e"},
			want: Outcome{
				Labels:      []string{"a", "b", "c", "d", "e"},
				Correctness: []bool{true, false, true, false, true},
				Score:       3,
			},
		},
		{
			name:      "out-of-range indices become no answer",
			submitted: []int{-1, 5, 99, 0, 1},
			correct:   []string{"a", "b", "c", "a", "b"},
			want: Outcome{
				Labels:      []string{"no answer", "no answer", "no answer", "a", "b"},
				Correctness: []bool{false, false, false, true, true},
				Score:       2,
			},
		},
		{
			name:      "correct labels compare case-insensitively",
			submitted: []int{0, 1},
			correct:   []string{"A", "B"},
			want: Outcome{
				Labels:      []string{"a", "b"},
				Correctness: []bool{true, true},
				Score:       2,
			},
		},
		{
			name:      "submission longer than answer key",
			submitted: []int{0, 1, 2},
			correct:   []string{"a"},
			want: Outcome{
				Labels:      []string{"a", "b", "c"},
				Correctness: []bool{true, false, false},
				Score:       1,
			},
		},
		{
			name:      "empty submission",
			submitted: []int{},
			correct:   []string{"a", "b"},
			want: Outcome{
				Labels:      []string{},
				Correctness: []bool{},
				Score:       0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.submitted, tt.correct)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Score() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScoreDoesNotMutateInputs(t *testing.T) {
	submitted := []int{0, 1, 2}
	correct := []string{"a", "b", "c"}

	Score(submitted, correct)

	if !reflect.DeepEqual(submitted, []int{0, 1, 2}) {
		t.Errorf("submitted mutated: %v", submitted)
	}
	if !reflect.DeepEqual(correct, []string{"a", "b", "c"}) {
		t.Errorf("correct mutated: %v", correct)
	}
}
