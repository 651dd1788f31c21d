package assessment

import (
	"fmt"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"low", LevelLow, true},
		{"middle", LevelMiddle, true},
		{"high", LevelHigh, true},
		{"HIGH", "", false},
		{"expert", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseLevel(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
	}{
		{"inferred", true},
		{"selected", true},
		{"assigned", true},
		{"personal", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, ok := ParseMode(tt.in); ok != tt.wantOK {
				t.Errorf("ParseMode(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
		})
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		current  Level
		hasPrior bool
		score    int
		want     Level
	}{
		// First assessment establishes the level.
		{"", false, 5, LevelHigh},
		{"", false, 4, LevelMiddle},
		{"", false, 2, LevelMiddle},
		{"", false, 1, LevelLow},
		{"", false, 0, LevelLow},

		// High holds with three or better, otherwise drops one step.
		{LevelHigh, true, 5, LevelHigh},
		{LevelHigh, true, 3, LevelHigh},
		{LevelHigh, true, 2, LevelMiddle},
		{LevelHigh, true, 0, LevelMiddle},

		// Middle climbs only on a perfect score and drops only when
		// nearly everything was wrong.
		{LevelMiddle, true, 5, LevelHigh},
		{LevelMiddle, true, 4, LevelMiddle},
		{LevelMiddle, true, 2, LevelMiddle},
		{LevelMiddle, true, 1, LevelLow},
		{LevelMiddle, true, 0, LevelLow},

		// Low climbs on four or better and never drops further.
		{LevelLow, true, 5, LevelMiddle},
		{LevelLow, true, 4, LevelMiddle},
		{LevelLow, true, 3, LevelLow},
		{LevelLow, true, 0, LevelLow},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s_prior=%v_score=%d", tt.current, tt.hasPrior, tt.score)
		t.Run(name, func(t *testing.T) {
			if got := Next(tt.current, tt.hasPrior, tt.score); got != tt.want {
				t.Errorf("Next(%q, %v, %d) = %q, want %q", tt.current, tt.hasPrior, tt.score, got, tt.want)
			}
		})
	}
}
