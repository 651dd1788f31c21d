// Package assessment scores submitted answers and maintains each learner's
// inferred difficulty level.
package assessment

// Level is a learner difficulty level. Absent state defaults to LevelLow.
type Level string

const (
	LevelLow    Level = "low"
	LevelMiddle Level = "middle"
	LevelHigh   Level = "high"
)

// ParseLevel validates a level string.
func ParseLevel(s string) (Level, bool) {
	switch Level(s) {
	case LevelLow, LevelMiddle, LevelHigh:
		return Level(s), true
	}
	return "", false
}

// Mode is the practice-session mode. Only inferred-mode sessions feed the
// level state machine.
type Mode string

const (
	ModeInferred Mode = "inferred"
	ModeSelected Mode = "selected"
	ModeAssigned Mode = "assigned"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeInferred, ModeSelected, ModeAssigned:
		return Mode(s), true
	}
	return "", false
}

// Next computes the level transition for a five-question score. The
// thresholds are asymmetric on purpose: climbing out of middle demands a
// perfect score while holding high needs only three, so one lucky or
// unlucky attempt cannot oscillate the level.
func Next(current Level, hasPrior bool, score int) Level {
	if !hasPrior {
		switch {
		case score == 5:
			return LevelHigh
		case score >= 2:
			return LevelMiddle
		default:
			return LevelLow
		}
	}

	switch current {
	case LevelHigh:
		if score >= 3 {
			return LevelHigh
		}
		return LevelMiddle
	case LevelMiddle:
		switch {
		case score == 5:
			return LevelHigh
		case score <= 1:
			return LevelLow
		default:
			return LevelMiddle
		}
	default:
		if score >= 4 {
			return LevelMiddle
		}
		return LevelLow
	}
}
