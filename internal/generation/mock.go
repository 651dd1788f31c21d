package generation

import "context"

// Mock is a test double for the generation client.
type Mock struct {
	Result      *Result
	Err         error
	LastKeyword string
	LastLevel   string
	LastMode    string
	LastLearner Learner
	Calls       int
}

func (m *Mock) Request(_ context.Context, keyword, level, mode string, learner Learner) (*Result, error) {
	m.Calls++
	m.LastKeyword = keyword
	m.LastLevel = level
	m.LastMode = mode
	m.LastLearner = learner
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
