package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kmin1231/2xai-sub000/internal/assessment"
	"github.com/kmin1231/2xai-sub000/internal/telemetry"
)

const (
	msgAnswersRequired   = "제출된 답안이 없습니다."
	msgLevelUpdateFailed = "학습 결과 처리 중 오류가 발생했습니다."
)

type checkAnswerRequest struct {
	Answers        []int    `json:"answers"`
	CorrectAnswer  []string `json:"correctAnswer"`
	Mode           string   `json:"mode"`
	LearnerID      string   `json:"learnerId"`
	ContentID      string   `json:"contentId"`
	ElapsedSeconds int      `json:"elapsedSeconds"`
}

type checkAnswerResponse struct {
	Score       int              `json:"score"`
	Correctness []bool           `json:"correctness"`
	Labels      []string         `json:"labels"`
	NewLevel    assessment.Level `json:"newLevel"`
}

// handleCheckAnswer serves POST /api/text/check-answer: scores the submitted
// option indices, feeds the score to the level adjuster (inferred mode
// only), and records the assessment.
func (s *Server) handleCheckAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req checkAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgAnswersRequired, "")
		return
	}
	if len(req.Answers) == 0 || req.LearnerID == "" {
		writeError(w, http.StatusBadRequest, msgAnswersRequired, "")
		return
	}
	mode, ok := assessment.ParseMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidMode, "")
		return
	}

	outcome := assessment.Score(req.Answers, req.CorrectAnswer)

	newLevel, err := s.adjuster.Adjust(ctx, req.LearnerID, outcome.Score, mode)
	if err != nil {
		slog.Error("level adjustment failed", "learner", req.LearnerID, "error", err)
		writeError(w, http.StatusInternalServerError, msgLevelUpdateFailed, "")
		return
	}

	s.record(ctx, "assessment", func(ctx context.Context) error {
		return s.recorder.RecordAssessment(ctx, telemetry.AssessmentRecord{
			LearnerID:       req.LearnerID,
			ContentID:       req.ContentID,
			Correctness:     outcome.Correctness,
			SubmittedLabels: outcome.Labels,
			CorrectLabels:   req.CorrectAnswer,
			Score:           outcome.Score,
			ElapsedSeconds:  req.ElapsedSeconds,
			Mode:            string(mode),
		})
	})

	writeJSON(w, http.StatusOK, checkAnswerResponse{
		Score:       outcome.Score,
		Correctness: outcome.Correctness,
		Labels:      outcome.Labels,
		NewLevel:    newLevel,
	})
}
