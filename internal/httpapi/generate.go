package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kmin1231/2xai-sub000/internal/assessment"
	"github.com/kmin1231/2xai-sub000/internal/generation"
	"github.com/kmin1231/2xai-sub000/internal/telemetry"
)

// Fixed learner-facing messages. Raw diagnostics never appear here.
const (
	msgKeywordRequired  = "키워드를 입력해 주세요."
	msgForbiddenKeyword = "금지된 키워드입니다. 다시 입력해 주세요."
	msgInvalidLevel     = "유효하지 않은 난이도입니다."
	msgInvalidMode      = "유효하지 않은 학습 모드입니다."
	msgGenerationFailed = "텍스트 생성 중 오류가 발생했습니다."
)

type generateRequest struct {
	Keyword       string `json:"keyword"`
	LearnerID     string `json:"learnerId"`
	AssignedLevel string `json:"assignedLevel,omitempty"`
}

// handleGenerate serves POST /api/text/contents/{level}?type={mode}.
//
// Pipeline: moderate the keyword, record the submission (rejected or not),
// serve from cache when possible, call the generation service, classify the
// result for embedded failure sentinels, persist the outcome, respond.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	level, ok := assessment.ParseLevel(r.PathValue("level"))
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidLevel, "")
		return
	}
	mode, ok := assessment.ParseMode(r.URL.Query().Get("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidMode, "")
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msgKeywordRequired, "")
		return
	}
	if req.Keyword == "" || req.LearnerID == "" {
		writeError(w, http.StatusBadRequest, msgKeywordRequired, "")
		return
	}

	admissible := s.moderator.IsAdmissible(req.Keyword)

	// Every attempt that reaches moderation is recorded, rejected ones
	// included, so keyword analytics see what learners actually tried.
	s.record(ctx, "keyword", func(ctx context.Context) error {
		return s.recorder.RecordKeyword(ctx, telemetry.KeywordSubmission{
			Keyword:   req.Keyword,
			Level:     string(level),
			Mode:      string(mode),
			LearnerID: req.LearnerID,
			Rejected:  !admissible,
		})
	})

	if !admissible {
		writeError(w, http.StatusBadRequest, msgForbiddenKeyword, "moderation")
		return
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, req.Keyword, string(level), string(mode))
		switch {
		case err != nil:
			slog.Warn("content cache read failed", "error", err)
		case cached != nil:
			slog.Info("serving cached generation", "keyword", req.Keyword, "level", level)
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	inferred, err := s.adjuster.Current(ctx, req.LearnerID)
	if err != nil {
		slog.Error("level lookup failed", "learner", req.LearnerID, "error", err)
		inferred = assessment.LevelLow
	}

	learner := generation.Learner{
		ID:            req.LearnerID,
		InferredLevel: string(inferred),
		AssignedLevel: req.AssignedLevel,
	}

	result, err := s.generator.Request(ctx, req.Keyword, string(level), string(mode), learner)
	if err != nil {
		kind := "transport"
		if errors.Is(err, generation.ErrMalformed) {
			kind = "malformed"
		}
		slog.Error("generation failed", "kind", kind, "keyword", req.Keyword, "error", err)
		s.recordErrorEvent(ctx, req, level, mode, kind, msgGenerationFailed, err.Error())
		writeError(w, http.StatusInternalServerError, msgGenerationFailed, kind)
		return
	}

	if ce := generation.Classify(result); ce != nil {
		slog.Error("generation content error",
			"kind", ce.Kind, "keyword", req.Keyword, "detail", ce.Detail)
		s.recordErrorEvent(ctx, req, level, mode, string(ce.Kind), ce.Message(), ce.Detail)
		writeError(w, ce.Status(), ce.Message(), string(ce.Kind))
		return
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, req.Keyword, string(level), string(mode), result); err != nil {
			slog.Warn("content cache write failed", "error", err)
		}
	}

	s.record(ctx, "generation", func(ctx context.Context) error {
		return s.recorder.RecordGeneration(ctx, telemetry.GenerationSnapshot{
			LearnerID: req.LearnerID,
			Keyword:   req.Keyword,
			Level:     string(level),
			Mode:      string(mode),
			Result:    *result,
		})
	})

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) recordErrorEvent(ctx context.Context, req generateRequest, level assessment.Level, mode assessment.Mode, kind, message, detail string) {
	s.record(ctx, "error_event", func(ctx context.Context) error {
		return s.recorder.RecordError(ctx, telemetry.ErrorEvent{
			Keyword:   req.Keyword,
			Level:     string(level),
			Mode:      string(mode),
			Kind:      kind,
			Message:   message,
			Detail:    detail,
			LearnerID: req.LearnerID,
		})
	})
}
