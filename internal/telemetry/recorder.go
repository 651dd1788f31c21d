// Package telemetry persists keyword submissions, generation snapshots,
// error events, and assessment records for audit and analytics.
//
// Writes are append-only and fire-and-forget relative to the request that
// produced them: callers log a failed write and continue, so telemetry can
// never mask a primary outcome.
package telemetry

import (
	"context"
	"time"

	"github.com/kmin1231/2xai-sub000/internal/generation"
)

// KeywordSubmission is one generation attempt's keyword, recorded for every
// attempt that reaches moderation — including rejected ones, flagged with
// Rejected rather than silently dropped.
type KeywordSubmission struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Level     string    `json:"level"`
	Mode      string    `json:"mode"`
	LearnerID string    `json:"learner_id"`
	Rejected  bool      `json:"rejected"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerationSnapshot is a successful generation result persisted alongside
// the keyword submission it answers.
type GenerationSnapshot struct {
	ID        string            `json:"id"`
	LearnerID string            `json:"learner_id"`
	Keyword   string            `json:"keyword"`
	Level     string            `json:"level"`
	Mode      string            `json:"mode"`
	Result    generation.Result `json:"result"`
	CreatedAt time.Time         `json:"created_at"`
}

// ErrorEvent records a classified generation failure. Detail holds the raw
// diagnostic snippet for operators; it never reaches a client response.
type ErrorEvent struct {
	ID        string    `json:"id"`
	Keyword   string    `json:"keyword"`
	Level     string    `json:"level"`
	Mode      string    `json:"mode"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Detail    string    `json:"detail"`
	LearnerID string    `json:"learner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AssessmentRecord is one submitted answer set with its scoring outcome.
type AssessmentRecord struct {
	ID              string    `json:"id"`
	LearnerID       string    `json:"learner_id"`
	ContentID       string    `json:"content_id"`
	Correctness     []bool    `json:"correctness"`
	SubmittedLabels []string  `json:"submitted_labels"`
	CorrectLabels   []string  `json:"correct_labels"`
	Score           int       `json:"score"`
	ElapsedSeconds  int       `json:"elapsed_seconds"`
	Mode            string    `json:"mode"`
	CreatedAt       time.Time `json:"created_at"`
}

// Recorder persists pipeline telemetry.
type Recorder interface {
	RecordKeyword(ctx context.Context, sub KeywordSubmission) error
	RecordGeneration(ctx context.Context, snap GenerationSnapshot) error
	RecordError(ctx context.Context, event ErrorEvent) error
	RecordAssessment(ctx context.Context, rec AssessmentRecord) error
}
