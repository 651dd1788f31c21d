package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Telemetry writes are short inserts; they get a tight timeout so a slow
// database cannot hold a request open.
const dbTimeout = 5 * time.Second

// PostgresRecorder is a PostgreSQL-backed Recorder.
type PostgresRecorder struct {
	pool *pgxpool.Pool
}

// NewPostgresRecorder creates a PostgreSQL-backed telemetry recorder.
func NewPostgresRecorder(pool *pgxpool.Pool) *PostgresRecorder {
	return &PostgresRecorder{pool: pool}
}

func (r *PostgresRecorder) RecordKeyword(ctx context.Context, sub KeywordSubmission) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	fillID(&sub.ID, &sub.CreatedAt)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO keywords (id, keyword, level, mode, learner_id, rejected, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		sub.ID, sub.Keyword, sub.Level, sub.Mode, sub.LearnerID, sub.Rejected, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record keyword: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) RecordGeneration(ctx context.Context, snap GenerationSnapshot) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	fillID(&snap.ID, &snap.CreatedAt)
	result, err := json.Marshal(snap.Result)
	if err != nil {
		return fmt.Errorf("encode generation result: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO generations (id, learner_id, keyword, level, mode, result, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		snap.ID, snap.LearnerID, snap.Keyword, snap.Level, snap.Mode, result, snap.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) RecordError(ctx context.Context, event ErrorEvent) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	fillID(&event.ID, &event.CreatedAt)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO error_events (id, keyword, level, mode, kind, message, detail, learner_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		event.ID, event.Keyword, event.Level, event.Mode, event.Kind,
		event.Message, event.Detail, event.LearnerID, event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record error event: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) RecordAssessment(ctx context.Context, rec AssessmentRecord) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	fillID(&rec.ID, &rec.CreatedAt)
	_, err := r.pool.Exec(ctx,
		`INSERT INTO assessment_records
		 (id, learner_id, content_id, correctness, submitted_labels, correct_labels,
		  score, elapsed_seconds, mode, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.LearnerID, rec.ContentID, rec.Correctness, rec.SubmittedLabels,
		rec.CorrectLabels, rec.Score, rec.ElapsedSeconds, rec.Mode, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record assessment: %w", err)
	}
	return nil
}
