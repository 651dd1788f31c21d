package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRecorder is an in-memory Recorder for development and tests.
type MemoryRecorder struct {
	mu          sync.RWMutex
	keywords    []KeywordSubmission
	generations []GenerationSnapshot
	errors      []ErrorEvent
	assessments []AssessmentRecord
}

// NewMemoryRecorder creates an empty in-memory recorder.
func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) RecordKeyword(_ context.Context, sub KeywordSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fillID(&sub.ID, &sub.CreatedAt)
	r.keywords = append(r.keywords, sub)
	return nil
}

func (r *MemoryRecorder) RecordGeneration(_ context.Context, snap GenerationSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fillID(&snap.ID, &snap.CreatedAt)
	r.generations = append(r.generations, snap)
	return nil
}

func (r *MemoryRecorder) RecordError(_ context.Context, event ErrorEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fillID(&event.ID, &event.CreatedAt)
	r.errors = append(r.errors, event)
	return nil
}

func (r *MemoryRecorder) RecordAssessment(_ context.Context, rec AssessmentRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fillID(&rec.ID, &rec.CreatedAt)
	r.assessments = append(r.assessments, rec)
	return nil
}

// Keywords returns a copy of the recorded keyword submissions.
func (r *MemoryRecorder) Keywords() []KeywordSubmission {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]KeywordSubmission(nil), r.keywords...)
}

// Generations returns a copy of the recorded generation snapshots.
func (r *MemoryRecorder) Generations() []GenerationSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]GenerationSnapshot(nil), r.generations...)
}

// Errors returns a copy of the recorded error events.
func (r *MemoryRecorder) Errors() []ErrorEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]ErrorEvent(nil), r.errors...)
}

// Assessments returns a copy of the recorded assessment records.
func (r *MemoryRecorder) Assessments() []AssessmentRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]AssessmentRecord(nil), r.assessments...)
}

func fillID(id *string, createdAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = time.Now()
	}
}
