package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dbTimeout = 5 * time.Second

// PostgresLevelStore persists inferred levels in the learner_levels table.
type PostgresLevelStore struct {
	pool *pgxpool.Pool
}

// NewPostgresLevelStore creates a PostgreSQL-backed level store.
func NewPostgresLevelStore(pool *pgxpool.Pool) *PostgresLevelStore {
	return &PostgresLevelStore{pool: pool}
}

func (s *PostgresLevelStore) Get(ctx context.Context, learnerID string) (Level, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	var level string
	err := s.pool.QueryRow(ctx,
		`SELECT inferred_level FROM learner_levels WHERE learner_id = $1`,
		learnerID,
	).Scan(&level)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get level: %w", err)
	}

	parsed, ok := ParseLevel(level)
	if !ok {
		return "", false, fmt.Errorf("stored level %q for learner %s is invalid", level, learnerID)
	}
	return parsed, true, nil
}

func (s *PostgresLevelStore) Set(ctx context.Context, learnerID string, level Level) error {
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	_, err := s.pool.Exec(ctx,
		`INSERT INTO learner_levels (learner_id, inferred_level, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (learner_id)
		 DO UPDATE SET inferred_level = EXCLUDED.inferred_level, updated_at = NOW()`,
		learnerID,
		string(level),
	)
	if err != nil {
		return fmt.Errorf("set level: %w", err)
	}
	return nil
}
