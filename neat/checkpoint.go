package neat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// CheckpointStore persists one genome record per generation, keyed by run
// id and generation number, in a SQLite database. Every failure surfaces
// as a recoverable error to the caller; the store never aborts the
// process.
type CheckpointStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewCheckpointStore creates a store backed by the SQLite database at
// path. Call Init before use.
func NewCheckpointStore(path string) *CheckpointStore {
	return &CheckpointStore{path: path}
}

// Init opens the database and creates the schema if needed. Calling Init
// on an already-initialized store is a no-op.
func (s *CheckpointStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("checkpoint store path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS checkpoints (
			run_id TEXT NOT NULL,
			generation INTEGER NOT NULL,
			fitness REAL NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (run_id, generation)
		);
	`)
	if err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// SaveGeneration writes the genome as the checkpoint record for the given
// run and generation, replacing any previous record for that key.
func (s *CheckpointStore) SaveGeneration(ctx context.Context, runID string, generation int, g *Genome) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	payload, err := Serialize(g)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO checkpoints (run_id, generation, fitness, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(run_id, generation) DO UPDATE SET
			fitness = excluded.fitness,
			payload = excluded.payload
	`, runID, generation, g.Fitness, payload)
	return err
}

// LoadGeneration reads back the checkpointed genome for a run and
// generation. The second return value is false when no record exists.
func (s *CheckpointStore) LoadGeneration(ctx context.Context, runID string, generation int) (*Genome, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx,
		`SELECT payload FROM checkpoints WHERE run_id = ? AND generation = ?`,
		runID, generation).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}

	g, err := Deserialize(payload)
	if err != nil {
		return nil, false, fmt.Errorf("decode checkpoint %s/%d: %w", runID, generation, err)
	}
	return g, true, nil
}

// LatestGeneration returns the highest checkpointed generation number for
// a run. The second return value is false when the run has no checkpoints.
func (s *CheckpointStore) LatestGeneration(ctx context.Context, runID string) (int, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return 0, false, err
	}

	var generation sql.NullInt64
	err = db.QueryRowContext(ctx,
		`SELECT MAX(generation) FROM checkpoints WHERE run_id = ?`, runID).Scan(&generation)
	if err != nil {
		return 0, false, err
	}
	if !generation.Valid {
		return 0, false, nil
	}
	return int(generation.Int64), true, nil
}

// Close releases the underlying database.
func (s *CheckpointStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *CheckpointStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, errors.New("checkpoint store is not initialized")
	}
	return s.db, nil
}
