package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store persists sweep runs in SQLite so accuracy can be compared across
// iteration counts after the fact.
type Store struct {
	conn *sqlx.DB
}

// OpenStore opens or creates a results database at the given path.
func OpenStore(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		iterations INTEGER NOT NULL,
		sweep_start REAL NOT NULL,
		sweep_end REAL NOT NULL,
		sweep_step REAL NOT NULL,
		sample_count INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS samples (
		run_id TEXT NOT NULL REFERENCES runs(id),
		theta REAL NOT NULL,
		cordic_cos REAL NOT NULL,
		std_cos REAL NOT NULL,
		cos_err REAL NOT NULL,
		cordic_sin REAL NOT NULL,
		std_sin REAL NOT NULL,
		sin_err REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_samples_run ON samples(run_id);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// SaveRun records one sweep with its samples and returns the run id.
func (st *Store) SaveRun(sweep Sweep, samples []Sample) (string, error) {
	runID := uuid.NewString()

	tx, err := st.conn.Beginx()
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, created_at, iterations, sweep_start, sweep_end, sweep_step, sample_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC().Format(time.RFC3339),
		sweep.Iterations, sweep.Start, sweep.End, sweep.Step, len(samples))
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	insert, err := tx.Preparex(
		`INSERT INTO samples (run_id, theta, cordic_cos, std_cos, cos_err, cordic_sin, std_sin, sin_err)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare sample insert: %w", err)
	}
	defer insert.Close()

	for _, s := range samples {
		if _, err := insert.Exec(runID,
			s.Theta,
			s.CordicCos, s.StdCos, s.CosErr,
			s.CordicSin, s.StdSin, s.SinErr); err != nil {
			return "", fmt.Errorf("insert sample theta %g: %w", s.Theta, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	slog.Info("saved bench run",
		"run_id", runID,
		"iterations", sweep.Iterations,
		"samples", humanize.Comma(int64(len(samples))))
	return runID, nil
}

// RunCount reports how many runs the store holds.
func (st *Store) RunCount() (int, error) {
	var n int
	if err := st.conn.Get(&n, `SELECT COUNT(*) FROM runs`); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

// LoadSamples returns the samples of a stored run in theta order.
func (st *Store) LoadSamples(runID string) ([]Sample, error) {
	var samples []Sample
	err := st.conn.Select(&samples,
		`SELECT theta, cordic_cos, std_cos, cos_err, cordic_sin, std_sin, sin_err
		 FROM samples WHERE run_id = ? ORDER BY theta`, runID)
	if err != nil {
		return nil, fmt.Errorf("load samples: %w", err)
	}
	return samples, nil
}
