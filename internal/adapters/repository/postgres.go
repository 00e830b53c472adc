package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/metrics"
)

// schema holds the results table. Replace-by-key and the read paths lean
// on the two indexes.
const schema = `
CREATE TABLE IF NOT EXISTS results (
    id           BIGSERIAL PRIMARY KEY,
    event_code   TEXT NOT NULL,
    event_name   TEXT NOT NULL,
    category     TEXT NOT NULL,
    chest_no     TEXT NOT NULL DEFAULT '',
    student_name TEXT NOT NULL,
    class_name   TEXT NOT NULL DEFAULT '',
    school       TEXT NOT NULL,
    grade        TEXT NOT NULL DEFAULT '',
    place        TEXT NOT NULL DEFAULT '',
    points       INTEGER NOT NULL DEFAULT 0,
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_results_event_category ON results (event_name, category);
CREATE INDEX IF NOT EXISTS idx_results_school ON results (school);
`

// PostgresStore implements Store on a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption applies a configuration option to the pool setup.
type PostgresOption func(*pgxpool.Config)

// WithPoolConns bounds the connection pool size.
func WithPoolConns(minConns, maxConns int32) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if minConns > 0 {
			cfg.MinConns = minConns
		}
		if maxConns >= minConns && maxConns > 0 {
			cfg.MaxConns = maxConns
		}
	}
}

// NewPostgresStore connects, verifies the database and ensures the schema.
func NewPostgresStore(ctx context.Context, databaseURL string, opts ...PostgresOption) (*PostgresStore, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	for _, opt := range opts {
		opt(poolCfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// Replace runs the delete and the batched insert inside one transaction,
// so a concurrent upload to the same key sees either the old set or the
// new set, never an interleaving.
func (s *PostgresStore) Replace(ctx context.Context, key model.ReplaceKey, batch []model.Result) (int, error) {
	start := time.Now()
	defer func() {
		metrics.RecordStoreLatency("replace", float64(time.Since(start).Milliseconds()))
	}()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin replace tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM results WHERE event_name = $1 AND category = $2`,
		key.EventName, key.Category,
	); err != nil {
		return 0, fmt.Errorf("delete %q/%q: %w", key.EventName, key.Category, err)
	}

	b := &pgx.Batch{}
	for _, r := range batch {
		b.Queue(
			`INSERT INTO results
			   (event_code, event_name, category, chest_no, student_name, class_name, school, grade, place, points)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			r.EventCode, r.EventName, r.Category, r.ChestNo, r.StudentName,
			r.ClassName, r.School, r.Grade, r.Place, r.Points,
		)
	}
	if err := tx.SendBatch(ctx, b).Close(); err != nil {
		return 0, fmt.Errorf("insert batch for %q/%q: %w", key.EventName, key.Category, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit replace tx: %w", err)
	}

	metrics.RecordReplace(len(batch))
	return len(batch), nil
}

// SchoolStandings sums points per school, descending.
func (s *PostgresStore) SchoolStandings(ctx context.Context) ([]model.SchoolStanding, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT school, COALESCE(SUM(points), 0)
		   FROM results
		  GROUP BY school
		  ORDER BY 2 DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query standings: %w", err)
	}
	defer rows.Close()

	var standings []model.SchoolStanding
	for rows.Next() {
		st := model.SchoolStanding{Rank: len(standings) + 1}
		if err := rows.Scan(&st.School, &st.Points); err != nil {
			return nil, fmt.Errorf("scan standing: %w", err)
		}
		standings = append(standings, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate standings: %w", err)
	}

	return standings, nil
}

// Search matches q against the free-text columns, newest update first.
func (s *PostgresStore) Search(ctx context.Context, q string, limit int) ([]model.Result, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	// an empty query degenerates to '%', i.e. browse the newest records
	pattern := "%" + strings.TrimSpace(q) + "%"
	rows, err := s.pool.Query(ctx,
		`SELECT event_code, event_name, category, chest_no, student_name,
		        class_name, school, grade, place, points, updated_at
		   FROM results
		  WHERE student_name ILIKE $1
		     OR chest_no ILIKE $1
		     OR school ILIKE $1
		     OR event_name ILIKE $1
		  ORDER BY updated_at DESC
		  LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query search: %w", err)
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var r model.Result
		if err := rows.Scan(
			&r.EventCode, &r.EventName, &r.Category, &r.ChestNo, &r.StudentName,
			&r.ClassName, &r.School, &r.Grade, &r.Place, &r.Points, &r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}

	return results, nil
}

// Count returns the number of stored records; errors collapse to zero as
// this only feeds stats.
func (s *PostgresStore) Count(ctx context.Context) int {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0
	}
	return n
}
