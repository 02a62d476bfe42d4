package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

const postgresSchema = `
CREATE TABLE IF NOT EXISTS cobalt_designs (
	id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	context       JSONB,
	initial_scope JSONB,
	refinement    JSONB,
	final_design  JSONB,
	results       JSONB,
	session       JSONB,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS cobalt_designs_updated_at_idx ON cobalt_designs (updated_at DESC);
`

// EnsureSchema creates the designs table when it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

const designColumns = `id, name, description,
	context, initial_scope, refinement, final_design, results, session,
	created_at, updated_at`

func (s *PostgresStore) CreateDesign(ctx context.Context, d *Design) error {
	sections, err := sectionColumns(d)
	if err != nil {
		return err
	}
	return s.pool.QueryRow(ctx, `
		INSERT INTO cobalt_designs (name, description,
			context, initial_scope, refinement, final_design, results, session)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		d.Name, d.Description,
		sections[0], sections[1], sections[2], sections[3], sections[4], sessionBytes(d.Session),
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (s *PostgresStore) GetDesign(ctx context.Context, id uuid.UUID) (*Design, error) {
	d := &Design{}
	cols := make([][]byte, 5)
	var session []byte
	err := s.pool.QueryRow(ctx, `
		SELECT `+designColumns+`
		FROM cobalt_designs WHERE id = $1`, id,
	).Scan(
		&d.ID, &d.Name, &d.Description,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &session,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := applySections(d, cols); err != nil {
		return nil, err
	}
	if len(session) > 0 {
		d.Session = session
	}
	return d, nil
}

func (s *PostgresStore) ListDesigns(ctx context.Context, filter DesignFilter) ([]*DesignSummary, error) {
	query := `SELECT id, name, description, created_at, updated_at
		FROM cobalt_designs
		ORDER BY updated_at DESC, id
		LIMIT $1`
	args := []interface{}{filter.limit()}
	if filter.Offset > 0 {
		query += " OFFSET $2"
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DesignSummary
	for rows.Next() {
		sum := &DesignSummary{}
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Description, &sum.CreatedAt, &sum.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateDesign(ctx context.Context, d *Design) error {
	sections, err := sectionColumns(d)
	if err != nil {
		return err
	}
	err = s.pool.QueryRow(ctx, `
		UPDATE cobalt_designs SET
			name = $2, description = $3,
			context = $4, initial_scope = $5, refinement = $6, final_design = $7, results = $8,
			session = $9, updated_at = now()
		WHERE id = $1
		RETURNING created_at, updated_at`,
		d.ID, d.Name, d.Description,
		sections[0], sections[1], sections[2], sections[3], sections[4], sessionBytes(d.Session),
	).Scan(&d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *PostgresStore) DeleteDesign(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM cobalt_designs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
