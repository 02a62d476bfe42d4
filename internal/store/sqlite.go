package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// sqliteTimeLayout is fixed width so text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore keeps designs in a single local database file. The server
// uses it when database.driver is sqlite.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("resolve sqlite path: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, fmt.Errorf("ensure sqlite dir: %w", err)
		}
		path = abs
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{db: db, now: time.Now}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS designs (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	context TEXT,
	initial_scope TEXT,
	refinement TEXT,
	final_design TEXT,
	results TEXT,
	session TEXT,
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_designs_updated_at ON designs(updated_at);
`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create sqlite schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(sqliteTimeLayout)
}

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(sqliteTimeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", v, err)
	}
	return t, nil
}

func nullText(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func textBytes(n sql.NullString) []byte {
	if !n.Valid {
		return nil
	}
	return []byte(n.String)
}

func (s *SQLiteStore) CreateDesign(ctx context.Context, d *Design) error {
	sections, err := sectionColumns(d)
	if err != nil {
		return err
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := s.timestamp()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO designs (id, name, description,
			context, initial_scope, refinement, final_design, results, session,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID.String(), d.Name, d.Description,
		nullText(sections[0]), nullText(sections[1]), nullText(sections[2]),
		nullText(sections[3]), nullText(sections[4]), nullText(sessionBytes(d.Session)),
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return fmt.Errorf("insert design: %w", err)
	}
	d.CreatedAt = now
	d.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) GetDesign(ctx context.Context, id uuid.UUID) (*Design, error) {
	var (
		rawID, created, updated string
		cols                    = make([]sql.NullString, 5)
		session                 sql.NullString
	)
	d := &Design{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, description,
			context, initial_scope, refinement, final_design, results, session,
			created_at, updated_at
		FROM designs WHERE id = ?`, id.String(),
	).Scan(
		&rawID, &d.Name, &d.Description,
		&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &session,
		&created, &updated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if d.ID, err = uuid.Parse(rawID); err != nil {
		return nil, fmt.Errorf("parse design id: %w", err)
	}
	raw := make([][]byte, len(cols))
	for i, c := range cols {
		raw[i] = textBytes(c)
	}
	if err := applySections(d, raw); err != nil {
		return nil, err
	}
	if b := textBytes(session); len(b) > 0 {
		d.Session = b
	}
	if d.CreatedAt, err = parseTime(created); err != nil {
		return nil, err
	}
	if d.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *SQLiteStore) ListDesigns(ctx context.Context, filter DesignFilter) ([]*DesignSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM designs
		ORDER BY updated_at DESC, id
		LIMIT ? OFFSET ?`, filter.limit(), max(filter.Offset, 0))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*DesignSummary
	for rows.Next() {
		var rawID, created, updated string
		sum := &DesignSummary{}
		if err := rows.Scan(&rawID, &sum.Name, &sum.Description, &created, &updated); err != nil {
			return nil, err
		}
		if sum.ID, err = uuid.Parse(rawID); err != nil {
			return nil, fmt.Errorf("parse design id: %w", err)
		}
		if sum.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if sum.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) UpdateDesign(ctx context.Context, d *Design) error {
	sections, err := sectionColumns(d)
	if err != nil {
		return err
	}
	now := s.timestamp()

	res, err := s.db.ExecContext(ctx, `
		UPDATE designs SET
			name = ?, description = ?,
			context = ?, initial_scope = ?, refinement = ?, final_design = ?, results = ?,
			session = ?, updated_at = ?
		WHERE id = ?`,
		d.Name, d.Description,
		nullText(sections[0]), nullText(sections[1]), nullText(sections[2]),
		nullText(sections[3]), nullText(sections[4]), nullText(sessionBytes(d.Session)),
		formatTime(now), d.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}

	var created string
	if err := s.db.QueryRowContext(ctx, `SELECT created_at FROM designs WHERE id = ?`, d.ID.String()).Scan(&created); err != nil {
		return err
	}
	if d.CreatedAt, err = parseTime(created); err != nil {
		return err
	}
	d.UpdatedAt = now
	return nil
}

func (s *SQLiteStore) DeleteDesign(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM designs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete design: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
