package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

var (
	// ErrNotFound is returned by updates and deletes of a missing design.
	ErrNotFound = errors.New("design not found")
	// ErrInvalidDesign wraps validation failures.
	ErrInvalidDesign = errors.New("invalid design")
)

// Design is a saved governance system design. The section maps are
// free-form snapshots of each wizard step; Session holds the scoring
// state (answers, factor weights, overrides, canvas adjustments) as raw
// JSON so results can be recomputed after a reload.
type Design struct {
	ID           uuid.UUID              `json:"id"`
	Name         string                 `json:"name"`
	Description  string                 `json:"description,omitempty"`
	Context      map[string]interface{} `json:"context,omitempty"`
	InitialScope map[string]interface{} `json:"initial_scope,omitempty"`
	Refinement   map[string]interface{} `json:"refinement,omitempty"`
	FinalDesign  map[string]interface{} `json:"final_design,omitempty"`
	Results      map[string]interface{} `json:"results,omitempty"`
	Session      json.RawMessage        `json:"session,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// Normalize trims name and description.
func (d *Design) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
}

// Validate checks the name and description limits.
func (d *Design) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDesign)
	}
	if utf8.RuneCountInString(d.Name) > MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidDesign, MaxNameLength)
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidDesign, MaxDescriptionLength)
	}
	if len(d.Session) > 0 && !json.Valid(d.Session) {
		return fmt.Errorf("%w: session is not valid JSON", ErrInvalidDesign)
	}
	return nil
}

// DesignSummary is what list returns: no section payloads.
type DesignSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DesignFilter struct {
	Limit  int
	Offset int
}

const defaultListLimit = 100

func (f DesignFilter) limit() int {
	if f.Limit <= 0 {
		return defaultListLimit
	}
	return f.Limit
}

type Store interface {
	CreateDesign(ctx context.Context, d *Design) error
	// GetDesign returns (nil, nil) when the design does not exist.
	GetDesign(ctx context.Context, id uuid.UUID) (*Design, error)
	// ListDesigns returns summaries ordered by most recently updated.
	ListDesigns(ctx context.Context, filter DesignFilter) ([]*DesignSummary, error)
	UpdateDesign(ctx context.Context, d *Design) error
	DeleteDesign(ctx context.Context, id uuid.UUID) error

	Ping(ctx context.Context) error
	Close() error
}

func marshalSection(m map[string]interface{}) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalSection(data []byte) (map[string]interface{}, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// sectionColumns encodes the five section maps in column order.
func sectionColumns(d *Design) ([][]byte, error) {
	sections := []map[string]interface{}{d.Context, d.InitialScope, d.Refinement, d.FinalDesign, d.Results}
	out := make([][]byte, len(sections))
	for i, s := range sections {
		b, err := marshalSection(s)
		if err != nil {
			return nil, fmt.Errorf("encode design section: %w", err)
		}
		out[i] = b
	}
	return out, nil
}

func applySections(d *Design, cols [][]byte) error {
	targets := []*map[string]interface{}{&d.Context, &d.InitialScope, &d.Refinement, &d.FinalDesign, &d.Results}
	for i, t := range targets {
		m, err := unmarshalSection(cols[i])
		if err != nil {
			return fmt.Errorf("decode design section: %w", err)
		}
		*t = m
	}
	return nil
}

func sessionBytes(raw json.RawMessage) []byte {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
