// Package lookup manages the curated artist, label and genre tables
// backing product metadata. Each table is a plain (id, name) pair with
// a unique name constraint.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Entry struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

// Querier is the subset of pgxpool.Pool the store relies on.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type table struct {
	entity   string
	relation string
	idColumn string
}

var (
	Artists = table{entity: "Artist", relation: `"Artist"`, idColumn: "artist_id"}
	Labels  = table{entity: "Label", relation: `"Label"`, idColumn: "label_id"}
	Genres  = table{entity: "Genre", relation: `"Genre"`, idColumn: "genre_id"}
)

// Store runs CRUD against one lookup table.
type Store struct {
	db  Querier
	tbl table
}

func NewStore(db Querier, tbl table) *Store {
	return &Store{db: db, tbl: tbl}
}

func (s *Store) Entity() string { return s.tbl.entity }

func (s *Store) List(ctx context.Context) ([]Entry, error) {
	query := fmt.Sprintf(`SELECT %s, name FROM %s ORDER BY name ASC`, s.tbl.idColumn, s.tbl.relation)
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, translateError(s.tbl.entity, "", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Id, &e.Name); err != nil {
			return nil, translateError(s.tbl.entity, "", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, translateError(s.tbl.entity, "", err)
	}
	return entries, nil
}

func (s *Store) Get(ctx context.Context, id int64) (*Entry, error) {
	query := fmt.Sprintf(`SELECT %s, name FROM %s WHERE %s = $1 LIMIT 1`, s.tbl.idColumn, s.tbl.relation, s.tbl.idColumn)
	var e Entry
	err := s.db.QueryRow(ctx, query, id).Scan(&e.Id, &e.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundError(s.tbl.entity, id)
	}
	if err != nil {
		return nil, translateError(s.tbl.entity, "", err)
	}
	return &e, nil
}

func (s *Store) Create(ctx context.Context, name string) (*Entry, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, validationError(s.tbl.entity + " name is required")
	}
	query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) RETURNING %s, name`, s.tbl.relation, s.tbl.idColumn)
	var e Entry
	if err := s.db.QueryRow(ctx, query, trimmed).Scan(&e.Id, &e.Name); err != nil {
		return nil, translateError(s.tbl.entity, trimmed, err)
	}
	return &e, nil
}

func (s *Store) Rename(ctx context.Context, id int64, name string) (*Entry, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, validationError(s.tbl.entity + " name is required")
	}
	query := fmt.Sprintf(`UPDATE %s SET name = $1 WHERE %s = $2 RETURNING %s, name`, s.tbl.relation, s.tbl.idColumn, s.tbl.idColumn)
	var e Entry
	err := s.db.QueryRow(ctx, query, trimmed, id).Scan(&e.Id, &e.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, notFoundError(s.tbl.entity, id)
	}
	if err != nil {
		return nil, translateError(s.tbl.entity, trimmed, err)
	}
	return &e, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, s.tbl.relation, s.tbl.idColumn)
	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		return translateError(s.tbl.entity, "", err)
	}
	if tag.RowsAffected() == 0 {
		return notFoundError(s.tbl.entity, id)
	}
	return nil
}
