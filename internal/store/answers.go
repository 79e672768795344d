package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Answer is one recorded solver result.
type Answer struct {
	ID          string `json:"id"`
	Seq         int64  `json:"seq"`
	Day         int    `json:"day"`
	Part        int    `json:"part"`
	InputDigest string `json:"input_digest"`
	Answer      string `json:"answer"`
}

// Filter narrows List. Zero fields match everything.
type Filter struct {
	Day   int
	Part  int
	Limit int
}

// Record appends a. ID and Seq are assigned here; any values set by the
// caller are ignored. Returns the stored answer.
func (s *Store) Record(ctx context.Context, a Answer) (Answer, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Answer{}, fmt.Errorf("record answer: generate id: %w", err)
	}
	a.ID = id.String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Answer{}, fmt.Errorf("record answer: %w", err)
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM answers`).Scan(&a.Seq); err != nil {
		return Answer{}, fmt.Errorf("record answer: next seq: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO answers (id, seq, day, part, input_digest, answer)
		VALUES (?, ?, ?, ?, ?, ?)
	`, a.ID, a.Seq, a.Day, a.Part, a.InputDigest, a.Answer)
	if err != nil {
		return Answer{}, fmt.Errorf("record answer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Answer{}, fmt.Errorf("record answer: commit: %w", err)
	}
	return a, nil
}

// List returns recorded answers matching f in seq order.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) List(ctx context.Context, f Filter) ([]Answer, error) {
	var where []string
	var args []any
	if f.Day != 0 {
		where = append(where, "day = ?")
		args = append(args, f.Day)
	}
	if f.Part != 0 {
		where = append(where, "part = ?")
		args = append(args, f.Part)
	}

	query := `SELECT id, seq, day, part, input_digest, answer FROM answers`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY seq ASC, id ASC COLLATE BINARY"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	defer rows.Close()

	answers := []Answer{}
	for rows.Next() {
		a, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate answers: %w", err)
	}
	return answers, nil
}

// Previous returns the most recent answer recorded for the same day, part
// and input digest. The bool is false when there is none.
func (s *Store) Previous(ctx context.Context, day, part int, digest string) (Answer, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, seq, day, part, input_digest, answer
		FROM answers
		WHERE day = ? AND part = ? AND input_digest = ?
		ORDER BY seq DESC
		LIMIT 1
	`, day, part, digest)

	a, err := scanAnswer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Answer{}, false, nil
	}
	if err != nil {
		return Answer{}, false, err
	}
	return a, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnswer(row scanner) (Answer, error) {
	var a Answer
	if err := row.Scan(&a.ID, &a.Seq, &a.Day, &a.Part, &a.InputDigest, &a.Answer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Answer{}, err
		}
		return Answer{}, fmt.Errorf("scan answer: %w", err)
	}
	return a, nil
}
