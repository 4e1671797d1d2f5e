package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLStateStore keeps team state in the 'team_state' table, one row per
// (team_id, state_key) with the value as a JSON document.
type MySQLStateStore struct{ DB *sql.DB }

func NewMySQLStateStore(db *sql.DB) *MySQLStateStore { return &MySQLStateStore{DB: db} }

const (
	selectStateSQL     = "SELECT payload FROM team_state WHERE team_id=? AND state_key=? LIMIT 1"
	selectTeamStateSQL = "SELECT state_key, payload FROM team_state WHERE team_id=?"
	upsertStateSQL     = `INSERT INTO team_state (team_id, state_key, payload) VALUES (?,?,?)
ON DUPLICATE KEY UPDATE payload=VALUES(payload), updated_at=CURRENT_TIMESTAMP`
	deleteStateSQL = "DELETE FROM team_state WHERE team_id=?"
)

// Load reads one value.  A missing row is not an error.
func (s *MySQLStateStore) Load(ctx context.Context, teamID, key string, dst any) (bool, error) {
	var payload []byte
	err := s.DB.QueryRowContext(ctx, selectStateSQL, teamID, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, decode(payload, dst)
}

// LoadAll reads every row of the team with one statement, which InnoDB
// serves from a single consistent snapshot.  Rows without a destination
// are ignored.
func (s *MySQLStateStore) LoadAll(ctx context.Context, teamID string, dst map[string]any) error {
	rows, err := s.DB.QueryContext(ctx, selectTeamStateSQL, teamID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			key     string
			payload []byte
		)
		if err := rows.Scan(&key, &payload); err != nil {
			return err
		}
		d, ok := dst[key]
		if !ok {
			continue
		}
		if err := decode(payload, d); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return rows.Err()
}

// Save upserts one value.
func (s *MySQLStateStore) Save(ctx context.Context, teamID, key string, v any) error {
	payload, err := encode(v)
	if err != nil {
		return err
	}
	_, err = s.DB.ExecContext(ctx, upsertStateSQL, teamID, key, payload)
	return err
}

// SaveAll upserts every value inside one transaction.  Keys are written in
// sorted order so concurrent batches lock rows in the same sequence.
func (s *MySQLStateStore) SaveAll(ctx context.Context, teamID string, values map[string]any) error {
	keys, encoded, err := encodeAll(values)
	if err != nil {
		return err
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertStateSQL, teamID, k, encoded[k]); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}
	return tx.Commit()
}

// Delete removes every key of a team.
func (s *MySQLStateStore) Delete(ctx context.Context, teamID string) error {
	_, err := s.DB.ExecContext(ctx, deleteStateSQL, teamID)
	return err
}
