package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/storage"
)

// LoadMembers retrieves every member in snapshot order.
func (s *SQLiteStore) LoadMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, frequency, phone FROM members ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query members: %v", storage.ErrLoadFailure, err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Frequency, &m.Phone); err != nil {
			return nil, fmt.Errorf("%w: failed to scan member: %v", storage.ErrLoadFailure, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate members: %v", storage.ErrLoadFailure, err)
	}

	return members, nil
}

// SaveMembers replaces the members table with snapshot in one transaction.
func (s *SQLiteStore) SaveMembers(ctx context.Context, snapshot []models.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", storage.ErrWriteFailure, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM members"); err != nil {
		return fmt.Errorf("%w: failed to clear members: %v", storage.ErrWriteFailure, err)
	}

	for i, m := range snapshot {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO members (id, name, frequency, phone, position) VALUES (?, ?, ?, ?, ?)",
			m.ID, m.Name, m.Frequency, m.Phone, i,
		)
		if err != nil {
			return fmt.Errorf("%w: failed to insert member %s: %v", storage.ErrWriteFailure, m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", storage.ErrWriteFailure, err)
	}

	return nil
}
