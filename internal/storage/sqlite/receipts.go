package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/storage"
)

// nullable maps an empty string to SQL NULL.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// RecordReceipt persists a receipt and its line items.
func (s *SQLiteStore) RecordReceipt(ctx context.Context, receipt *models.Receipt) error {
	if receipt.ID == "" {
		receipt.ID = uuid.New().String()
	}
	if receipt.CreatedAt == 0 {
		receipt.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %v", storage.ErrWriteFailure, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO receipts (id, member_id, subtotal, due, discounted, method, tendered, change_given, card_masked, card_fingerprint, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		receipt.ID, nullable(receipt.MemberID),
		receipt.Subtotal.String(), receipt.Due.String(), receipt.Discounted,
		string(receipt.Method), receipt.Tendered.String(), receipt.Change.String(),
		nullable(receipt.CardMasked), nullable(receipt.CardFingerprint),
		receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to insert receipt: %v", storage.ErrWriteFailure, err)
	}

	for i, e := range receipt.Entries {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO receipt_items (receipt_id, position, item_key, name, price) VALUES (?, ?, ?, ?, ?)",
			receipt.ID, i, e.Key, e.Name, e.Price.String(),
		)
		if err != nil {
			return fmt.Errorf("%w: failed to insert receipt item: %v", storage.ErrWriteFailure, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit transaction: %v", storage.ErrWriteFailure, err)
	}

	return nil
}

// GetReceipt retrieves a receipt by ID, including its line items.
func (s *SQLiteStore) GetReceipt(ctx context.Context, receiptID string) (*models.Receipt, error) {
	receipt := &models.Receipt{}
	var (
		memberID, cardMasked, cardFingerprint sql.NullString
		subtotal, due, tendered, change       string
		method                                string
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT id, member_id, subtotal, due, discounted, method, tendered, change_given, card_masked, card_fingerprint, created_at
		 FROM receipts WHERE id = ?`,
		receiptID,
	).Scan(&receipt.ID, &memberID, &subtotal, &due, &receipt.Discounted, &method,
		&tendered, &change, &cardMasked, &cardFingerprint, &receipt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("receipt not found: %s", receiptID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}

	receipt.MemberID = memberID.String
	receipt.CardMasked = cardMasked.String
	receipt.CardFingerprint = cardFingerprint.String
	receipt.Method = models.PaymentMethod(method)
	if receipt.Subtotal, err = decimal.NewFromString(subtotal); err != nil {
		return nil, fmt.Errorf("failed to parse subtotal: %w", err)
	}
	if receipt.Due, err = decimal.NewFromString(due); err != nil {
		return nil, fmt.Errorf("failed to parse due: %w", err)
	}
	if receipt.Tendered, err = decimal.NewFromString(tendered); err != nil {
		return nil, fmt.Errorf("failed to parse tendered: %w", err)
	}
	if receipt.Change, err = decimal.NewFromString(change); err != nil {
		return nil, fmt.Errorf("failed to parse change: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT item_key, name, price FROM receipt_items WHERE receipt_id = ? ORDER BY position",
		receiptID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.OrderEntry
		var price string
		if err := rows.Scan(&e.Key, &e.Name, &price); err != nil {
			return nil, fmt.Errorf("failed to scan receipt item: %w", err)
		}
		if e.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("failed to parse item price: %w", err)
		}
		receipt.Entries = append(receipt.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipt items: %w", err)
	}

	return receipt, nil
}

// ListReceiptsByMember retrieves a member's receipts, newest first.
// Line items are not loaded.
func (s *SQLiteStore) ListReceiptsByMember(ctx context.Context, memberID string) ([]*models.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, due, method, created_at FROM receipts
		 WHERE member_id = ? ORDER BY created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts by member: %w", err)
	}
	defer rows.Close()

	var receipts []*models.Receipt
	for rows.Next() {
		r := &models.Receipt{MemberID: memberID}
		var due, method string
		if err := rows.Scan(&r.ID, &due, &method, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		if r.Due, err = decimal.NewFromString(due); err != nil {
			return nil, fmt.Errorf("failed to parse due: %w", err)
		}
		r.Method = models.PaymentMethod(method)
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate receipts: %w", err)
	}

	return receipts, nil
}
