// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/diner/internal/models"
)

var (
	// ErrLoadFailure wraps any failure to read stored members at startup.
	ErrLoadFailure = errors.New("failed to load stored data")

	// ErrWriteFailure wraps any failure to persist a snapshot or receipt.
	ErrWriteFailure = errors.New("failed to write stored data")
)

// Store defines the interface for membership and receipt persistence.
// This abstraction allows swapping storage backends (CSV, SQLite)
// without changing the workflow.
type Store interface {
	// LoadMembers returns every stored member in stored order.
	LoadMembers(ctx context.Context) ([]models.Member, error)

	// SaveMembers replaces the stored members with snapshot.
	// It overwrites; it never appends.
	SaveMembers(ctx context.Context, snapshot []models.Member) error

	// RecordReceipt persists a completed session's receipt.
	// The receipt.ID field will be populated by the store if empty.
	RecordReceipt(ctx context.Context, receipt *models.Receipt) error

	// Close releases any resources held by the store.
	Close() error
}
