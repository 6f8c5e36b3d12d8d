// Package csvfile provides a flat-file implementation of storage.Store.
//
// Members are stored one per line as "id,name,frequency,phone".
// Receipt history is not kept.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store reads and rewrites a members CSV file.
type Store struct {
	path string
}

// New creates a Store backed by the file at path. The file is not touched
// until LoadMembers or SaveMembers.
func New(path string) *Store {
	return &Store{path: path}
}

// Close is a no-op; files are opened per operation.
func (s *Store) Close() error {
	return nil
}

// LoadMembers parses the members file. A missing or malformed file is an
// error; nothing partial is returned.
func (s *Store) LoadMembers(ctx context.Context) ([]models.Member, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrLoadFailure, err)
	}
	defer f.Close()

	members, err := parseMembers(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", storage.ErrLoadFailure, s.path, err)
	}
	return members, nil
}

func parseMembers(r io.Reader) ([]models.Member, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 4

	var members []models.Member
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		freq, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil || freq < 0 {
			return nil, fmt.Errorf("line %d: invalid frequency %q", line, record[2])
		}
		members = append(members, models.Member{
			ID:        strings.TrimSpace(record[0]),
			Name:      record[1],
			Frequency: freq,
			Phone:     strings.TrimSpace(record[3]),
		})
	}
	return members, nil
}

// SaveMembers rewrites the whole file. It writes to a sibling temp file and
// renames it into place so a failed write leaves the old file intact.
func (s *Store) SaveMembers(ctx context.Context, snapshot []models.Member) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", storage.ErrWriteFailure, err)
	}

	tmp, err := os.CreateTemp(dir, ".members-*.csv")
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWriteFailure, err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	for _, m := range snapshot {
		if err := w.Write([]string{m.ID, m.Name, strconv.Itoa(m.Frequency), m.Phone}); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: %v", storage.ErrWriteFailure, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %v", storage.ErrWriteFailure, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWriteFailure, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWriteFailure, err)
	}
	return nil
}

// RecordReceipt drops the receipt; flat files keep members only.
func (s *Store) RecordReceipt(ctx context.Context, receipt *models.Receipt) error {
	slog.Debug("Receipt not persisted by csv store", "method", receipt.Method, "due", receipt.Due.StringFixed(2))
	return nil
}
