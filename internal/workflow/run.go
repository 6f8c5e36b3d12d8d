package workflow

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mmynk/diner/internal/models"
	"github.com/mmynk/diner/internal/payment"
	"github.com/mmynk/diner/internal/storage"
)

// Run drives s over line-oriented input until the session completes, then
// persists it through store. It returns ErrInputExhausted if the input ends
// first, or ctx.Err() if ctx is cancelled, including while waiting at a
// prompt. Persistence failures are logged and do not fail a completed session.
func Run(ctx context.Context, s *Session, store storage.Store, in io.Reader, out io.Writer) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, readErr := readLines(ctx, in)

	writeLines(w, s.Start())

	for s.State() != StateCompletion {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(w, s.Prompt())
		if err := w.Flush(); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(w)
			slog.Debug("Context done while waiting for input", "state", s.State())
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				fmt.Fprintln(w)
				slog.Warn("Input ended before the session completed", "state", s.State())
				return ErrInputExhausted
			}
			line = l
		}

		_, shown, err := s.Step(line)
		if err != nil {
			return err
		}
		writeLines(w, shown)
	}

	closing, err := s.Complete(ctx, store)
	if err != nil {
		slog.Error("Failed to persist session", "error", err)
	}
	writeLines(w, closing)
	return nil
}

// readLines scans in on its own goroutine so a blocked read never holds up
// cancellation. lines is closed at end of input; the scan error, if any, is
// then sent on the second channel. The goroutine stops once ctx is done, or
// at its next completed read if it is blocked in the reader.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func writeLines(w io.Writer, lines []string) {
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
}

// Complete persists the membership snapshot and the receipt, then returns
// the closing lines. Both writes are attempted; their errors are joined.
func (s *Session) Complete(ctx context.Context, store storage.Store) ([]string, error) {
	if s.state != StateCompletion {
		return nil, fmt.Errorf("cannot complete session in state %s", s.state)
	}

	var errs []error
	if err := store.SaveMembers(ctx, s.members.Snapshot()); err != nil {
		errs = append(errs, err)
	} else {
		slog.Info("Members saved", "count", s.members.Len())
	}

	receipt := s.Receipt()
	if err := store.RecordReceipt(ctx, receipt); err != nil {
		errs = append(errs, err)
	} else {
		slog.Info("Receipt recorded", "receipt_id", receipt.ID, "method", receipt.Method, "due", receipt.Due.StringFixed(2))
	}

	due, _ := s.Due().Round(2).Float64()
	s.metrics.SessionCompleted(string(s.method), due)

	return []string{msgThankYou, "", msgEnd}, errors.Join(errs...)
}

// Receipt summarizes the session's settlement.
func (s *Session) Receipt() *models.Receipt {
	r := &models.Receipt{
		MemberID:   s.memberID,
		Entries:    s.ledger.Entries(),
		Subtotal:   s.subtotal,
		Due:        s.Due(),
		Discounted: s.discounted,
		Method:     s.method,
	}

	switch {
	case s.cash != nil:
		r.Tendered = s.cash.Paid()
		r.Change = s.cash.Change()
	case s.card != nil && s.card.Approved():
		r.Tendered = s.Due()
		r.CardMasked = payment.MaskCardNumber(s.card.Number())
		fp, err := payment.Fingerprint(s.card.Number())
		if err != nil {
			slog.Warn("Card fingerprint unavailable", "error", err)
		}
		r.CardFingerprint = fp
	}
	return r
}
