// Package membership keeps the restaurant's loyalty members.
package membership

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/mmynk/diner/internal/models"
)

// IDPrefix starts every membership number.
const IDPrefix = "1166"

// maxEnrollAttempts bounds the search for an unused suffix. The suffix space
// is 1000 wide, so hitting the cap means the directory is effectively full.
const maxEnrollAttempts = 10000

var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrIDSpaceExhausted = errors.New("no free membership number")
	ErrInvalidPhone     = errors.New("phone number must contain only digits")
)

// Directory is the in-memory membership registry.
// Snapshot order is load order followed by enrollment order.
type Directory struct {
	members []models.Member
	index   map[string]int
	suffix  func() int
}

// Option configures a Directory.
type Option func(*Directory)

// WithSuffixSource overrides the random suffix generator. fn must return
// values in [0, 999].
func WithSuffixSource(fn func() int) Option {
	return func(d *Directory) {
		d.suffix = fn
	}
}

// New creates a directory seeded with members. Duplicate ids keep the last
// record.
func New(members []models.Member, opts ...Option) *Directory {
	d := &Directory{
		index:  make(map[string]int, len(members)),
		suffix: func() int { return rand.IntN(1000) },
	}
	for _, opt := range opts {
		opt(d)
	}
	for _, m := range members {
		d.put(m)
	}
	return d
}

func (d *Directory) put(m models.Member) {
	if i, ok := d.index[m.ID]; ok {
		d.members[i] = m
		return
	}
	d.index[m.ID] = len(d.members)
	d.members = append(d.members, m)
}

// Lookup returns the member with the given id.
func (d *Directory) Lookup(id string) (models.Member, bool) {
	i, ok := d.index[id]
	if !ok {
		return models.Member{}, false
	}
	return d.members[i], true
}

// RecordVisit increments the member's visit frequency and returns the
// updated record.
func (d *Directory) RecordVisit(id string) (models.Member, error) {
	i, ok := d.index[id]
	if !ok {
		return models.Member{}, fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	d.members[i].Frequency++
	return d.members[i], nil
}

// Enroll registers a new member under a fresh membership number.
// The suffix is not zero-padded, so numbers vary in length.
func (d *Directory) Enroll(name, phone string) (models.Member, error) {
	for attempt := 0; attempt < maxEnrollAttempts; attempt++ {
		id := IDPrefix + strconv.Itoa(d.suffix())
		if _, taken := d.index[id]; taken {
			continue
		}
		m := models.Member{
			ID:        id,
			Name:      name,
			Frequency: 1,
			Phone:     phone,
		}
		d.put(m)
		return m, nil
	}
	return models.Member{}, ErrIDSpaceExhausted
}

// ValidatePhone requires a non-empty, digits-only phone number.
func ValidatePhone(phone string) error {
	if phone == "" {
		return ErrInvalidPhone
	}
	for i := 0; i < len(phone); i++ {
		if phone[i] < '0' || phone[i] > '9' {
			return ErrInvalidPhone
		}
	}
	return nil
}

// Snapshot returns a copy of every member for persistence.
func (d *Directory) Snapshot() []models.Member {
	out := make([]models.Member, len(d.members))
	copy(out, d.members)
	return out
}

// Len returns the number of members.
func (d *Directory) Len() int {
	return len(d.members)
}
