package payment

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Fingerprint returns a bcrypt digest of a card number so receipts can be
// matched to a card without storing the number itself.
func Fingerprint(number string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(number), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to fingerprint card: %w", err)
	}
	return string(hash), nil
}

// MatchFingerprint reports whether number produced fingerprint.
func MatchFingerprint(fingerprint, number string) bool {
	return bcrypt.CompareHashAndPassword([]byte(fingerprint), []byte(number)) == nil
}
