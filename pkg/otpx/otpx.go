// Package otpx generates and fingerprints the short numeric codes sent to
// invitees. Codes are random six-digit strings; only their SHA-256
// fingerprint is ever persisted, so redemption recomputes the fingerprint
// from the submitted code and compares.
package otpx

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"regexp"
)

// CodeLength is the number of digits in a generated code.
const CodeLength = 6

var codePattern = regexp.MustCompile(`^\d{6}$`)

// codeSpan is the size of the six-digit space [100000, 999999].
var codeSpan = big.NewInt(900000)

// NewCode returns a uniformly random six-digit code. The first digit is never
// zero so the code survives clients that strip leading zeros.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpan)
	if err != nil {
		return "", fmt.Errorf("otpx: generate code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// Fingerprint returns the lowercase hex SHA-256 digest of the code.
// Deterministic on purpose: lookups match by recomputing it.
func Fingerprint(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Matches reports whether the submitted code hashes to the stored
// fingerprint, comparing in constant time.
func Matches(code, fingerprint string) bool {
	return subtle.ConstantTimeCompare([]byte(Fingerprint(code)), []byte(fingerprint)) == 1
}

// ValidFormat reports whether s looks like a code at all, used to reject
// obviously bad input before touching the store.
func ValidFormat(s string) bool {
	return codePattern.MatchString(s)
}
