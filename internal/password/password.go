// Package password hashes and verifies account credentials.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrWeakPassword is returned when a password fails the policy check.
var ErrWeakPassword = errors.New("weak password")

// Policy controls the strength requirements applied before hashing.
type Policy struct {
	MinLength    int
	RequireDigit bool
	RequireLower bool
	RequireUpper bool
}

// DefaultPolicy matches the registration rules: at least 8 characters
// with one digit, one lowercase and one uppercase letter.
func DefaultPolicy() Policy {
	return Policy{
		MinLength:    8,
		RequireDigit: true,
		RequireLower: true,
		RequireUpper: true,
	}
}

// Hasher derives and checks one-way password digests.
type Hasher struct {
	policy Policy
	cost   int
}

// New returns a Hasher enforcing the given policy.
func New(policy Policy) *Hasher {
	return &Hasher{policy: policy, cost: bcrypt.DefaultCost}
}

// Hash validates plaintext against the policy and returns a bcrypt digest.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if err := h.policy.check(plaintext); err != nil {
		return "", err
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the stored digest. The
// comparison is constant-time; a mismatch returns false, never an error.
func (h *Hasher) Verify(digest, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

func (p Policy) check(plaintext string) error {
	if len(plaintext) < p.MinLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrWeakPassword, p.MinLength)
	}
	hasDigit := false
	hasLower := false
	hasUpper := false
	for _, r := range plaintext {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	if p.RequireDigit && !hasDigit {
		return fmt.Errorf("%w: must contain a digit", ErrWeakPassword)
	}
	if p.RequireLower && !hasLower {
		return fmt.Errorf("%w: must contain a lowercase letter", ErrWeakPassword)
	}
	if p.RequireUpper && !hasUpper {
		return fmt.Errorf("%w: must contain an uppercase letter", ErrWeakPassword)
	}
	return nil
}
