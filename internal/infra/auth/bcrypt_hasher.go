// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"tuition/config"
	domainerrors "tuition/internal/domain/errors"
	"tuition/internal/domain/service"
	"tuition/internal/errors"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	defaultMaxPasswordLength = 72
)

var forbiddenPasswordWords = []string{"password", "admin", "tuition", "qwerty"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var strength config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, strength)
}

func newBcryptHasher(cost int, strength config.PasswordStrengthConfig) *bcryptHasher {
	if strength.MinLength <= 0 {
		strength.MinLength = defaultMinPasswordLength
	}
	if strength.MaxLength <= 0 || strength.MaxLength > defaultMaxPasswordLength {
		strength.MaxLength = defaultMaxPasswordLength
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)
	switch {
	case length < h.strength.MinLength:
		return h.weak("must be at least %d characters long", h.strength.MinLength)
	case len(password) > h.strength.MaxLength:
		return h.weak("must be at most %d bytes long", h.strength.MaxLength)
	case !hasLowercase(password):
		return h.weak("must contain at least one lowercase letter")
	case h.strength.RequireUppercase && !hasUppercase(password):
		return h.weak("must contain at least one uppercase letter")
	case h.strength.RequireNumbers && !hasNumber(password):
		return h.weak("must contain at least one number")
	case containsForbiddenWord(password, forbiddenPasswordWords):
		return h.weak("contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) weak(format string, args ...any) error {
	return errors.Wrapf(domainerrors.ErrPasswordStrength, "password "+format, args...)
}

func hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func hasNumber(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func containsForbiddenWord(password string, words []string) bool {
	lower := strings.ToLower(password)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}

	return false
}
