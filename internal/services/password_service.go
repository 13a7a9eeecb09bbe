package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/ravishankar2114/banking-simulator/internal/config"
)

const (
	// DefaultBCryptCost factor 12 for financial credential storage
	DefaultBCryptCost = 12

	MinPasswordLength = 8
	MaxPasswordLength = 72 // Bcrypt algorithm limitation
)

var (
	ErrPasswordEmpty     = errors.New("password cannot be empty")
	ErrPasswordTooShort  = errors.New("password does not meet the minimum length")
	ErrPasswordTooLong   = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordNoNumber  = errors.New("password must contain at least one number")
	ErrPasswordNoSpecial = errors.New("password must contain at least one special character (!@#$%^&*())")

	passwordNumberRegex  = regexp.MustCompile(`[0-9]`)
	passwordSpecialRegex = regexp.MustCompile(`[!@#$%^&*()]`)
)

// PasswordService handles password hashing and policy validation
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a password service from the security settings.
// Out-of-range values fall back to the defaults.
func NewPasswordService(cfg *config.SecurityConfig) PasswordServiceInterface {
	ps := &PasswordService{
		cost:      DefaultBCryptCost,
		minLength: MinPasswordLength,
	}
	if cfg != nil {
		if cfg.BCryptCost >= bcrypt.MinCost && cfg.BCryptCost <= bcrypt.MaxCost {
			ps.cost = cfg.BCryptCost
		}
		if cfg.PasswordMinLength > 0 {
			ps.minLength = cfg.PasswordMinLength
		}
	}
	return ps
}

// ValidatePolicy checks if a password meets the account password policy
func (ps *PasswordService) ValidatePolicy(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}

	if len(password) < ps.minLength {
		return ErrPasswordTooShort
	}

	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}

	if !passwordNumberRegex.MatchString(password) {
		return ErrPasswordNoNumber
	}

	if !passwordSpecialRegex.MatchString(password) {
		return ErrPasswordNoSpecial
	}

	return nil
}

// Hash validates and hashes a password using bcrypt
func (ps *PasswordService) Hash(password string) (string, error) {
	if err := ps.ValidatePolicy(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// Compare compares a plain password with a hashed password.
// Returns true if they match, false otherwise.
func (ps *PasswordService) Compare(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
