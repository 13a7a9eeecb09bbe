package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ravishankar2114/banking-simulator/internal/config"
	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
	"github.com/ravishankar2114/banking-simulator/internal/validation"
)

// maxRegisterAttempts bounds the generate-and-retry loop around the
// account number unique constraint.
const maxRegisterAttempts = 5

// RegisterAccountParams carries the fields needed to open a new account
type RegisterAccountParams struct {
	HolderName    string
	Password      string
	Email         string
	PhoneNumber   string
	FullAddress   string
	PANNumber     string
	AadharNumber  string
	IFSCCode      string
	AccountType   string
	SecurityLevel string
}

// UpdateProfileParams carries the mutable profile fields. Nil means unchanged.
type UpdateProfileParams struct {
	Email         *string
	PhoneNumber   *string
	FullAddress   *string
	SecurityLevel *string
}

// AccountService handles account registration, authentication and status
type AccountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	passwordService PasswordServiceInterface
	validator       *validation.Validator
	config          *config.Config
	logger          *slog.Logger
	metrics         MetricsRecorderInterface
}

// NewAccountService creates a new account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	passwordService PasswordServiceInterface,
	cfg *config.Config,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) AccountServiceInterface {
	return &AccountService{
		accountRepo:     accountRepo,
		passwordService: passwordService,
		validator:       validation.GetValidator(),
		config:          cfg,
		logger:          logger,
		metrics:         metrics,
	}
}

// Register validates the applicant's details and opens an ACTIVE account
// with a zero balance and a freshly allocated account number.
func (as *AccountService) Register(params RegisterAccountParams) (*models.Account, error) {
	if strings.TrimSpace(params.HolderName) == "" {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationRequiredField, "holder name is required")
	}
	if !as.validator.IsValidEmail(params.Email) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidEmail)
	}
	if !as.validator.IsValidPAN(params.PANNumber) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidPAN)
	}
	if !as.validator.IsValidAadhar(params.AadharNumber) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidAadhar)
	}
	if !as.validator.IsValidIFSC(params.IFSCCode) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidIFSC)
	}
	if strings.TrimSpace(params.FullAddress) == "" {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationRequiredField, "address is required")
	}

	phoneNumber, err := as.normalizePhoneNumber(params.PhoneNumber)
	if err != nil {
		return nil, err
	}

	if err := as.passwordService.ValidatePolicy(params.Password); err != nil {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationWeakPassword, "%s", err.Error())
	}

	passwordHash, err := as.passwordService.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &models.Account{
		HolderName:    strings.TrimSpace(params.HolderName),
		PasswordHash:  passwordHash,
		Email:         params.Email,
		PhoneNumber:   phoneNumber,
		FullAddress:   strings.TrimSpace(params.FullAddress),
		PANNumber:     params.PANNumber,
		AadharNumber:  params.AadharNumber,
		IFSCCode:      params.IFSCCode,
		AccountType:   params.AccountType,
		SecurityLevel: params.SecurityLevel,
		Status:        models.AccountStatusActive,
		Balance:       decimal.Zero,
	}

	// The pre-check in GenerateUniqueAccountNumber can still race with a
	// concurrent registration, so the unique constraint has the last word.
	for attempt := 0; attempt < maxRegisterAttempts; attempt++ {
		number, err := as.accountRepo.GenerateUniqueAccountNumber()
		if err != nil {
			return nil, err
		}

		account.AccountNumber = number
		err = as.accountRepo.Create(account)
		if err == nil {
			as.logger.Info("account registered", "account_number", account.AccountNumber)
			as.metrics.IncrementCounter("account_created", nil)
			return account, nil
		}
		if !errors.Is(err, repositories.ErrAccountNumberExists) {
			return nil, err
		}
	}

	return nil, apperrors.NewValidationError(apperrors.AccountNumberExhausted)
}

// Login authenticates an account holder by account number and password.
// A FROZEN or CLOSED account discloses its status instead of signing in.
func (as *AccountService) Login(accountNumber, password string) (*models.Account, error) {
	account, err := as.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_unknown_account"})
			return nil, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}

	switch account.Status {
	case models.AccountStatusFrozen:
		as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_frozen"})
		return nil, apperrors.NewValidationError(apperrors.AuthAccountFrozen)
	case models.AccountStatusClosed:
		as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_closed"})
		return nil, apperrors.NewValidationError(apperrors.AuthAccountClosed)
	}

	if !as.passwordService.Compare(password, account.PasswordHash) {
		as.logger.Warn("login failed", "account_number", accountNumber)
		as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
		return nil, apperrors.NewValidationError(apperrors.AuthInvalidCredentials)
	}

	as.logger.Info("login succeeded", "account_number", accountNumber)
	as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	return account, nil
}

// Freeze suspends an ACTIVE account
func (as *AccountService) Freeze(accountNumber string) (*models.Account, error) {
	return as.setStatus(accountNumber, func(account *models.Account) error {
		if account.Status == models.AccountStatusFrozen {
			return apperrors.NewValidationError(apperrors.AccountAlreadyFrozen)
		}
		return account.Freeze()
	})
}

// Unfreeze restores a FROZEN account to ACTIVE
func (as *AccountService) Unfreeze(accountNumber string) (*models.Account, error) {
	return as.setStatus(accountNumber, func(account *models.Account) error {
		if account.Status != models.AccountStatusFrozen {
			return apperrors.NewValidationError(apperrors.AccountNotFrozen)
		}
		return account.Unfreeze()
	})
}

func (as *AccountService) setStatus(accountNumber string, change func(*models.Account) error) (*models.Account, error) {
	account, err := as.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}

	// CLOSED is terminal; no status change may touch it
	if account.Status == models.AccountStatusClosed {
		return nil, apperrors.NewValidationError(apperrors.AuthAccountClosed)
	}

	if err := change(account); err != nil {
		return nil, err
	}

	if err := as.accountRepo.Update(account); err != nil {
		return nil, err
	}

	as.logger.Info("account status changed", "account_number", accountNumber, "status", account.Status)
	return account, nil
}

// UpdateProfile applies the provided profile changes after validating each
func (as *AccountService) UpdateProfile(accountNumber string, params UpdateProfileParams) (*models.Account, error) {
	account, err := as.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}

	if params.Email != nil {
		if !as.validator.IsValidEmail(*params.Email) {
			return nil, apperrors.NewValidationError(apperrors.ValidationInvalidEmail)
		}
		account.Email = *params.Email
	}

	if params.PhoneNumber != nil {
		phoneNumber, err := as.normalizePhoneNumber(*params.PhoneNumber)
		if err != nil {
			return nil, err
		}
		account.PhoneNumber = phoneNumber
	}

	if params.FullAddress != nil {
		if strings.TrimSpace(*params.FullAddress) == "" {
			return nil, apperrors.NewValidationErrorf(apperrors.ValidationRequiredField, "address cannot be empty")
		}
		account.FullAddress = strings.TrimSpace(*params.FullAddress)
	}

	if params.SecurityLevel != nil {
		level := *params.SecurityLevel
		if level != models.SecurityLevelStandard && level != models.SecurityLevelSecureOTP {
			return nil, apperrors.NewValidationErrorf(apperrors.ValidationGeneral, "unknown security level: %s", level)
		}
		account.SecurityLevel = level
	}

	if err := as.accountRepo.Update(account); err != nil {
		return nil, err
	}

	as.logger.Info("profile updated", "account_number", accountNumber)
	return account, nil
}

// ChangePassword replaces the account password after verifying the current one
func (as *AccountService) ChangePassword(accountNumber, currentPassword, newPassword string) error {
	account, err := as.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return err
	}

	if !as.passwordService.Compare(currentPassword, account.PasswordHash) {
		return apperrors.NewValidationError(apperrors.AuthInvalidCredentials)
	}

	if currentPassword == newPassword {
		return apperrors.NewValidationErrorf(apperrors.ValidationGeneral, "new password must be different from the current one")
	}

	if err := as.passwordService.ValidatePolicy(newPassword); err != nil {
		return apperrors.NewValidationErrorf(apperrors.ValidationWeakPassword, "%s", err.Error())
	}

	passwordHash, err := as.passwordService.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account.PasswordHash = passwordHash
	if err := as.accountRepo.Update(account); err != nil {
		return err
	}

	as.logger.Info("password changed", "account_number", accountNumber)
	as.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "password_changed"})
	return nil
}

// normalizePhoneNumber accepts a bare local 10-digit number and prefixes the
// configured country code; numbers already in international format pass
// through unchanged.
func (as *AccountService) normalizePhoneNumber(phoneNumber string) (string, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)

	if strings.HasPrefix(phoneNumber, "+") {
		digits := strings.TrimPrefix(phoneNumber, "+")
		if len(digits) < 10 || len(digits) > 15 || strings.ContainsFunc(digits, func(r rune) bool { return r < '0' || r > '9' }) {
			return "", apperrors.NewValidationError(apperrors.ValidationInvalidPhone)
		}
		return phoneNumber, nil
	}

	if as.validator.IsValidLocalPhone(phoneNumber) {
		return as.config.Bank.PhoneCountryPrefix + phoneNumber, nil
	}

	return "", apperrors.NewValidationError(apperrors.ValidationInvalidPhone)
}
