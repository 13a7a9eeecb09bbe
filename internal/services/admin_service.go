package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/ravishankar2114/banking-simulator/internal/config"
	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
	"github.com/ravishankar2114/banking-simulator/internal/validation"
)

// CreateAdminParams carries the fields needed to register an administrator
type CreateAdminParams struct {
	Username    string
	Password    string
	Email       string
	PhoneNumber string
	BranchIFSC  string
}

// AdminService handles administrator accounts and bank-wide views
type AdminService struct {
	adminRepo       repositories.AdminRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	accountService  AccountServiceInterface
	passwordService PasswordServiceInterface
	validator       *validation.Validator
	config          *config.Config
	logger          *slog.Logger
}

// NewAdminService creates a new administrator service
func NewAdminService(
	adminRepo repositories.AdminRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	accountService AccountServiceInterface,
	passwordService PasswordServiceInterface,
	cfg *config.Config,
	logger *slog.Logger,
) AdminServiceInterface {
	return &AdminService{
		adminRepo:       adminRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		accountService:  accountService,
		passwordService: passwordService,
		validator:       validation.GetValidator(),
		config:          cfg,
		logger:          logger,
	}
}

// CreateAdmin registers a new administrator with a derived admin ID
func (s *AdminService) CreateAdmin(params CreateAdminParams) (*models.Administrator, error) {
	username := strings.TrimSpace(params.Username)
	if username == "" {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationRequiredField, "username is required")
	}
	if !s.validator.IsValidEmail(params.Email) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidEmail)
	}
	if err := s.passwordService.ValidatePolicy(params.Password); err != nil {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationWeakPassword, "%s", err.Error())
	}
	if params.BranchIFSC != "" && !s.validator.IsValidIFSC(params.BranchIFSC) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidIFSC)
	}

	if _, err := s.adminRepo.GetByUsername(username); err == nil {
		return nil, apperrors.NewValidationError(apperrors.AdminUsernameTaken)
	} else if !errors.Is(err, repositories.ErrAdminNotFound) {
		return nil, err
	}

	passwordHash, err := s.passwordService.Hash(params.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Administrator{
		AdminID:      models.AdminIDForUsername(username),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        params.Email,
		PhoneNumber:  params.PhoneNumber,
		Role:         "ADMIN",
		BankName:     s.config.Bank.Name,
		BranchIFSC:   params.BranchIFSC,
	}

	if err := s.adminRepo.Create(admin); err != nil {
		// The pre-check can race with a concurrent registration
		if errors.Is(err, repositories.ErrAdminExists) {
			return nil, apperrors.NewValidationError(apperrors.AdminUsernameTaken)
		}
		return nil, err
	}

	s.logger.Info("administrator created", "admin_id", admin.AdminID)
	return admin, nil
}

// Login authenticates an administrator by username and password
func (s *AdminService) Login(username, password string) (*models.Administrator, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.NewValidationError(apperrors.AdminNotFound)
		}
		return nil, err
	}

	if !s.passwordService.Compare(password, admin.PasswordHash) {
		s.logger.Warn("admin login failed", "username", username)
		return nil, apperrors.NewValidationError(apperrors.AdminNotFound)
	}

	s.logger.Info("admin login succeeded", "admin_id", admin.AdminID)
	return admin, nil
}

// ListAllAccounts returns every account in the bank
func (s *AdminService) ListAllAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.ListAll()
	if err != nil {
		return nil, apperrors.NewStorageError("list accounts", err)
	}
	return accounts, nil
}

// SearchAccount retrieves a single account by number
func (s *AdminService) SearchAccount(accountNumber string) (*models.Account, error) {
	account, err := s.accountRepo.GetByAccountNumber(accountNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, &apperrors.AccountNotFoundError{Key: accountNumber}
		}
		return nil, err
	}
	return account, nil
}

// FreezeAccount suspends a customer account
func (s *AdminService) FreezeAccount(accountNumber string) (*models.Account, error) {
	return s.accountService.Freeze(accountNumber)
}

// UnfreezeAccount restores a customer account
func (s *AdminService) UnfreezeAccount(accountNumber string) (*models.Account, error) {
	return s.accountService.Unfreeze(accountNumber)
}

// ListAllTransactions returns the complete ledger, newest first
func (s *AdminService) ListAllTransactions() ([]models.TransactionRecord, error) {
	records, err := s.transactionRepo.ListAll()
	if err != nil {
		return nil, apperrors.NewStorageError("list transactions", err)
	}
	return records, nil
}
