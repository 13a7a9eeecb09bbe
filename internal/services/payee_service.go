package services

import (
	"errors"
	"log/slog"
	"strings"

	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
	"github.com/ravishankar2114/banking-simulator/internal/validation"
)

// PayeeService manages each account's saved beneficiary list
type PayeeService struct {
	payeeRepo   repositories.PayeeRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	validator   *validation.Validator
	logger      *slog.Logger
}

// NewPayeeService creates a new payee service
func NewPayeeService(
	payeeRepo repositories.PayeeRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	logger *slog.Logger,
) PayeeServiceInterface {
	return &PayeeService{
		payeeRepo:   payeeRepo,
		accountRepo: accountRepo,
		validator:   validation.GetValidator(),
		logger:      logger,
	}
}

// Add registers a beneficiary for an account. The target must be an existing
// account other than the owner, and the same pair cannot be added twice.
func (ps *PayeeService) Add(ownerAccountNumber, payeeName, payeeAccountNumber, payeeIFSC string) (*models.Payee, error) {
	if strings.TrimSpace(payeeName) == "" {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationRequiredField, "payee name is required")
	}
	if !ps.validator.IsValidAccountNumber(payeeAccountNumber) {
		return nil, apperrors.NewValidationErrorf(apperrors.ValidationGeneral, "invalid payee account number")
	}
	if !ps.validator.IsValidIFSC(payeeIFSC) {
		return nil, apperrors.NewValidationError(apperrors.ValidationInvalidIFSC)
	}
	if ownerAccountNumber == payeeAccountNumber {
		return nil, apperrors.NewValidationError(apperrors.PayeeSelfNotAllowed)
	}

	if _, err := ps.accountRepo.GetByAccountNumber(payeeAccountNumber); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.NewValidationError(apperrors.PayeeTargetMissing)
		}
		return nil, err
	}

	payee := &models.Payee{
		OwnerAccountNumber: ownerAccountNumber,
		PayeeName:          strings.TrimSpace(payeeName),
		PayeeAccountNumber: payeeAccountNumber,
		PayeeIFSCCode:      payeeIFSC,
	}

	if err := ps.payeeRepo.Create(payee); err != nil {
		if errors.Is(err, repositories.ErrPayeeExists) {
			return nil, apperrors.NewValidationError(apperrors.PayeeAlreadyExists)
		}
		return nil, err
	}

	ps.logger.Info("payee added", "owner", ownerAccountNumber, "payee", payeeAccountNumber)
	return payee, nil
}

// List returns every payee registered by an account
func (ps *PayeeService) List(ownerAccountNumber string) ([]models.Payee, error) {
	payees, err := ps.payeeRepo.ListByOwner(ownerAccountNumber)
	if err != nil {
		return nil, apperrors.NewStorageError("list payees", err)
	}
	return payees, nil
}

// Remove deletes a payee by ID, scoped to its owner. A payee that does not
// exist and one owned by someone else fail identically.
func (ps *PayeeService) Remove(ownerAccountNumber string, payeeID uint) error {
	if err := ps.payeeRepo.DeleteOwned(payeeID, ownerAccountNumber); err != nil {
		if errors.Is(err, repositories.ErrPayeeNotFound) {
			return apperrors.NewValidationError(apperrors.PayeeNotOwned)
		}
		return err
	}

	ps.logger.Info("payee removed", "owner", ownerAccountNumber, "payee_id", payeeID)
	return nil
}
