package services

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/ravishankar2114/banking-simulator/internal/config"
	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
	"github.com/ravishankar2114/banking-simulator/internal/repositories/repository_mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Bank: config.BankConfig{
			Name:               "Global Bank Inc.",
			Environment:        "testing",
			PhoneCountryPrefix: "+91",
		},
		Security: config.SecurityConfig{
			BCryptCost:        bcrypt.MinCost,
			PasswordMinLength: 8,
		},
	}
}

func validRegisterParams() RegisterAccountParams {
	return RegisterAccountParams{
		HolderName:   "Ravi Kumar",
		Password:     "secret@123",
		Email:        "ravi.kumar@example.com",
		PhoneNumber:  "9876543210",
		FullAddress:  "12 MG Road, Bengaluru",
		PANNumber:    "ABCDE1234F",
		AadharNumber: "123456789012",
		IFSCCode:     "HDFC0123456",
		AccountType:  models.AccountTypeSavings,
	}
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceSuite))
}

type AccountServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAccountRepo *repository_mocks.MockAccountRepositoryInterface
	passwordService PasswordServiceInterface
	service         AccountServiceInterface
}

func (s *AccountServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	cfg := testConfig()
	s.passwordService = NewPasswordService(&cfg.Security)
	s.service = NewAccountService(s.mockAccountRepo, s.passwordService, cfg, slog.Default(), NewNoopMetrics())
}

func (s *AccountServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AccountServiceSuite) hashed(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(hash)
}

func (s *AccountServiceSuite) TestRegister_Success() {
	s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("123456789012", nil)
	s.mockAccountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		s.Equal("123456789012", account.AccountNumber)
		s.Equal("Ravi Kumar", account.HolderName)
		s.Equal("+919876543210", account.PhoneNumber)
		s.Equal(models.AccountStatusActive, account.Status)
		s.True(account.Balance.IsZero())
		s.NotEqual("secret@123", account.PasswordHash)
		return nil
	})

	account, err := s.service.Register(validRegisterParams())
	s.NoError(err)
	s.Equal("123456789012", account.AccountNumber)
}

func (s *AccountServiceSuite) TestRegister_InternationalPhonePassesThrough() {
	params := validRegisterParams()
	params.PhoneNumber = "+14155550100"

	s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("123456789012", nil)
	s.mockAccountRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(account *models.Account) error {
		s.Equal("+14155550100", account.PhoneNumber)
		return nil
	})

	_, err := s.service.Register(params)
	s.NoError(err)
}

func (s *AccountServiceSuite) TestRegister_InvalidPhone() {
	params := validRegisterParams()
	params.PhoneNumber = "12345"

	_, err := s.service.Register(params)
	s.True(apperrors.IsValidation(err))

	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.ValidationInvalidPhone, validationErr.Code)
}

func (s *AccountServiceSuite) TestRegister_LocalPhoneMustStartSixToNine() {
	params := validRegisterParams()
	params.PhoneNumber = "1876543210"

	_, err := s.service.Register(params)
	s.True(apperrors.IsValidation(err))
}

func (s *AccountServiceSuite) TestRegister_InvalidFields() {
	tests := []struct {
		name   string
		mutate func(*RegisterAccountParams)
		code   apperrors.ErrorCode
	}{
		{"bad email", func(p *RegisterAccountParams) { p.Email = "not-an-email" }, apperrors.ValidationInvalidEmail},
		{"bad PAN", func(p *RegisterAccountParams) { p.PANNumber = "1234ABCDE" }, apperrors.ValidationInvalidPAN},
		{"bad aadhar", func(p *RegisterAccountParams) { p.AadharNumber = "12345" }, apperrors.ValidationInvalidAadhar},
		{"bad IFSC", func(p *RegisterAccountParams) { p.IFSCCode = "HD123" }, apperrors.ValidationInvalidIFSC},
		{"weak password", func(p *RegisterAccountParams) { p.Password = "password" }, apperrors.ValidationWeakPassword},
		{"empty name", func(p *RegisterAccountParams) { p.HolderName = "  " }, apperrors.ValidationRequiredField},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			params := validRegisterParams()
			tt.mutate(&params)

			_, err := s.service.Register(params)
			var validationErr *apperrors.ValidationError
			s.ErrorAs(err, &validationErr)
			s.Equal(tt.code, validationErr.Code)
		})
	}
}

func (s *AccountServiceSuite) TestRegister_RetriesOnNumberCollision() {
	gomock.InOrder(
		s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("111111111111", nil),
		s.mockAccountRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrAccountNumberExists),
		s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("222222222222", nil),
		s.mockAccountRepo.EXPECT().Create(gomock.Any()).Return(nil),
	)

	account, err := s.service.Register(validRegisterParams())
	s.NoError(err)
	s.Equal("222222222222", account.AccountNumber)
}

func (s *AccountServiceSuite) TestRegister_GivesUpAfterRepeatedCollisions() {
	s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("111111111111", nil).Times(maxRegisterAttempts)
	s.mockAccountRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrAccountNumberExists).Times(maxRegisterAttempts)

	_, err := s.service.Register(validRegisterParams())
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.AccountNumberExhausted, validationErr.Code)
}

func (s *AccountServiceSuite) TestLogin_Success() {
	account := &models.Account{
		AccountNumber: "123456789012",
		HolderName:    "Ravi Kumar",
		PasswordHash:  s.hashed("secret@123"),
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	got, err := s.service.Login("123456789012", "secret@123")
	s.NoError(err)
	s.Equal("Ravi Kumar", got.HolderName)
}

func (s *AccountServiceSuite) TestLogin_UnknownAccount() {
	s.mockAccountRepo.EXPECT().GetByAccountNumber("999999999999").Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.Login("999999999999", "secret@123")
	s.True(apperrors.IsNotFound(err))
}

func (s *AccountServiceSuite) TestLogin_WrongPassword() {
	account := &models.Account{
		AccountNumber: "123456789012",
		PasswordHash:  s.hashed("secret@123"),
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	_, err := s.service.Login("123456789012", "wrong@123")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.AuthInvalidCredentials, validationErr.Code)
}

func (s *AccountServiceSuite) TestLogin_DisclosesFrozenAndClosed() {
	tests := []struct {
		status string
		code   apperrors.ErrorCode
	}{
		{models.AccountStatusFrozen, apperrors.AuthAccountFrozen},
		{models.AccountStatusClosed, apperrors.AuthAccountClosed},
	}

	for _, tt := range tests {
		s.Run(tt.status, func() {
			account := &models.Account{
				AccountNumber: "123456789012",
				PasswordHash:  s.hashed("secret@123"),
				Status:        tt.status,
			}
			s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

			// Status is disclosed before the password is even checked
			_, err := s.service.Login("123456789012", "anything")
			var validationErr *apperrors.ValidationError
			s.ErrorAs(err, &validationErr)
			s.Equal(tt.code, validationErr.Code)
		})
	}
}

func (s *AccountServiceSuite) TestFreeze() {
	account := &models.Account{
		AccountNumber: "123456789012",
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)
	s.mockAccountRepo.EXPECT().Update(account).Return(nil)

	got, err := s.service.Freeze("123456789012")
	s.NoError(err)
	s.Equal(models.AccountStatusFrozen, got.Status)
}

func (s *AccountServiceSuite) TestFreeze_AlreadyFrozen() {
	account := &models.Account{
		AccountNumber: "123456789012",
		Status:        models.AccountStatusFrozen,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	_, err := s.service.Freeze("123456789012")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.AccountAlreadyFrozen, validationErr.Code)
}

func (s *AccountServiceSuite) TestUnfreeze_NotFrozen() {
	account := &models.Account{
		AccountNumber: "123456789012",
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	_, err := s.service.Unfreeze("123456789012")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.AccountNotFrozen, validationErr.Code)
}

func (s *AccountServiceSuite) TestStatusChange_ClosedIsTerminal() {
	account := &models.Account{
		AccountNumber: "123456789012",
		Status:        models.AccountStatusClosed,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil).Times(2)

	_, err := s.service.Freeze("123456789012")
	s.True(apperrors.IsValidation(err))

	_, err = s.service.Unfreeze("123456789012")
	s.True(apperrors.IsValidation(err))
}

func (s *AccountServiceSuite) TestUpdateProfile() {
	account := &models.Account{
		AccountNumber: "123456789012",
		Email:         "old@example.com",
		PhoneNumber:   "+919876543210",
		FullAddress:   "old address",
		SecurityLevel: models.SecurityLevelStandard,
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)
	s.mockAccountRepo.EXPECT().Update(account).Return(nil)

	newEmail := "new@example.com"
	newPhone := "9000000001"
	newLevel := models.SecurityLevelSecureOTP
	got, err := s.service.UpdateProfile("123456789012", UpdateProfileParams{
		Email:         &newEmail,
		PhoneNumber:   &newPhone,
		SecurityLevel: &newLevel,
	})
	s.NoError(err)
	s.Equal("new@example.com", got.Email)
	s.Equal("+919000000001", got.PhoneNumber)
	s.Equal(models.SecurityLevelSecureOTP, got.SecurityLevel)
	s.Equal("old address", got.FullAddress)
	s.True(got.RequiresOTP())
}

func (s *AccountServiceSuite) TestUpdateProfile_RejectsBadEmail() {
	account := &models.Account{AccountNumber: "123456789012", Status: models.AccountStatusActive}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	badEmail := "nope"
	_, err := s.service.UpdateProfile("123456789012", UpdateProfileParams{Email: &badEmail})
	s.True(apperrors.IsValidation(err))
}

func (s *AccountServiceSuite) TestChangePassword() {
	account := &models.Account{
		AccountNumber: "123456789012",
		PasswordHash:  s.hashed("secret@123"),
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)
	s.mockAccountRepo.EXPECT().Update(account).DoAndReturn(func(updated *models.Account) error {
		s.True(s.passwordService.Compare("fresh@456", updated.PasswordHash))
		return nil
	})

	err := s.service.ChangePassword("123456789012", "secret@123", "fresh@456")
	s.NoError(err)
}

func (s *AccountServiceSuite) TestChangePassword_WrongCurrent() {
	account := &models.Account{
		AccountNumber: "123456789012",
		PasswordHash:  s.hashed("secret@123"),
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	err := s.service.ChangePassword("123456789012", "wrong@123", "fresh@456")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.AuthInvalidCredentials, validationErr.Code)
}

func (s *AccountServiceSuite) TestChangePassword_SameAsCurrent() {
	account := &models.Account{
		AccountNumber: "123456789012",
		PasswordHash:  s.hashed("secret@123"),
		Status:        models.AccountStatusActive,
	}
	s.mockAccountRepo.EXPECT().GetByAccountNumber("123456789012").Return(account, nil)

	err := s.service.ChangePassword("123456789012", "secret@123", "secret@123")
	s.True(apperrors.IsValidation(err))
}

func (s *AccountServiceSuite) TestRegister_RepoFailurePropagates() {
	s.mockAccountRepo.EXPECT().GenerateUniqueAccountNumber().Return("", errors.New("database down"))

	_, err := s.service.Register(validRegisterParams())
	s.Error(err)
	s.False(apperrors.IsValidation(err))
}
