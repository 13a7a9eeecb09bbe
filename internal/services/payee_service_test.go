package services

import (
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	apperrors "github.com/ravishankar2114/banking-simulator/internal/errors"
	"github.com/ravishankar2114/banking-simulator/internal/models"
	"github.com/ravishankar2114/banking-simulator/internal/repositories"
	"github.com/ravishankar2114/banking-simulator/internal/repositories/repository_mocks"
)

func TestPayeeService(t *testing.T) {
	suite.Run(t, new(PayeeServiceSuite))
}

type PayeeServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPayeeRepo   *repository_mocks.MockPayeeRepositoryInterface
	mockAccountRepo *repository_mocks.MockAccountRepositoryInterface
	service         PayeeServiceInterface
}

func (s *PayeeServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPayeeRepo = repository_mocks.NewMockPayeeRepositoryInterface(s.ctrl)
	s.mockAccountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.service = NewPayeeService(s.mockPayeeRepo, s.mockAccountRepo, slog.Default())
}

func (s *PayeeServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *PayeeServiceSuite) TestAdd() {
	s.mockAccountRepo.EXPECT().
		GetByAccountNumber("444455556666").
		Return(&models.Account{AccountNumber: "444455556666"}, nil)
	s.mockPayeeRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(payee *models.Payee) error {
		s.Equal("111122223333", payee.OwnerAccountNumber)
		s.Equal("Rahul Sharma", payee.PayeeName)
		return nil
	})

	payee, err := s.service.Add("111122223333", "Rahul Sharma", "444455556666", "HDFC0123456")
	s.NoError(err)
	s.Equal("444455556666", payee.PayeeAccountNumber)
}

func (s *PayeeServiceSuite) TestAdd_SelfNotAllowed() {
	_, err := s.service.Add("111122223333", "Me", "111122223333", "HDFC0123456")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.PayeeSelfNotAllowed, validationErr.Code)
}

func (s *PayeeServiceSuite) TestAdd_TargetMissing() {
	s.mockAccountRepo.EXPECT().
		GetByAccountNumber("999999999999").
		Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.Add("111122223333", "Ghost", "999999999999", "HDFC0123456")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.PayeeTargetMissing, validationErr.Code)
}

func (s *PayeeServiceSuite) TestAdd_Duplicate() {
	s.mockAccountRepo.EXPECT().
		GetByAccountNumber("444455556666").
		Return(&models.Account{AccountNumber: "444455556666"}, nil)
	s.mockPayeeRepo.EXPECT().Create(gomock.Any()).Return(repositories.ErrPayeeExists)

	_, err := s.service.Add("111122223333", "Rahul Sharma", "444455556666", "HDFC0123456")
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.PayeeAlreadyExists, validationErr.Code)
}

func (s *PayeeServiceSuite) TestAdd_InvalidInput() {
	tests := []struct {
		name        string
		payeeName   string
		payeeNumber string
		payeeIFSC   string
	}{
		{"empty name", " ", "444455556666", "HDFC0123456"},
		{"short account number", "Rahul", "12345", "HDFC0123456"},
		{"bad IFSC", "Rahul", "444455556666", "NOPE"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Add("111122223333", tt.payeeName, tt.payeeNumber, tt.payeeIFSC)
			s.True(apperrors.IsValidation(err))
		})
	}
}

func (s *PayeeServiceSuite) TestList() {
	s.mockPayeeRepo.EXPECT().ListByOwner("111122223333").Return([]models.Payee{
		{ID: 1, OwnerAccountNumber: "111122223333", PayeeAccountNumber: "444455556666"},
	}, nil)

	payees, err := s.service.List("111122223333")
	s.NoError(err)
	s.Len(payees, 1)
}

func (s *PayeeServiceSuite) TestRemove() {
	s.mockPayeeRepo.EXPECT().DeleteOwned(uint(7), "111122223333").Return(nil)

	s.NoError(s.service.Remove("111122223333", 7))
}

func (s *PayeeServiceSuite) TestRemove_NotOwned() {
	s.mockPayeeRepo.EXPECT().DeleteOwned(uint(7), "111122223333").Return(repositories.ErrPayeeNotFound)

	err := s.service.Remove("111122223333", 7)
	var validationErr *apperrors.ValidationError
	s.ErrorAs(err, &validationErr)
	s.Equal(apperrors.PayeeNotOwned, validationErr.Code)
}
