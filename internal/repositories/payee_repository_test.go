package repositories

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ravishankar2114/banking-simulator/internal/database"
	"github.com/ravishankar2114/banking-simulator/internal/models"
)

func TestPayeeRepository(t *testing.T) {
	suite.Run(t, new(PayeeRepositorySuite))
}

type PayeeRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo PayeeRepositoryInterface
}

func (s *PayeeRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewPayeeRepository(s.db)
}

func (s *PayeeRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *PayeeRepositorySuite) newPayee(owner, payeeNumber string) *models.Payee {
	return &models.Payee{
		OwnerAccountNumber: owner,
		PayeeName:          "Rahul Sharma",
		PayeeAccountNumber: payeeNumber,
		PayeeIFSCCode:      "HDFC0123456",
	}
}

func (s *PayeeRepositorySuite) TestCreate() {
	payee := s.newPayee("111122223333", "444455556666")

	s.NoError(s.repo.Create(payee))
	s.NotZero(payee.ID)
}

func (s *PayeeRepositorySuite) TestCreate_DuplicatePair() {
	s.NoError(s.repo.Create(s.newPayee("111122223333", "444455556666")))

	err := s.repo.Create(s.newPayee("111122223333", "444455556666"))
	s.Equal(ErrPayeeExists, err)
}

func (s *PayeeRepositorySuite) TestCreate_ConcurrentSamePair() {
	results := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			results <- s.repo.Create(s.newPayee("111122223333", "444455556666"))
		}()
	}
	wg.Wait()
	close(results)

	var failures int
	for err := range results {
		if err != nil {
			s.Equal(ErrPayeeExists, err)
			failures++
		}
	}
	s.Equal(1, failures)

	// Exactly one row survives the race
	payees, err := s.repo.ListByOwner("111122223333")
	s.NoError(err)
	s.Len(payees, 1)
}

func (s *PayeeRepositorySuite) TestCreate_SamePayeeDifferentOwners() {
	s.NoError(s.repo.Create(s.newPayee("111122223333", "444455556666")))
	s.NoError(s.repo.Create(s.newPayee("777788889999", "444455556666")))
}

func (s *PayeeRepositorySuite) TestListByOwner() {
	s.NoError(s.repo.Create(s.newPayee("111122223333", "444455556666")))
	s.NoError(s.repo.Create(s.newPayee("111122223333", "777788889999")))
	s.NoError(s.repo.Create(s.newPayee("777788889999", "111122223333")))

	payees, err := s.repo.ListByOwner("111122223333")
	s.NoError(err)
	s.Len(payees, 2)

	payees, err = s.repo.ListByOwner("000000000000")
	s.NoError(err)
	s.Empty(payees)
}

func (s *PayeeRepositorySuite) TestGetOwned() {
	payee := s.newPayee("111122223333", "444455556666")
	s.NoError(s.repo.Create(payee))

	found, err := s.repo.GetOwned(payee.ID, "111122223333")
	s.NoError(err)
	s.Equal(payee.PayeeAccountNumber, found.PayeeAccountNumber)

	// Another owner's view of the same ID is a miss
	_, err = s.repo.GetOwned(payee.ID, "777788889999")
	s.Equal(ErrPayeeNotFound, err)
}

func (s *PayeeRepositorySuite) TestDeleteOwned() {
	payee := s.newPayee("111122223333", "444455556666")
	s.NoError(s.repo.Create(payee))

	s.Equal(ErrPayeeNotFound, s.repo.DeleteOwned(payee.ID, "777788889999"))

	s.NoError(s.repo.DeleteOwned(payee.ID, "111122223333"))
	s.Equal(ErrPayeeNotFound, s.repo.DeleteOwned(payee.ID, "111122223333"))

	payees, err := s.repo.ListByOwner("111122223333")
	s.NoError(err)
	s.Empty(payees)
}
