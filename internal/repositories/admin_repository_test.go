package repositories

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/ravishankar2114/banking-simulator/internal/database"
	"github.com/ravishankar2114/banking-simulator/internal/models"
)

func TestAdminRepository(t *testing.T) {
	suite.Run(t, new(AdminRepositorySuite))
}

type AdminRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo AdminRepositoryInterface
}

func (s *AdminRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAdminRepository(s.db)
}

func (s *AdminRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *AdminRepositorySuite) TestCreateAndLookup() {
	admin := database.CreateTestAdmin(s.T(), s.db, "branchmanager")

	byUsername, err := s.repo.GetByUsername("branchmanager")
	s.NoError(err)
	s.Equal(admin.AdminID, byUsername.AdminID)

	byID, err := s.repo.GetByAdminID("admin_branchmanager")
	s.NoError(err)
	s.Equal("branchmanager", byID.Username)
}

func (s *AdminRepositorySuite) TestCreate_DuplicateUsername() {
	database.CreateTestAdmin(s.T(), s.db, "branchmanager")

	dup := &models.Administrator{
		AdminID:      "admin_other",
		Username:     "branchmanager",
		PasswordHash: "hashed_password",
		Email:        "other@bank.example.com",
		PhoneNumber:  "+919000000001",
		Role:         "ADMIN",
		BankName:     "Test Bank",
		BranchIFSC:   "HDFC0123456",
	}

	s.Equal(ErrAdminExists, s.repo.Create(dup))
}

func (s *AdminRepositorySuite) TestLookup_NotFound() {
	_, err := s.repo.GetByUsername("ghost")
	s.Equal(ErrAdminNotFound, err)

	_, err = s.repo.GetByAdminID("admin_ghost")
	s.Equal(ErrAdminNotFound, err)
}
