package database

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ravishankar2114/banking-simulator/internal/models"
)

func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every sqlite connection to :memory: is a distinct database, so the
	// pool must stay at a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func CreateTestAccount(t *testing.T, db *gorm.DB, accountNumber string) *models.Account {
	t.Helper()

	account := &models.Account{
		AccountNumber: accountNumber,
		HolderName:    gofakeit.Name(),
		PasswordHash:  "hashed_password",
		Email:         gofakeit.Email(),
		PhoneNumber:   "+919876543210",
		FullAddress:   gofakeit.Address().Address,
		PANNumber:     "ABCDE1234F",
		AadharNumber:  "123456789012",
		IFSCCode:      "HDFC0123456",
		AccountType:   models.AccountTypeSavings,
		SecurityLevel: models.SecurityLevelStandard,
		Status:        models.AccountStatusActive,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

func CreateTestAdmin(t *testing.T, db *gorm.DB, username string) *models.Administrator {
	t.Helper()

	admin := &models.Administrator{
		AdminID:      models.AdminIDForUsername(username),
		Username:     username,
		PasswordHash: "hashed_password",
		Email:        fmt.Sprintf("%s@bank.example.com", username),
		PhoneNumber:  "+919000000000",
		Role:         "ADMIN",
		BankName:     "Test Bank",
		BranchIFSC:   "HDFC0123456",
	}

	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("failed to create test admin: %v", err)
	}

	return admin
}

func CleanupTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	tables := []string{
		"transactions",
		"payees",
		"accounts",
		"admins",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
