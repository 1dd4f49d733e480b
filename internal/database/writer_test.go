package database

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"orgseed/internal/generator"
	"orgseed/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func minimalDataset() *generator.Dataset {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &generator.Dataset{
		Organization: models.Organization{
			OrgID: "org-1", Name: "TechSync Inc", Domain: "techsyncinc.com",
			IsVerified: true, CreatedAt: now, EmployeeCount: 5000, Industry: "SaaS",
		},
		Users: []models.User{
			{UserID: "u-1", OrgID: "org-1", Email: "a@techsyncinc.com", FullName: "A A",
				FirstName: "A", LastName: "A", PasswordHash: "x", Role: models.RoleIndividualContributor,
				SeniorityLevel: models.SeniorityMid, CreatedAt: now, IsActive: true, Department: "Engineering"},
			{UserID: "u-2", OrgID: "org-1", Email: "b@techsyncinc.com", FullName: "B B",
				FirstName: "B", LastName: "B", PasswordHash: "x", Role: models.RoleLead,
				SeniorityLevel: models.SenioritySenior, CreatedAt: now, IsActive: true, Department: "Engineering"},
		},
	}
}

func TestWriteDatasetInsertsInDependencyOrder(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(true)

	mock.ExpectExec("INSERT INTO `organizations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := NewWriter(db).WriteDataset(context.Background(), minimalDataset())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet(), "empty collections must not emit inserts")
}

func TestWriteDatasetSplitsBatches(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO `organizations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// batch size 1 turns two users into two statements
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := &Writer{db: db, batchSize: 1}
	require.NoError(t, w.WriteDataset(context.Background(), minimalDataset()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWriteDatasetWrapsInsertErrors(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("INSERT INTO `organizations`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnError(assert.AnError)

	err := NewWriter(db).WriteDataset(context.Background(), minimalDataset())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert users")
	assert.ErrorIs(t, err, assert.AnError)
}
