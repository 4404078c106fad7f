package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"contesthub/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "testsecret"

var testDBCounter int64

// setupTestDB opens a fresh in-memory database per test. The shared-cache
// DSN keeps the schema visible across gorm's pooled connections.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:contesthub_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Contest{},
		&models.McqQuestion{},
		&models.McqOption{},
		&models.McqSubmission{},
		&models.DsaProblem{},
		&models.TestCase{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func signupTestUser(t *testing.T, auth *AuthService, email string, role models.Role) *models.User {
	t.Helper()

	user, err := auth.Signup(&SignupRequest{
		Name:     "Test User",
		Email:    email,
		Password: "secret",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("failed to create test user %s: %v", email, err)
	}
	return user
}

func createTestContest(t *testing.T, contests *ContestService, creatorID uint, endTime time.Time) *models.Contest {
	t.Helper()

	contest, err := contests.CreateContest(creatorID, &CreateContestRequest{
		Title:       "Weekly Round",
		Description: "A test round",
		StartTime:   endTime.Add(-2 * time.Hour),
		EndTime:     endTime,
	})
	if err != nil {
		t.Fatalf("failed to create test contest: %v", err)
	}
	return contest
}

func intPtr(i int) *int {
	return &i
}
