package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	config "taskmarket.com/taskmarket/internal/configs"
	"taskmarket.com/taskmarket/internal/constants"
	"taskmarket.com/taskmarket/internal/credentials"
	dto "taskmarket.com/taskmarket/internal/data_models"
	"taskmarket.com/taskmarket/internal/logging"
	model "taskmarket.com/taskmarket/internal/models"
	repository "taskmarket.com/taskmarket/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.NewDatabase("sqlite", dsn)
	require.NoError(t, err, "failed to connect database")
	require.NoError(t, repository.Migrate(db), "failed to migrate database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

type fixture struct {
	db     *gorm.DB
	users  *repository.UserRepository
	auth   *AuthService
	tasks  *TaskService
	offers *OfferService
	skills *SkillService
}

func newFixture(t *testing.T, policy constants.ListingPolicy) *fixture {
	t.Helper()

	db := setupTestDB(t)
	logger := logging.Discard()
	users := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	creds := credentials.NewService("test-secret", time.Hour, credentials.WithBcryptCost(bcrypt.MinCost))

	return &fixture{
		db:     db,
		users:  users,
		auth:   NewAuthService(users, creds, logger),
		tasks:  NewTaskService(taskRepo, policy, logger),
		offers: NewOfferService(repository.NewOfferRepository(db), taskRepo, logger),
		skills: NewSkillService(repository.NewSkillRepository(db)),
	}
}

func (f *fixture) account(t *testing.T, role constants.Role) Caller {
	t.Helper()

	user := &model.User{
		Type:         constants.UserIndividual,
		Role:         role,
		FirstName:    "Test",
		LastName:     string(role),
		Email:        uuid.NewString() + "@example.com",
		MobileNumber: "1234567890",
		PasswordHash: "unused",
	}
	require.NoError(t, f.users.Create(context.Background(), user))
	return Caller{ID: user.ID, Role: user.Role}
}

func taskRequest(rate string) dto.CreateTaskRequest {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	r := decimal.RequireFromString(rate)
	return dto.CreateTaskRequest{
		Category:          constants.CategoryBackend,
		Name:              "Build API",
		Description:       "REST API for the mobile app",
		ExpectedStartDate: &start,
		ExpectedHours:     40,
		HourlyRate:        &r,
		Currency:          constants.CurrencyUSD,
	}
}

func (f *fixture) openTask(t *testing.T, owner Caller) *model.Task {
	t.Helper()
	task, err := f.tasks.CreateTask(context.Background(), owner, taskRequest("50"))
	require.NoError(t, err)
	return task
}

func offerRequest(taskID, rate string) dto.CreateOfferRequest {
	r := decimal.RequireFromString(rate)
	return dto.CreateOfferRequest{
		TaskID:        taskID,
		ProposedRate:  &r,
		ProposedHours: 35,
	}
}

func (f *fixture) makeOffer(t *testing.T, provider Caller, taskID, rate string) *model.Offer {
	t.Helper()
	offer, err := f.offers.CreateOffer(context.Background(), provider, offerRequest(taskID, rate))
	require.NoError(t, err)
	return offer
}

// assignedTask returns a task whose offer from provider has been accepted.
func (f *fixture) assignedTask(t *testing.T) (owner, provider Caller, task *model.Task) {
	t.Helper()

	owner = f.account(t, constants.RoleUser)
	provider = f.account(t, constants.RoleProvider)
	task = f.openTask(t, owner)
	offer := f.makeOffer(t, provider, task.ID, "45")

	_, err := f.offers.DecideOffer(context.Background(), owner, offer.ID, dto.DecisionRequest{Status: constants.DecisionAccepted})
	require.NoError(t, err)
	return owner, provider, task
}

func (f *fixture) reloadTask(t *testing.T, id string) *model.Task {
	t.Helper()
	var task model.Task
	require.NoError(t, f.db.First(&task, "id = ?", id).Error)
	return &task
}

func (f *fixture) reloadOffer(t *testing.T, id string) *model.Offer {
	t.Helper()
	var offer model.Offer
	require.NoError(t, f.db.First(&offer, "id = ?", id).Error)
	return &offer
}

func (f *fixture) progressCount(t *testing.T, taskID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(&model.TaskProgress{}).Where("task_id = ?", taskID).Count(&n).Error)
	return n
}
