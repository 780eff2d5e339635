package repository

import (
	"errors"

	"gorm.io/gorm"

	model "taskmarket.com/taskmarket/internal/models"
)

var (
	ErrNotFound       = gorm.ErrRecordNotFound
	ErrOptimisticLock = errors.New("optimistic locking conflict")
	ErrTaskNotOpen    = errors.New("task is not open")
	ErrDuplicateOffer = errors.New("offer already exists for task and provider")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNoProvider     = errors.New("task has no assigned provider")
)

// Migrate brings the schema up to date with the models. It is run by the
// migrate command, never implicitly by a repository.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Offer{},
		&model.Skill{},
		&model.TaskProgress{},
	)
}

// userSummary limits a preloaded account to the fields other parties may see.
func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "type", "role", "first_name", "last_name", "company_name", "email")
}

func newestOffersFirst(db *gorm.DB) *gorm.DB {
	return db.Order("offers.created_at DESC")
}

func newestProgressFirst(db *gorm.DB) *gorm.DB {
	return db.Order("task_progress.timestamp DESC")
}
