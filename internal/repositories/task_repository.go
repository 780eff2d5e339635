package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmarket.com/taskmarket/internal/constants"
	model "taskmarket.com/taskmarket/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	task.ID = uuid.NewString()
	task.Status = constants.TaskOpen
	task.AssignedProviderID = nil
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindDetailed loads a task with its owner, provider, offers and progress log.
func (r *TaskRepository) FindDetailed(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Owner", userSummary).
		Preload("Provider", userSummary).
		Preload("Offers", newestOffersFirst).
		Preload("Offers.Provider", userSummary).
		Preload("Progress", newestProgressFirst).
		Preload("Progress.Provider", userSummary).
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Provider", userSummary).
		Preload("Offers", newestOffersFirst).
		Preload("Offers.Provider", userSummary).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

// ListForProvider returns the tasks a provider may browse under policy.
func (r *TaskRepository) ListForProvider(ctx context.Context, providerID string, policy constants.ListingPolicy) ([]model.Task, error) {
	query := r.db.WithContext(ctx).Preload("Owner", userSummary)

	switch policy {
	case constants.ListAssigned:
		query = query.Where("assigned_provider_id = ?", providerID).
			Preload("Progress", newestProgressFirst)
	case constants.ListOpenAndAssigned:
		query = query.Where("status = ? OR assigned_provider_id = ?", constants.TaskOpen, providerID).
			Preload("Progress", newestProgressFirst)
	default:
		query = query.Where("status = ?", constants.TaskOpen)
	}

	var tasks []model.Task
	err := query.Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

// UpdateDetails writes the editable fields of an open task. It fails with
// ErrOptimisticLock when the task changed or left the open status since it
// was read.
func (r *TaskRepository) UpdateDetails(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ? AND status = ?", task.ID, task.Version, constants.TaskOpen).
		Updates(map[string]interface{}{
			"category":            task.Category,
			"name":                task.Name,
			"description":         task.Description,
			"expected_start_date": task.ExpectedStartDate,
			"expected_hours":      task.ExpectedHours,
			"hourly_rate":         task.HourlyRate,
			"currency":            task.Currency,
			"updated_at":          now,
			"version":             gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrOptimisticLock
	}

	task.Version++
	task.UpdatedAt = now
	return nil
}

// Transition moves task from its current status to `to` and appends entry to
// the progress log, both in one transaction. A status change only applies if
// the stored status and version still match task; otherwise
// ErrOptimisticLock. Staying in the same status only appends, so it is
// guarded on status alone and concurrent progress notes are all kept.
func (r *TaskRepository) Transition(ctx context.Context, task *model.Task, to constants.TaskStatus, entry *model.TaskProgress) error {
	if to.HasProvider() && task.AssignedProviderID == nil {
		return ErrNoProvider
	}

	now := time.Now().UTC()
	var version uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.Task{}).Where("id = ? AND status = ?", task.ID, task.Status)
		if to != task.Status {
			query = query.Where("version = ?", task.Version)
		}
		res := query.Updates(map[string]interface{}{
			"status":     to,
			"updated_at": now,
			"version":    gorm.Expr("version + 1"),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOptimisticLock
		}

		// the version read with task may be stale when only appending
		err := tx.Model(&model.Task{}).Select("version").Where("id = ?", task.ID).Scan(&version).Error
		if err != nil {
			return err
		}

		if entry == nil {
			return nil
		}
		entry.ID = uuid.NewString()
		entry.TaskID = task.ID
		entry.Timestamp = now
		return tx.Create(entry).Error
	})
	if err != nil {
		return err
	}

	task.Status = to
	task.Version = version
	task.UpdatedAt = now
	return nil
}
