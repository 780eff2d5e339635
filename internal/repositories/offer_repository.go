package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmarket.com/taskmarket/internal/constants"
	model "taskmarket.com/taskmarket/internal/models"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// Create inserts a pending offer. The unique index on (task_id, provider_id)
// turns a second offer from the same provider into ErrDuplicateOffer.
func (r *OfferRepository) Create(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UTC()
	offer.ID = uuid.NewString()
	offer.Status = constants.OfferPending
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(offer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateOffer
		}
		return err
	}
	return nil
}

// FindByID loads an offer together with its task.
func (r *OfferRepository) FindByID(ctx context.Context, id string) (*model.Offer, error) {
	var offer model.Offer
	err := r.db.WithContext(ctx).Preload("Task").First(&offer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) ListByTask(ctx context.Context, taskID string) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Preload("Provider", userSummary).
		Where("task_id = ?", taskID).
		Order("created_at desc").
		Find(&offers).Error
	return offers, err
}

func (r *OfferRepository) ListByProvider(ctx context.Context, providerID string) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Task.Owner", userSummary).
		Where("provider_id = ?", providerID).
		Order("created_at desc").
		Find(&offers).Error
	return offers, err
}

// Accept assigns the offer's task to its provider, marks the offer accepted
// and rejects every sibling offer, all in one transaction. The task update is
// conditional on the task still being open, so of two concurrent accepts on
// the same task exactly one commits; the other gets ErrTaskNotOpen.
func (r *OfferRepository) Accept(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UTC()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Task{}).
			Where("id = ? AND status = ?", offer.TaskID, constants.TaskOpen).
			Updates(map[string]interface{}{
				"status":               constants.TaskAssigned,
				"assigned_provider_id": offer.ProviderID,
				"updated_at":           now,
				"version":              gorm.Expr("version + 1"),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotOpen
		}

		err := tx.Model(&model.Offer{}).
			Where("id = ?", offer.ID).
			Updates(map[string]interface{}{"status": constants.OfferAccepted, "updated_at": now}).Error
		if err != nil {
			return err
		}

		return tx.Model(&model.Offer{}).
			Where("task_id = ? AND id <> ?", offer.TaskID, offer.ID).
			Updates(map[string]interface{}{"status": constants.OfferRejected, "updated_at": now}).Error
	})
	if err != nil {
		return err
	}

	offer.Status = constants.OfferAccepted
	offer.UpdatedAt = now
	if offer.Task != nil {
		providerID := offer.ProviderID
		offer.Task.Status = constants.TaskAssigned
		offer.Task.AssignedProviderID = &providerID
		offer.Task.Version++
		offer.Task.UpdatedAt = now
	}
	return nil
}

// Reject marks the offer rejected provided its task is still open.
func (r *OfferRepository) Reject(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UTC()
	db := r.db.WithContext(ctx)

	openTask := db.Model(&model.Task{}).
		Select("id").
		Where("id = ? AND status = ?", offer.TaskID, constants.TaskOpen)

	res := db.Model(&model.Offer{}).
		Where("id = ? AND task_id IN (?)", offer.ID, openTask).
		Updates(map[string]interface{}{"status": constants.OfferRejected, "updated_at": now})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotOpen
	}

	offer.Status = constants.OfferRejected
	offer.UpdatedAt = now
	return nil
}
