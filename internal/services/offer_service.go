package services

import (
	"context"
	"log/slog"

	"taskmarket.com/taskmarket/internal/constants"
	dto "taskmarket.com/taskmarket/internal/data_models"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	model "taskmarket.com/taskmarket/internal/models"
	repository "taskmarket.com/taskmarket/internal/repositories"
	"taskmarket.com/taskmarket/internal/validators"
)

// OfferService owns offers: pending -> accepted | rejected. Accepting an
// offer assigns its task and rejects the task's other offers atomically.
type OfferService struct {
	offers *repository.OfferRepository
	tasks  *repository.TaskRepository
	logger *slog.Logger
}

func NewOfferService(offers *repository.OfferRepository, tasks *repository.TaskRepository, logger *slog.Logger) *OfferService {
	return &OfferService{
		offers: offers,
		tasks:  tasks,
		logger: logger,
	}
}

func (s *OfferService) CreateOffer(ctx context.Context, caller Caller, req dto.CreateOfferRequest) (*model.Offer, error) {
	if err := requireRole(caller, constants.RoleProvider, "make offers"); err != nil {
		return nil, err
	}
	if err := validators.ValidateCreateOfferRequest(&req); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, req.TaskID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if task.Status != constants.TaskOpen {
		return nil, apperrors.InvalidState("cannot make an offer on a task that is not open")
	}

	offer := &model.Offer{
		TaskID:        task.ID,
		ProviderID:    caller.ID,
		ProposedRate:  *req.ProposedRate,
		ProposedHours: req.ProposedHours,
	}
	if req.Message != nil && *req.Message != "" {
		offer.Message = req.Message
	}

	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}

	s.logger.InfoContext(ctx, "offer created", "offer_id", offer.ID, "task_id", task.ID, "provider_id", caller.ID)
	return offer, nil
}

// ListOffersForTask is restricted to the task owner.
func (s *OfferService) ListOffersForTask(ctx context.Context, caller Caller, taskID string) ([]model.Offer, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if task.UserID != caller.ID {
		return nil, apperrors.Forbidden("not authorized to view offers for this task")
	}

	return s.offers.ListByTask(ctx, taskID)
}

func (s *OfferService) ListOffersForProvider(ctx context.Context, caller Caller) ([]model.Offer, error) {
	return s.offers.ListByProvider(ctx, caller.ID)
}

// DecideOffer accepts or rejects an offer on behalf of the task owner. Both
// decisions require the task to still be open when they are written.
func (s *OfferService) DecideOffer(ctx context.Context, caller Caller, offerID string, req dto.DecisionRequest) (*model.Offer, error) {
	if err := validators.Struct(&req); err != nil {
		return nil, err
	}

	offer, err := s.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, translate(err, apperrors.ErrOfferNotFound)
	}
	if offer.Task == nil {
		return nil, apperrors.ErrTaskNotFound
	}
	if offer.Task.UserID != caller.ID {
		return nil, apperrors.Forbidden("not authorized to update this offer")
	}
	if offer.Task.Status != constants.TaskOpen {
		return nil, apperrors.InvalidState("cannot update offer when task is not open")
	}

	switch req.Status {
	case constants.DecisionAccepted:
		err = s.offers.Accept(ctx, offer)
	default:
		err = s.offers.Reject(ctx, offer)
	}
	if err != nil {
		return nil, translate(err, apperrors.ErrOfferNotFound)
	}

	s.logger.InfoContext(ctx, "offer decided",
		"offer_id", offer.ID,
		"task_id", offer.TaskID,
		"status", offer.Status,
	)
	return offer, nil
}
