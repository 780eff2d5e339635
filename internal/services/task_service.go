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

// TaskService owns the task lifecycle:
//
//	open -> assigned -> in_progress -> completed -> accepted | rejected
//
// open -> assigned happens in OfferService.DecideOffer; every other
// transition is driven from here.
type TaskService struct {
	repo   *repository.TaskRepository
	policy constants.ListingPolicy
	logger *slog.Logger
}

func NewTaskService(repo *repository.TaskRepository, policy constants.ListingPolicy, logger *slog.Logger) *TaskService {
	return &TaskService{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, caller Caller, req dto.CreateTaskRequest) (*model.Task, error) {
	if err := requireRole(caller, constants.RoleUser, "create tasks"); err != nil {
		return nil, err
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return nil, err
	}

	task := &model.Task{
		UserID:            caller.ID,
		Category:          req.Category,
		Name:              req.Name,
		Description:       req.Description,
		ExpectedStartDate: req.ExpectedStartDate.UTC(),
		ExpectedHours:     req.ExpectedHours,
		HourlyRate:        *req.HourlyRate,
		Currency:          req.Currency,
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "task created", "task_id", task.ID, "user_id", caller.ID)
	return task, nil
}

// ListTasks returns a user's own tasks, or for a provider the tasks allowed
// by the configured listing policy. Newest first.
func (s *TaskService) ListTasks(ctx context.Context, caller Caller) ([]model.Task, error) {
	switch caller.Role {
	case constants.RoleUser:
		return s.repo.ListByOwner(ctx, caller.ID)
	case constants.RoleProvider:
		return s.repo.ListForProvider(ctx, caller.ID, s.policy)
	default:
		return nil, apperrors.Forbidden("unknown role")
	}
}

func (s *TaskService) GetTask(ctx context.Context, caller Caller, id string) (*model.Task, error) {
	task, err := s.repo.FindDetailed(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}

	switch caller.Role {
	case constants.RoleUser:
		if task.UserID != caller.ID {
			return nil, apperrors.Forbidden("not authorized to view this task")
		}
	case constants.RoleProvider:
		if task.Status != constants.TaskOpen && !task.IsAssignedTo(caller.ID) {
			return nil, apperrors.Forbidden("not authorized to view this task")
		}
	default:
		return nil, apperrors.Forbidden("unknown role")
	}

	return task, nil
}

// UpdateTask applies the fields present in req. Only the owner may update and
// only while the task is still open.
func (s *TaskService) UpdateTask(ctx context.Context, caller Caller, id string, req dto.UpdateTaskRequest) (*model.Task, error) {
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if task.UserID != caller.ID {
		return nil, apperrors.Forbidden("not authorized to update this task")
	}
	if task.Status != constants.TaskOpen {
		return nil, apperrors.InvalidState("cannot update task after it has been assigned")
	}

	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.ExpectedStartDate != nil {
		task.ExpectedStartDate = req.ExpectedStartDate.UTC()
	}
	if req.ExpectedHours != nil {
		task.ExpectedHours = *req.ExpectedHours
	}
	if req.HourlyRate != nil {
		task.HourlyRate = *req.HourlyRate
	}
	if req.Currency != nil {
		task.Currency = *req.Currency
	}

	if err := s.repo.UpdateDetails(ctx, task); err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	return task, nil
}

// SubmitProgress appends a progress entry. The first entry on an assigned
// task also moves it to in_progress.
func (s *TaskService) SubmitProgress(ctx context.Context, caller Caller, id string, req dto.ProgressRequest) (*model.TaskProgress, error) {
	if err := validators.Struct(&req); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if !task.IsAssignedTo(caller.ID) {
		return nil, apperrors.Forbidden("not authorized to update this task progress")
	}
	if task.Status != constants.TaskAssigned && task.Status != constants.TaskInProgress {
		return nil, apperrors.InvalidState("task must be in progress to update")
	}

	started := task.Status == constants.TaskAssigned
	entry := &model.TaskProgress{
		ProviderID:  caller.ID,
		Description: req.Description,
	}
	if err := s.repo.Transition(ctx, task, constants.TaskInProgress, entry); err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}

	if started {
		s.logger.InfoContext(ctx, "task started", "task_id", task.ID, "provider_id", caller.ID)
	}
	return entry, nil
}

// CompleteTask marks an in-progress task completed, optionally recording a
// final progress entry.
func (s *TaskService) CompleteTask(ctx context.Context, caller Caller, id string, req dto.CompleteTaskRequest) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if !task.IsAssignedTo(caller.ID) {
		return nil, apperrors.Forbidden("not authorized to complete this task")
	}
	if task.Status != constants.TaskInProgress {
		return nil, apperrors.InvalidState("task must be in progress to mark as completed")
	}

	var entry *model.TaskProgress
	if req.Description != nil && *req.Description != "" {
		entry = &model.TaskProgress{
			ProviderID:  caller.ID,
			Description: *req.Description,
		}
	}
	if err := s.repo.Transition(ctx, task, constants.TaskCompleted, entry); err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}

	s.logger.InfoContext(ctx, "task completed", "task_id", task.ID, "provider_id", caller.ID)
	return task, nil
}

// ResolveCompletion records the owner's verdict on a completed task.
func (s *TaskService) ResolveCompletion(ctx context.Context, caller Caller, id string, req dto.DecisionRequest) (*model.Task, error) {
	if err := validators.Struct(&req); err != nil {
		return nil, err
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}
	if task.UserID != caller.ID {
		return nil, apperrors.Forbidden("not authorized to accept/reject this task")
	}
	if task.Status.IsTerminal() {
		return nil, apperrors.InvalidState("task has already been " + string(task.Status))
	}
	if task.Status != constants.TaskCompleted {
		return nil, apperrors.InvalidState("task must be completed to accept/reject")
	}

	if err := s.repo.Transition(ctx, task, constants.TaskStatus(req.Status), nil); err != nil {
		return nil, translate(err, apperrors.ErrTaskNotFound)
	}

	s.logger.InfoContext(ctx, "task resolved", "task_id", task.ID, "status", task.Status)
	return task, nil
}
