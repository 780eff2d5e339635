package services

import (
	"errors"

	"taskmarket.com/taskmarket/internal/constants"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	repository "taskmarket.com/taskmarket/internal/repositories"
)

// Caller is the authenticated identity an operation runs on behalf of.
type Caller struct {
	ID   string
	Role constants.Role
}

func requireRole(caller Caller, role constants.Role, action string) error {
	if caller.Role != role {
		return apperrors.Forbidden("only " + string(role) + "s can " + action)
	}
	return nil
}

// translate maps repository sentinels onto user-facing exceptions. Errors it
// does not recognise pass through and end up as internal failures.
func translate(err error, notFound *apperrors.Exception) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return notFound
	case errors.Is(err, repository.ErrOptimisticLock):
		return apperrors.ErrOptimisticLock
	case errors.Is(err, repository.ErrDuplicateOffer):
		return apperrors.ErrDuplicateOffer
	case errors.Is(err, repository.ErrDuplicateEmail):
		return apperrors.ErrEmailTaken
	case errors.Is(err, repository.ErrTaskNotOpen):
		return apperrors.InvalidState("cannot update offer when task is not open")
	}
	return err
}
