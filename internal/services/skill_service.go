package services

import (
	"context"

	"taskmarket.com/taskmarket/internal/constants"
	dto "taskmarket.com/taskmarket/internal/data_models"
	apperrors "taskmarket.com/taskmarket/internal/errors"
	model "taskmarket.com/taskmarket/internal/models"
	repository "taskmarket.com/taskmarket/internal/repositories"
	"taskmarket.com/taskmarket/internal/validators"
)

type SkillService struct {
	repo *repository.SkillRepository
}

func NewSkillService(repo *repository.SkillRepository) *SkillService {
	return &SkillService{repo: repo}
}

func (s *SkillService) CreateSkill(ctx context.Context, caller Caller, req dto.CreateSkillRequest) (*model.Skill, error) {
	if err := requireRole(caller, constants.RoleProvider, "declare skills"); err != nil {
		return nil, err
	}
	if err := validators.ValidateCreateSkillRequest(&req); err != nil {
		return nil, err
	}

	skill := &model.Skill{
		ProviderID: caller.ID,
		Category:   req.Category,
		Experience: req.Experience,
		WorkNature: req.WorkNature,
		HourlyRate: *req.HourlyRate,
	}
	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) ListSkills(ctx context.Context, caller Caller) ([]model.Skill, error) {
	return s.repo.ListByProvider(ctx, caller.ID)
}

func (s *SkillService) UpdateSkill(ctx context.Context, caller Caller, id string, req dto.UpdateSkillRequest) (*model.Skill, error) {
	if err := validators.ValidateUpdateSkillRequest(&req); err != nil {
		return nil, err
	}

	skill, err := s.owned(ctx, caller, id, "update")
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Experience != nil {
		skill.Experience = *req.Experience
	}
	if req.WorkNature != nil {
		skill.WorkNature = *req.WorkNature
	}
	if req.HourlyRate != nil {
		skill.HourlyRate = *req.HourlyRate
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) DeleteSkill(ctx context.Context, caller Caller, id string) error {
	if _, err := s.owned(ctx, caller, id, "delete"); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *SkillService) owned(ctx context.Context, caller Caller, id, action string) (*model.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, apperrors.ErrSkillNotFound)
	}
	if skill.ProviderID != caller.ID {
		return nil, apperrors.Forbidden("not authorized to " + action + " this skill")
	}
	return skill, nil
}
