package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskmarket.com/taskmarket/internal/models"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db: db}
}

func (r *SkillRepository) Create(ctx context.Context, skill *model.Skill) error {
	now := time.Now().UTC()
	skill.ID = uuid.NewString()
	skill.CreatedAt = now
	skill.UpdatedAt = now
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*model.Skill, error) {
	var skill model.Skill
	if err := r.db.WithContext(ctx).First(&skill, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) ListByProvider(ctx context.Context, providerID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at desc").
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Update(ctx context.Context, skill *model.Skill) error {
	skill.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Model(&model.Skill{}).
		Where("id = ?", skill.ID).
		Updates(map[string]interface{}{
			"category":    skill.Category,
			"experience":  skill.Experience,
			"work_nature": skill.WorkNature,
			"hourly_rate": skill.HourlyRate,
			"updated_at":  skill.UpdatedAt,
		}).Error
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Skill{}, "id = ?", id).Error
}
