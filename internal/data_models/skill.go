package dto

import (
	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
)

type CreateSkillRequest struct {
	Category   string               `json:"category" validate:"required"`
	Experience int                  `json:"experience" validate:"gte=0"`
	WorkNature constants.WorkNature `json:"workNature" validate:"required,oneof=onsite online"`
	HourlyRate *decimal.Decimal     `json:"hourlyRate" validate:"required"`
}

type UpdateSkillRequest struct {
	Category   *string               `json:"category" validate:"omitempty,min=1"`
	Experience *int                  `json:"experience" validate:"omitempty,gte=0"`
	WorkNature *constants.WorkNature `json:"workNature" validate:"omitempty,oneof=onsite online"`
	HourlyRate *decimal.Decimal      `json:"hourlyRate"`
}
