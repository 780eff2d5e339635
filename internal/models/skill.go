package model

import (
	"time"

	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
)

type Skill struct {
	ID         string               `gorm:"primaryKey;size:36" json:"id"`
	ProviderID string               `gorm:"size:36;not null;index" json:"providerId"`
	Category   string               `gorm:"not null" json:"category"`
	Experience int                  `gorm:"not null" json:"experience"`
	WorkNature constants.WorkNature `gorm:"type:varchar(10);not null" json:"workNature"`
	HourlyRate decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"hourlyRate"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}
