package model

import (
	"time"

	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
)

type Task struct {
	ID                 string               `gorm:"primaryKey;size:36" json:"id"`
	UserID             string               `gorm:"size:36;not null;index" json:"userId"`
	Category           constants.Category   `gorm:"type:varchar(20);not null" json:"category"`
	Name               string               `gorm:"not null" json:"name"`
	Description        string               `gorm:"type:text;not null" json:"description"`
	ExpectedStartDate  time.Time            `gorm:"not null" json:"expectedStartDate"`
	ExpectedHours      int                  `gorm:"not null" json:"expectedHours"`
	HourlyRate         decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"hourlyRate"`
	Currency           constants.Currency   `gorm:"type:varchar(3);not null" json:"currency"`
	Status             constants.TaskStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AssignedProviderID *string              `gorm:"size:36;index" json:"assignedProviderId"`
	Version            uint                 `gorm:"not null;default:1" json:"version"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`

	Owner    *User          `gorm:"foreignKey:UserID" json:"owner,omitempty"`
	Provider *User          `gorm:"foreignKey:AssignedProviderID" json:"provider,omitempty"`
	Offers   []Offer        `gorm:"foreignKey:TaskID" json:"offers,omitempty"`
	Progress []TaskProgress `gorm:"foreignKey:TaskID" json:"progress,omitempty"`
}

// IsAssignedTo reports whether providerID is the task's assigned provider.
func (t *Task) IsAssignedTo(providerID string) bool {
	return t.AssignedProviderID != nil && *t.AssignedProviderID == providerID
}
