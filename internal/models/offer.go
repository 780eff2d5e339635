package model

import (
	"time"

	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
)

type Offer struct {
	ID            string                `gorm:"primaryKey;size:36" json:"id"`
	TaskID        string                `gorm:"size:36;not null;uniqueIndex:idx_offers_task_provider" json:"taskId"`
	ProviderID    string                `gorm:"size:36;not null;uniqueIndex:idx_offers_task_provider;index" json:"providerId"`
	ProposedRate  decimal.Decimal       `gorm:"type:decimal(12,2);not null" json:"proposedRate"`
	ProposedHours int                   `gorm:"not null" json:"proposedHours"`
	Message       *string               `gorm:"type:text" json:"message"`
	Status        constants.OfferStatus `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`

	Task     *Task `gorm:"foreignKey:TaskID" json:"task,omitempty"`
	Provider *User `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}
