package dto

import "github.com/shopspring/decimal"

type CreateOfferRequest struct {
	TaskID        string           `json:"taskId" validate:"required,uuid"`
	ProposedRate  *decimal.Decimal `json:"proposedRate" validate:"required"`
	ProposedHours int              `json:"proposedHours" validate:"required,gt=0"`
	Message       *string          `json:"message"`
}
