package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
)

type CreateTaskRequest struct {
	Category          constants.Category `json:"category" validate:"required,oneof=fullstack backend frontend mobile"`
	Name              string             `json:"name" validate:"required,max=255"`
	Description       string             `json:"description" validate:"required"`
	ExpectedStartDate *time.Time         `json:"expectedStartDate" validate:"required"`
	ExpectedHours     int                `json:"expectedHours" validate:"required,gt=0"`
	HourlyRate        *decimal.Decimal   `json:"hourlyRate" validate:"required"`
	Currency          constants.Currency `json:"currency" validate:"required,oneof=USD AUD INR SGD"`
}

// UpdateTaskRequest uses pointers so that only fields present in the body are
// applied; a present zero value is applied too and then has to pass validation.
type UpdateTaskRequest struct {
	Category          *constants.Category `json:"category" validate:"omitempty,oneof=fullstack backend frontend mobile"`
	Name              *string             `json:"name" validate:"omitempty,min=1,max=255"`
	Description       *string             `json:"description" validate:"omitempty,min=1"`
	ExpectedStartDate *time.Time          `json:"expectedStartDate"`
	ExpectedHours     *int                `json:"expectedHours" validate:"omitempty,gt=0"`
	HourlyRate        *decimal.Decimal    `json:"hourlyRate"`
	Currency          *constants.Currency `json:"currency" validate:"omitempty,oneof=USD AUD INR SGD"`
}

type ProgressRequest struct {
	Description string `json:"description" validate:"required"`
}

type CompleteTaskRequest struct {
	Description *string `json:"description"`
}

type DecisionRequest struct {
	Status constants.Decision `json:"status" validate:"required,oneof=accepted rejected"`
}
