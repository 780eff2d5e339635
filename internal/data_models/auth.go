package dto

import "taskmarket.com/taskmarket/internal/constants"

type Address struct {
	StreetNumber string `json:"streetNumber" validate:"required"`
	StreetName   string `json:"streetName" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	PostCode     string `json:"postCode" validate:"required"`
}

// RegisterRequest carries the fields common to both account types; the
// per-type requirements are enforced by validators.ValidateRegisterRequest.
type RegisterRequest struct {
	Type              constants.UserType `json:"type" validate:"required,oneof=individual company"`
	Role              constants.Role     `json:"role" validate:"required,oneof=user provider"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	Email             string             `json:"email" validate:"required,email"`
	Password          string             `json:"password" validate:"required,min=8"`
	MobileNumber      string             `json:"mobileNumber" validate:"required"`
	Address           *Address           `json:"address"`
	CompanyName       string             `json:"companyName"`
	PhoneNumber       string             `json:"phoneNumber"`
	BusinessTaxNumber string             `json:"businessTaxNumber"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AccountSummary struct {
	ID        string         `json:"id"`
	Role      constants.Role `json:"role"`
	Email     string         `json:"email"`
	FirstName string         `json:"firstName,omitempty"`
	LastName  string         `json:"lastName,omitempty"`
}

type AuthResult struct {
	Token   string         `json:"token"`
	Account AccountSummary `json:"data"`
}
