package model

import (
	"time"

	"taskmarket.com/taskmarket/internal/constants"
)

type User struct {
	ID                string             `gorm:"primaryKey;size:36" json:"id"`
	Type              constants.UserType `gorm:"type:varchar(20);not null" json:"type,omitempty"`
	Role              constants.Role     `gorm:"type:varchar(20);not null;index" json:"role"`
	FirstName         string             `gorm:"size:30" json:"firstName,omitempty"`
	LastName          string             `gorm:"size:30" json:"lastName,omitempty"`
	CompanyName       string             `gorm:"size:100" json:"companyName,omitempty"`
	PhoneNumber       string             `gorm:"size:15" json:"phoneNumber,omitempty"`
	BusinessTaxNumber string             `gorm:"size:10" json:"businessTaxNumber,omitempty"`
	Email             string             `gorm:"size:191;uniqueIndex;not null" json:"email"`
	MobileNumber      string             `gorm:"size:15;not null" json:"mobileNumber,omitempty"`
	StreetNumber      string             `json:"streetNumber,omitempty"`
	StreetName        string             `json:"streetName,omitempty"`
	City              string             `json:"city,omitempty"`
	State             string             `json:"state,omitempty"`
	PostCode          string             `json:"postCode,omitempty"`
	PasswordHash      string             `gorm:"not null" json:"-"`
	CreatedAt         time.Time          `json:"createdAt,omitzero"`
	UpdatedAt         time.Time          `json:"updatedAt,omitzero"`
}
