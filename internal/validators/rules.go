package validators

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"taskmarket.com/taskmarket/internal/constants"
	dto "taskmarket.com/taskmarket/internal/data_models"
	apperrors "taskmarket.com/taskmarket/internal/errors"
)

var (
	phonePattern     = regexp.MustCompile(`^[0-9]{10,15}$`)
	taxNumberPattern = regexp.MustCompile(`^[A-Z0-9]{10}$`)
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if err := Struct(r); err != nil {
		return err
	}

	var details []string
	if !phonePattern.MatchString(r.MobileNumber) {
		details = append(details, `"mobileNumber" must be 10 to 15 digits`)
	}
	switch r.Type {
	case constants.UserIndividual:
		details = append(details, nameLength("firstName", r.FirstName)...)
		details = append(details, nameLength("lastName", r.LastName)...)
		if r.Address == nil {
			details = append(details, `"address" is required`)
		}
	case constants.UserCompany:
		if n := len(r.CompanyName); n < 2 || n > 100 {
			details = append(details, `"companyName" must be between 2 and 100 characters`)
		}
		if !phonePattern.MatchString(r.PhoneNumber) {
			details = append(details, `"phoneNumber" must be 10 to 15 digits`)
		}
		if !taxNumberPattern.MatchString(r.BusinessTaxNumber) {
			details = append(details, "Business Tax Number must be 10 characters (A-Z, 0-9)")
		}
	}
	if r.Address != nil {
		if err := Struct(r.Address); err != nil {
			details = append(details, err.(*apperrors.Exception).Details...)
		}
	}

	if len(details) > 0 {
		return apperrors.Validation("validation failed", details...)
	}
	return nil
}

func nameLength(field, value string) []string {
	if n := len(value); n < 2 || n > 30 {
		return []string{fmt.Sprintf("%q must be between 2 and 30 characters", field)}
	}
	return nil
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if err := Struct(r); err != nil {
		return err
	}
	return PositiveAmount("hourlyRate", r.HourlyRate)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	if err := Struct(r); err != nil {
		return err
	}
	if r.HourlyRate != nil {
		return PositiveAmount("hourlyRate", r.HourlyRate)
	}
	return nil
}

func ValidateCreateOfferRequest(r *dto.CreateOfferRequest) error {
	if err := Struct(r); err != nil {
		return err
	}
	return PositiveAmount("proposedRate", r.ProposedRate)
}

func ValidateCreateSkillRequest(r *dto.CreateSkillRequest) error {
	if err := Struct(r); err != nil {
		return err
	}
	return PositiveAmount("hourlyRate", r.HourlyRate)
}

func ValidateUpdateSkillRequest(r *dto.UpdateSkillRequest) error {
	if err := Struct(r); err != nil {
		return err
	}
	if r.HourlyRate != nil {
		return PositiveAmount("hourlyRate", r.HourlyRate)
	}
	return nil
}

func PositiveAmount(field string, amount *decimal.Decimal) error {
	if amount == nil {
		return apperrors.Validation("validation failed", fmt.Sprintf("%q is required", field))
	}
	if !amount.IsPositive() {
		return apperrors.Validation("validation failed", fmt.Sprintf("%q must be greater than 0", field))
	}
	return nil
}
