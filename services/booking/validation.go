package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"dbswash/models"
)

// Phone must be a Uganda mobile number: 0/256/+256 prefix, then 7, then 8 digits.
var phonePattern = regexp.MustCompile(`^(0|256|\+256)7[0-9]{8}$`)

// Email is checked for a local@domain.tld shape only.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateStep runs the full validation pass for the given step against the
// draft. It is pure and idempotent: the same draft always yields the same
// error, and a valid draft yields nil.
func ValidateStep(step int, draft *models.BookingDraft) *ValidationError {
	switch step {
	case models.StepScheduleAndVehicle:
		return validateSchedule(draft)
	case models.StepServiceSelection:
		return validateServices(draft)
	case models.StepContactAndPayment:
		return validateContact(draft)
	}
	return nil
}

func validateSchedule(draft *models.BookingDraft) *ValidationError {
	fields := models.FieldErrors{}

	if draft.LocationID == 0 {
		fields["location"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Please select a branch location",
		}
	}
	if draft.ScheduledAt == "" {
		fields["scheduledAt"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Please select a date and time",
		}
	} else if _, err := ParseScheduledAt(draft.ScheduledAt); err != nil {
		fields["scheduledAt"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Please select a valid date and time",
		}
	}
	if strings.TrimSpace(draft.Vehicle.Make) == "" {
		fields["vehicleMake"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Vehicle Make is required",
		}
	}
	model := strings.TrimSpace(draft.Vehicle.Model)
	if model == "" {
		fields["vehicleModel"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Vehicle Model is required",
		}
	} else if utf8.RuneCountInString(model) < 2 {
		fields["vehicleModel"] = models.FieldError{
			Code:    models.ErrCodeTooShort,
			Message: "Vehicle Model must be at least 2 characters",
		}
	}
	if strings.TrimSpace(draft.Vehicle.PlateNumber) == "" {
		fields["vehiclePlate"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Number plate is required",
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Step: models.StepScheduleAndVehicle, Fields: fields}
	}
	return nil
}

// validateServices enforces the step-2 cross-field rule: a package or at
// least one extra. Failures surface as a single notice, not per-field errors.
func validateServices(draft *models.BookingDraft) *ValidationError {
	if draft.SelectedPackageID == 0 && len(draft.SelectedExtraIDs) == 0 {
		return &ValidationError{
			Step: models.StepServiceSelection,
			Notice: &models.FieldError{
				Code:    models.ErrCodeNoServiceSelected,
				Message: "Please select at least a Package OR an Extra Service.",
			},
		}
	}
	return nil
}

func validateContact(draft *models.BookingDraft) *ValidationError {
	fields := models.FieldErrors{}

	if strings.TrimSpace(draft.Customer.Name) == "" {
		fields["name"] = models.FieldError{
			Code:    models.ErrCodeMissingField,
			Message: "Full Name is required",
		}
	}
	if !phonePattern.MatchString(draft.Customer.Phone) {
		fields["phone"] = models.FieldError{
			Code:    models.ErrCodeInvalidPhone,
			Message: "Invalid UG Phone number",
		}
	}
	if draft.Customer.Email != "" && !emailPattern.MatchString(draft.Customer.Email) {
		fields["email"] = models.FieldError{
			Code:    models.ErrCodeInvalidEmail,
			Message: "Invalid Email Address",
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Step: models.StepContactAndPayment, Fields: fields}
	}
	return nil
}
