package booking

import (
	"testing"

	"dbswash/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validScheduleDraft() *models.BookingDraft {
	return &models.BookingDraft{
		Step:        models.StepScheduleAndVehicle,
		LocationID:  1,
		ScheduledAt: "2026-09-01T14:00",
		Vehicle: models.Vehicle{
			SizeClass:   models.VehicleSedan,
			Make:        "Toyota",
			Model:       "Harrier",
			PlateNumber: "UBA 123X",
		},
	}
}

func TestValidateScheduleStep(t *testing.T) {
	t.Run("complete draft passes", func(t *testing.T) {
		assert.Nil(t, ValidateStep(models.StepScheduleAndVehicle, validScheduleDraft()))
	})

	t.Run("missing location is the only error", func(t *testing.T) {
		draft := validScheduleDraft()
		draft.LocationID = 0
		verr := ValidateStep(models.StepScheduleAndVehicle, draft)
		require.NotNil(t, verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["location"].Code)
	})

	t.Run("empty schedule", func(t *testing.T) {
		draft := validScheduleDraft()
		draft.ScheduledAt = ""
		verr := ValidateStep(models.StepScheduleAndVehicle, draft)
		require.NotNil(t, verr)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["scheduledAt"].Code)
	})

	t.Run("malformed schedule", func(t *testing.T) {
		draft := validScheduleDraft()
		draft.ScheduledAt = "next tuesday"
		verr := ValidateStep(models.StepScheduleAndVehicle, draft)
		require.NotNil(t, verr)
		assert.Contains(t, verr.Fields, "scheduledAt")
	})

	t.Run("single character model is too short", func(t *testing.T) {
		draft := validScheduleDraft()
		draft.Vehicle.Model = "X"
		verr := ValidateStep(models.StepScheduleAndVehicle, draft)
		require.NotNil(t, verr)
		assert.Equal(t, models.ErrCodeTooShort, verr.Fields["vehicleModel"].Code)
	})

	t.Run("blank vehicle fields collect per field", func(t *testing.T) {
		draft := validScheduleDraft()
		draft.Vehicle.Make = "  "
		draft.Vehicle.Model = ""
		draft.Vehicle.PlateNumber = ""
		verr := ValidateStep(models.StepScheduleAndVehicle, draft)
		require.NotNil(t, verr)
		assert.Len(t, verr.Fields, 3)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["vehicleMake"].Code)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["vehicleModel"].Code)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["vehiclePlate"].Code)
	})
}

func TestValidateServicesStep(t *testing.T) {
	t.Run("nothing selected yields a notice", func(t *testing.T) {
		draft := &models.BookingDraft{Step: models.StepServiceSelection}
		verr := ValidateStep(models.StepServiceSelection, draft)
		require.NotNil(t, verr)
		assert.Empty(t, verr.Fields)
		require.NotNil(t, verr.Notice)
		assert.Equal(t, models.ErrCodeNoServiceSelected, verr.Notice.Code)
	})

	t.Run("a package alone is enough", func(t *testing.T) {
		draft := &models.BookingDraft{SelectedPackageID: 1}
		assert.Nil(t, ValidateStep(models.StepServiceSelection, draft))
	})

	t.Run("an extra alone is enough", func(t *testing.T) {
		draft := &models.BookingDraft{SelectedExtraIDs: []int{9}}
		assert.Nil(t, ValidateStep(models.StepServiceSelection, draft))
	})
}

func TestValidateContactStep(t *testing.T) {
	valid := func() *models.BookingDraft {
		return &models.BookingDraft{
			Customer: models.Customer{
				Name:          "Aisha Nankya",
				Phone:         "0772123456",
				PaymentMethod: models.PaymentMobileMoney,
			},
		}
	}

	t.Run("valid contact passes", func(t *testing.T) {
		assert.Nil(t, ValidateStep(models.StepContactAndPayment, valid()))
	})

	t.Run("phone formats", func(t *testing.T) {
		cases := []struct {
			phone string
			ok    bool
		}{
			{"0772123456", true},
			{"256772123456", true},
			{"+256772123456", true},
			{"772123456", false},
			{"0112123456", false},
			{"07721234", false},
			{"07721234567", false},
			{"", false},
		}
		for _, tc := range cases {
			draft := valid()
			draft.Customer.Phone = tc.phone
			verr := ValidateStep(models.StepContactAndPayment, draft)
			if tc.ok {
				assert.Nil(t, verr, "phone %q should pass", tc.phone)
			} else {
				require.NotNil(t, verr, "phone %q should fail", tc.phone)
				assert.Equal(t, models.ErrCodeInvalidPhone, verr.Fields["phone"].Code)
			}
		}
	})

	t.Run("email is optional but checked when present", func(t *testing.T) {
		draft := valid()
		draft.Customer.Email = ""
		assert.Nil(t, ValidateStep(models.StepContactAndPayment, draft))

		draft.Customer.Email = "aisha@example.com"
		assert.Nil(t, ValidateStep(models.StepContactAndPayment, draft))

		draft.Customer.Email = "not-an-email"
		verr := ValidateStep(models.StepContactAndPayment, draft)
		require.NotNil(t, verr)
		assert.Equal(t, models.ErrCodeInvalidEmail, verr.Fields["email"].Code)
	})

	t.Run("missing name", func(t *testing.T) {
		draft := valid()
		draft.Customer.Name = " "
		verr := ValidateStep(models.StepContactAndPayment, draft)
		require.NotNil(t, verr)
		assert.Equal(t, models.ErrCodeMissingField, verr.Fields["name"].Code)
	})
}

// Validation is pure: running it twice on the same draft yields the same result.
func TestValidateStepIdempotent(t *testing.T) {
	draft := validScheduleDraft()
	draft.LocationID = 0

	first := ValidateStep(models.StepScheduleAndVehicle, draft)
	second := ValidateStep(models.StepScheduleAndVehicle, draft)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, first.Fields, second.Fields)
}
