package booking

import (
	"context"
	"fmt"
	"strings"

	"dbswash/models"
)

// SetSchedule stores the step-1 fields on the draft. Fields may be edited at
// any time; validation runs when the user tries to advance.
func (s *DefaultSessionService) SetSchedule(sessionID string, in ScheduleInput) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sizeClass := in.SizeClass
	if sizeClass == "" {
		sizeClass = models.VehicleSedan
	}
	if sizeClass != models.VehicleSedan && sizeClass != models.VehicleSUV {
		return nil, fmt.Errorf("unknown vehicle size class: %s", in.SizeClass)
	}

	draft.LocationID = in.LocationID
	draft.ScheduledAt = in.ScheduledAt
	draft.Vehicle = models.Vehicle{
		SizeClass:   sizeClass,
		Make:        in.Make,
		Model:       in.Model,
		PlateNumber: strings.ToUpper(strings.TrimSpace(in.PlateNumber)),
	}

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// TogglePackage selects the package, or clears the selection when the given
// package is already selected. At most one package can be active.
func (s *DefaultSessionService) TogglePackage(sessionID string, packageID int) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if draft.SelectedPackageID == packageID {
		draft.SelectedPackageID = 0
	} else {
		if _, err := s.Catalog.PackageByID(packageID); err != nil {
			return nil, err
		}
		draft.SelectedPackageID = packageID
	}

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// ToggleExtra flips one extra service in or out of the selection.
func (s *DefaultSessionService) ToggleExtra(sessionID string, extraID int) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if draft.HasExtra(extraID) {
		kept := draft.SelectedExtraIDs[:0]
		for _, id := range draft.SelectedExtraIDs {
			if id != extraID {
				kept = append(kept, id)
			}
		}
		draft.SelectedExtraIDs = kept
	} else {
		extras, err := s.Catalog.Extras()
		if err != nil {
			return nil, err
		}
		known := false
		for _, e := range extras {
			if e.ID == extraID {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("extra service %d not found", extraID)
		}
		draft.SelectedExtraIDs = append(draft.SelectedExtraIDs, extraID)
	}

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// SetContact stores the step-3 fields. The payment method keeps its previous
// value (defaulted at session creation) when omitted, so it is never empty.
func (s *DefaultSessionService) SetContact(sessionID string, in ContactInput) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if in.PaymentMethod != "" {
		if in.PaymentMethod != models.PaymentMobileMoney && in.PaymentMethod != models.PaymentOnSite {
			return nil, fmt.Errorf("unknown payment method: %s", in.PaymentMethod)
		}
		draft.Customer.PaymentMethod = in.PaymentMethod
	}
	draft.Customer.Name = in.Name
	draft.Customer.Phone = in.Phone
	draft.Customer.Email = in.Email

	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// Advance validates the current step and, on success, moves the draft one step
// forward. On failure the draft stays put and carries the recomputed field
// errors. The payment step is final; Submit completes the wizard.
func (s *DefaultSessionService) Advance(sessionID string) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step >= models.StepContactAndPayment {
		return nil, ErrAlreadyOnFinalStep
	}

	if verr := ValidateStep(draft.Step, draft); verr != nil {
		draft.ValidationErrors = verr.Fields
		if err := s.Store.Save(ctx, draft); err != nil {
			return nil, err
		}
		return nil, verr
	}

	draft.ValidationErrors = nil
	draft.Step++
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}
	return s.view(draft)
}

// Back moves one step backward without validation, preserving all field
// values. On the first step it is a no-op.
func (s *DefaultSessionService) Back(sessionID string) (*SessionView, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if draft.Step > models.StepScheduleAndVehicle {
		draft.Step--
		draft.ValidationErrors = nil
		if err := s.Store.Save(ctx, draft); err != nil {
			return nil, err
		}
	}
	return s.view(draft)
}
