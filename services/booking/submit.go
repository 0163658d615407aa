package booking

import (
	"context"
	"fmt"

	"dbswash/models"

	"go.uber.org/zap"
)

// Submit finalizes the booking. The draft must be on the payment step and
// pass the final validation; it then moves idle -> processing, the payment is
// settled, and on success the draft becomes a read-only receipt. A processor
// failure reverts processing -> idle with every entered field intact.
func (s *DefaultSessionService) Submit(sessionID string) (*models.Receipt, error) {
	ctx := context.Background()
	draft, err := s.loadMutable(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Step != models.StepContactAndPayment {
		return nil, ErrNotOnFinalStep
	}

	// Earlier steps stay editable after they were passed, so the schedule
	// fields and the service-selection cross-rule are re-checked alongside the
	// contact fields.
	if verr := ValidateStep(models.StepScheduleAndVehicle, draft); verr != nil {
		return nil, verr
	}
	if verr := ValidateStep(models.StepServiceSelection, draft); verr != nil {
		return nil, verr
	}
	if verr := ValidateStep(models.StepContactAndPayment, draft); verr != nil {
		draft.ValidationErrors = verr.Fields
		if err := s.Store.Save(ctx, draft); err != nil {
			return nil, err
		}
		return nil, verr
	}
	draft.ValidationErrors = nil

	view, err := s.view(draft)
	if err != nil {
		return nil, err
	}
	payload := buildPayload(draft, view.Quote)

	draft.SubmissionState = models.SubmissionProcessing
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}

	result, payErr := s.Payments.Process(models.PaymentRequest{
		SessionID:   payload.SessionID,
		Amount:      payload.GrandTotal,
		Currency:    payload.Currency,
		Method:      payload.Customer.PaymentMethod,
		Phone:       payload.Customer.Phone,
		Description: fmt.Sprintf("Detailing booking for %s %s", payload.Vehicle.Make, payload.Vehicle.Model),
	})

	// The session may have been cancelled or expired while the payment was in
	// flight; never resurrect it by writing the completion state blindly.
	draft, err = s.Store.Get(ctx, sessionID)
	if err != nil {
		s.Logger.Warn("booking session vanished during submission", zap.String("session", sessionID))
		return nil, err
	}

	if payErr != nil {
		draft.SubmissionState = models.SubmissionIdle
		if err := s.Store.Save(ctx, draft); err != nil {
			return nil, err
		}
		s.Logger.Warn("submission failed, draft reverted to idle",
			zap.String("session", sessionID), zap.Error(payErr))
		return nil, &SubmissionError{Reason: payErr}
	}

	draft.SubmissionState = models.SubmissionSuccess
	draft.ReceiptReference = NewReceiptReference(s.ReceiptPrefix)
	if err := s.Store.Save(ctx, draft); err != nil {
		return nil, err
	}

	receipt := s.buildReceipt(draft, view.Quote)
	s.Logger.Info("booking confirmed",
		zap.String("session", sessionID),
		zap.String("receipt", receipt.Reference),
		zap.String("paymentStatus", result.Status),
		zap.Float64("total", receipt.GrandTotal))

	if s.Receipts != nil {
		if err := s.Receipts.EnqueueReceipt(*receipt, draft.Customer.Email); err != nil {
			s.Logger.Warn("failed to enqueue receipt dispatch", zap.Error(err))
		}
	}

	return receipt, nil
}

// buildPayload freezes the draft and its derived totals into the typed
// submission payload.
func buildPayload(draft *models.BookingDraft, quote *models.Quote) models.BookingPayload {
	return models.BookingPayload{
		SessionID:         draft.SessionID,
		LocationID:        draft.LocationID,
		ScheduledAt:       draft.ScheduledAt,
		Vehicle:           draft.Vehicle,
		SelectedPackageID: draft.SelectedPackageID,
		SelectedExtraIDs:  draft.SelectedExtraIDs,
		Customer:          draft.Customer,
		GrandTotal:        quote.GrandTotal,
		Currency:          quote.Currency,
	}
}
