package models

import "time"

// Wizard steps. Forward movement is gated on validation of the current step;
// backward movement is always allowed.
const (
	StepScheduleAndVehicle = 1
	StepServiceSelection   = 2
	StepContactAndPayment  = 3
)

// ScheduledAtLayout is the local date-time format carried by the wizard,
// matching the datetime-local input it is fed from.
const ScheduledAtLayout = "2006-01-02T15:04"

// Vehicle size classes.
const (
	VehicleSedan = "sedan"
	VehicleSUV   = "suv"
)

// Payment methods.
const (
	PaymentMobileMoney = "mobile_money"
	PaymentOnSite      = "pay_on_site"
)

// Submission states. The happy path is idle -> processing -> success; a
// payment failure reverts processing -> idle with the draft intact.
const (
	SubmissionIdle       = "idle"
	SubmissionProcessing = "processing"
	SubmissionSuccess    = "success"
)

// Validation error codes.
const (
	ErrCodeMissingField      = "MissingField"
	ErrCodeTooShort          = "TooShort"
	ErrCodeInvalidPhone      = "InvalidPhone"
	ErrCodeInvalidEmail      = "InvalidEmail"
	ErrCodeNoServiceSelected = "NoServiceSelected"
	ErrCodeSubmissionFailure = "SubmissionFailure"
)

// FieldError is a single validation failure surfaced under an input.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors maps field names to their validation failures.
type FieldErrors map[string]FieldError

// Vehicle describes the car being booked in.
type Vehicle struct {
	SizeClass   string `json:"sizeClass"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
}

// Customer holds contact and payment-method details collected in step 3.
type Customer struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
}

// BookingDraft is the complete in-memory state of one in-progress booking
// session. It is the only entity the wizard mutates; catalogs are read-only
// inputs and the grand total is always derived, never stored here.
type BookingDraft struct {
	SessionID         string      `json:"sessionId"`
	Step              int         `json:"step"`
	LocationID        int         `json:"locationId,omitempty"`
	ScheduledAt       string      `json:"scheduledAt,omitempty"`
	Vehicle           Vehicle     `json:"vehicle"`
	SelectedPackageID int         `json:"selectedPackageId,omitempty"`
	SelectedExtraIDs  []int       `json:"selectedExtraIds,omitempty"`
	Customer          Customer    `json:"customer"`
	ValidationErrors  FieldErrors `json:"validationErrors,omitempty"`
	SubmissionState   string      `json:"submissionState"`
	ReceiptReference  string      `json:"receiptReference,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
}

// HasExtra reports whether the given extra is currently selected.
func (d *BookingDraft) HasExtra(id int) bool {
	for _, e := range d.SelectedExtraIDs {
		if e == id {
			return true
		}
	}
	return false
}

// LineItem is one priced row of a quote or receipt.
type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Quote is the derived pricing view of a draft. Recomputed from the draft and
// the catalogs on every read so it can never drift from its inputs.
type Quote struct {
	NightRate    bool       `json:"nightRate"`
	PackagePrice float64    `json:"packagePrice"`
	SUVSurcharge float64    `json:"suvSurcharge"`
	ExtrasTotal  float64    `json:"extrasTotal"`
	GrandTotal   float64    `json:"grandTotal"`
	Currency     string     `json:"currency"`
	Lines        []LineItem `json:"lines,omitempty"`
}

// BookingPayload is the statically-typed submission sent to the payment step.
type BookingPayload struct {
	SessionID         string   `json:"sessionId"`
	LocationID        int      `json:"locationId"`
	ScheduledAt       string   `json:"scheduledAt"`
	Vehicle           Vehicle  `json:"vehicle"`
	SelectedPackageID int      `json:"selectedPackageId,omitempty"`
	SelectedExtraIDs  []int    `json:"selectedExtraIds,omitempty"`
	Customer          Customer `json:"customer"`
	GrandTotal        float64  `json:"grandTotal"`
	Currency          string   `json:"currency"`
}

// Receipt is the read-only view rendered after a successful submission.
type Receipt struct {
	Reference    string     `json:"reference"`
	IssuedAt     time.Time  `json:"issuedAt"`
	LocationName string     `json:"locationName"`
	ScheduledAt  string     `json:"scheduledAt"`
	CustomerName string     `json:"customerName"`
	Vehicle      Vehicle    `json:"vehicle"`
	Lines        []LineItem `json:"lines"`
	GrandTotal   float64    `json:"grandTotal"`
	Currency     string     `json:"currency"`
}
