package booking

import (
	"dbswash/models"
	"dbswash/services/catalog"
	"dbswash/services/notification"

	"go.uber.org/zap"
)

// SessionSeed carries the optional pre-selections a session can be created
// with: a package id (unknown ids are ignored) and a "day"/"night" mode that
// seeds the default appointment time.
type SessionSeed struct {
	PackageID int    `json:"packageId,omitempty"`
	Mode      string `json:"mode,omitempty"`
}

// ScheduleInput holds the step-1 fields.
type ScheduleInput struct {
	LocationID  int    `json:"locationId"`
	ScheduledAt string `json:"scheduledAt"`
	SizeClass   string `json:"sizeClass"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	PlateNumber string `json:"plateNumber"`
}

// ContactInput holds the step-3 fields.
type ContactInput struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// SessionView is a draft together with its derived quote, the unit returned
// by every session operation.
type SessionView struct {
	Draft *models.BookingDraft `json:"draft"`
	Quote *models.Quote        `json:"quote"`
}

// SessionService drives a booking draft through the three wizard steps:
// schedule and vehicle, service selection, contact and payment.
type SessionService interface {
	CreateSession(seed SessionSeed) (*SessionView, error)
	GetSession(sessionID string) (*SessionView, error)
	SetSchedule(sessionID string, in ScheduleInput) (*SessionView, error)
	TogglePackage(sessionID string, packageID int) (*SessionView, error)
	ToggleExtra(sessionID string, extraID int) (*SessionView, error)
	SetContact(sessionID string, in ContactInput) (*SessionView, error)
	Advance(sessionID string) (*SessionView, error)
	Back(sessionID string) (*SessionView, error)
	Submit(sessionID string) (*models.Receipt, error)
	CancelSession(sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Catalog       catalog.Service
	Store         SessionStore
	Payments      PaymentProcessor
	Receipts      notification.ReceiptDispatcher
	Logger        *zap.Logger
	Currency      string
	ReceiptPrefix string
}
