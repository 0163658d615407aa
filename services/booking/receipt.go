package booking

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"dbswash/models"
)

// NewReceiptReference generates a prefixed 4-6 digit reference. The number is
// not cryptographic and uniqueness is not guaranteed; a real payment backend
// would issue its own ids.
func NewReceiptReference(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, 1000+rand.Intn(999000))
}

// buildReceipt assembles the read-only receipt view from the submitted draft
// and its final quote.
func (s *DefaultSessionService) buildReceipt(draft *models.BookingDraft, quote *models.Quote) *models.Receipt {
	locationName := ""
	if loc, err := s.Catalog.LocationByID(draft.LocationID); err == nil {
		locationName = loc.Name
	}

	return &models.Receipt{
		Reference:    draft.ReceiptReference,
		IssuedAt:     time.Now(),
		LocationName: locationName,
		ScheduledAt:  draft.ScheduledAt,
		CustomerName: draft.Customer.Name,
		Vehicle:      draft.Vehicle,
		Lines:        quote.Lines,
		GrandTotal:   quote.GrandTotal,
		Currency:     quote.Currency,
	}
}

// FormatPrintReceipt renders the print view of a receipt: identity, vehicle,
// line items and the grand total.
func FormatPrintReceipt(r models.Receipt) string {
	var b strings.Builder

	fmt.Fprintf(&b, "DBS PREMIER CAR WASH\n")
	fmt.Fprintf(&b, "Receipt #%s | %s\n", r.Reference, r.IssuedAt.Format("02/01/2006"))
	if r.LocationName != "" {
		fmt.Fprintf(&b, "Location: %s\n", r.LocationName)
	}
	fmt.Fprintf(&b, "----------------------------------------\n")
	fmt.Fprintf(&b, "Customer: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Vehicle: %s %s (%s)\n", r.Vehicle.Make, r.Vehicle.Model, r.Vehicle.PlateNumber)
	fmt.Fprintf(&b, "----------------------------------------\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%-30s %s %.0f\n", line.Label, r.Currency, line.Amount)
	}
	fmt.Fprintf(&b, "----------------------------------------\n")
	fmt.Fprintf(&b, "Total: %s %.0f\n", r.Currency, r.GrandTotal)

	return b.String()
}
