package booking

import (
	"time"

	"dbswash/models"
)

// IsNightRate reports whether the night tariff applies at the given local
// time: from 19:00 up to (excluding) 06:00.
func IsNightRate(t time.Time) bool {
	hour := t.Hour()
	return hour >= 19 || hour < 6
}

// ParseScheduledAt parses the wizard's local date-time value.
func ParseScheduledAt(value string) (time.Time, error) {
	return time.ParseInLocation(models.ScheduledAtLayout, value, time.Local)
}

// PackagePrice returns the package's price at the given time, or 0 when no
// package is selected. Without a resolved time the day rate applies.
func PackagePrice(pkg *models.ServicePackage, at time.Time) float64 {
	if pkg == nil {
		return 0
	}
	if !at.IsZero() && IsNightRate(at) {
		return pkg.BasePriceNight
	}
	return pkg.BasePrice
}

// SUVSurcharge returns the package surcharge for SUV-class vehicles. No
// package or a sedan-class vehicle contributes nothing.
func SUVSurcharge(pkg *models.ServicePackage, sizeClass string) float64 {
	if pkg == nil || sizeClass != models.VehicleSUV {
		return 0
	}
	return pkg.SUVSurcharge
}

// ExtrasTotal sums catalog prices for the selected extras. Ids missing from
// the catalog contribute 0 rather than failing the quote.
func ExtrasTotal(selectedIDs []int, extras []models.ExtraService) float64 {
	byID := make(map[int]float64, len(extras))
	for _, e := range extras {
		byID[e.ID] = e.Price
	}
	total := 0.0
	for _, id := range selectedIDs {
		total += byID[id]
	}
	return total
}

// BuildQuote derives the full pricing view of a draft from the catalogs. The
// grand total is a pure function of the draft's four pricing inputs and is
// recomputed on every call.
func BuildQuote(draft *models.BookingDraft, packages []models.ServicePackage, extras []models.ExtraService, currency string) *models.Quote {
	quote := &models.Quote{Currency: currency}

	var at time.Time
	if draft.ScheduledAt != "" {
		if parsed, err := ParseScheduledAt(draft.ScheduledAt); err == nil {
			at = parsed
			quote.NightRate = IsNightRate(parsed)
		}
	}

	var pkg *models.ServicePackage
	for i := range packages {
		if packages[i].ID == draft.SelectedPackageID {
			pkg = &packages[i]
			break
		}
	}

	quote.PackagePrice = PackagePrice(pkg, at)
	quote.SUVSurcharge = SUVSurcharge(pkg, draft.Vehicle.SizeClass)
	quote.ExtrasTotal = ExtrasTotal(draft.SelectedExtraIDs, extras)
	quote.GrandTotal = quote.PackagePrice + quote.SUVSurcharge + quote.ExtrasTotal

	if pkg != nil {
		quote.Lines = append(quote.Lines, models.LineItem{Label: pkg.Name, Amount: quote.PackagePrice})
		if quote.SUVSurcharge > 0 {
			quote.Lines = append(quote.Lines, models.LineItem{Label: "SUV Surcharge", Amount: quote.SUVSurcharge})
		}
	}
	for _, id := range draft.SelectedExtraIDs {
		for _, e := range extras {
			if e.ID == id {
				quote.Lines = append(quote.Lines, models.LineItem{Label: "+ " + e.Name, Amount: e.Price})
				break
			}
		}
	}

	return quote
}
