package models

// ServicePackage is a selectable base offering. Reference data: created by the
// admin surface before any booking session, never mutated by the wizard.
type ServicePackage struct {
	ID             int      `bson:"id" json:"id"`
	Name           string   `bson:"name" json:"name"`
	Description    string   `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice      float64  `bson:"base_price" json:"base_price"`
	BasePriceNight float64  `bson:"base_price_night" json:"base_price_night"`
	SUVSurcharge   float64  `bson:"suv_surcharge" json:"suv_surcharge"`
	Features       []string `bson:"features" json:"features"`
	IsPopular      bool     `bson:"is_popular" json:"is_popular"`
	Active         bool     `bson:"active" json:"active"`
}
