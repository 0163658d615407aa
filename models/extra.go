package models

// ExtraService is an optional add-on priced independently of the night rate
// and vehicle-size rules.
type ExtraService struct {
	ID    int     `bson:"id" json:"id"`
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}
