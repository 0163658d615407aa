package models

// Coordinates holds a map position for a branch.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location is a service branch.
type Location struct {
	ID          int         `bson:"id" json:"id"`
	Name        string      `bson:"name" json:"name"`
	Address     string      `bson:"address" json:"address"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
	Phone       string      `bson:"phone" json:"phone"`
	Email       string      `bson:"email,omitempty" json:"email,omitempty"`
	Hours       string      `bson:"hours,omitempty" json:"hours,omitempty"`
}
