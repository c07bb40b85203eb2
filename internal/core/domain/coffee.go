package domain

import (
	"errors"
	"time"
)

var (
	ErrCoffeeNotFound = errors.New("coffee not found")
	ErrInvalidCoffee  = errors.New("invalid coffee")
)

// Coffee is a single menu item.
type Coffee struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Available   bool      `json:"available" bson:"available"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
