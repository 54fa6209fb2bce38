package models

import "time"

// Zone is a priced shipping rule covering one or more named regions.
// Surcharge fields are all-or-nothing: WeightThreshold and PricePerGram
// are either both set or both nil.
type Zone struct {
	ID              string     `gorm:"primarykey" json:"id"`
	UserID          string     `gorm:"index;not null" json:"user_id"`
	Name            string     `gorm:"not null" json:"name"`
	Regions         StringList `gorm:"type:jsonb;not null" json:"regions"`
	Price           float64    `gorm:"not null" json:"price"`
	WeightThreshold *int       `json:"weight_threshold"`
	PricePerGram    *float64   `gorm:"column:price_per_g" json:"price_per_g"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// HasSurcharge reports whether the zone charges extra above a weight threshold.
func (z *Zone) HasSurcharge() bool {
	return z.WeightThreshold != nil && z.PricePerGram != nil
}

// CreateZone is the client-mutable subset of Zone fields.
type CreateZone struct {
	Name            string     `json:"name"`
	Regions         StringList `json:"regions"`
	Price           float64    `json:"price"`
	WeightThreshold *int       `json:"weight_threshold"`
	PricePerGram    *float64   `json:"price_per_g"`
}
