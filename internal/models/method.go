package models

import "time"

// Method is a percentage fee modifier. Regions holds zone ids the method is
// restricted to; an empty list means the method applies everywhere.
type Method struct {
	ID             string     `gorm:"primarykey" json:"id"`
	UserID         string     `gorm:"index;not null" json:"user_id"`
	Title          string     `gorm:"not null" json:"title"`
	CostPercentage float64    `gorm:"not null;default:0" json:"cost_percentage"`
	Regions        StringList `gorm:"type:jsonb;not null" json:"regions"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CreateMethod is the client-mutable subset of Method fields.
type CreateMethod struct {
	Title          string     `json:"title"`
	CostPercentage float64    `json:"cost_percentage"`
	Regions        StringList `json:"regions"`
}
