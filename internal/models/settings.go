package models

import "time"

// DefaultCurrency is the unit prices are quoted in unless configured otherwise.
const DefaultCurrency = "sat"

// DefaultAvailableRegions is the region list seeded into fresh settings and
// restored whenever a settings record is found with an empty list.
var DefaultAvailableRegions = StringList{
	"Africa",
	"Asia",
	"Europe",
	"UK/Ireland",
	"North America",
	"South America",
	"Central America",
	"Caribbean",
	"Oceania",
	"Middle East",
	"Antarctica",
}

// ExtensionSettings holds per-user currency and offered regions.
// AvailableRegions is never empty once the record exists; an empty list is
// repaired to DefaultAvailableRegions on the next read.
type ExtensionSettings struct {
	UserID           string     `gorm:"primarykey;column:id" json:"id"`
	Currency         string     `gorm:"not null;default:sat" json:"currency"`
	AvailableRegions StringList `gorm:"type:jsonb;not null" json:"available_regions"`
	APIKeyHash       string     `json:"-"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// NewExtensionSettings returns settings seeded with defaults.
func NewExtensionSettings(userID string) *ExtensionSettings {
	regions := make(StringList, len(DefaultAvailableRegions))
	copy(regions, DefaultAvailableRegions)
	return &ExtensionSettings{
		UserID:           userID,
		Currency:         DefaultCurrency,
		AvailableRegions: regions,
	}
}

// UpdateSettings is the client-mutable subset of ExtensionSettings.
type UpdateSettings struct {
	Currency         string     `json:"currency"`
	AvailableRegions StringList `json:"available_regions"`
}
