package models

import "time"

// VehicleTypes is the closed list of vehicle tiers, cheapest first.
var VehicleTypes = []string{
	"economy", "comfort", "business", "premium", "vip", "suv", "van", "minibus",
}

type Vehicle struct {
	ID              int64     `json:"id"`
	ProviderID      *int64    `json:"providerId,omitempty"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	Capacity        int       `json:"capacity"`
	Luggage         int       `json:"luggage"`
	Description     string    `json:"description,omitempty"`
	Features        []string  `json:"features,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	BasePriceCents  int64     `json:"basePriceCents"`
	PricePerKmCents *int64    `json:"pricePerKmCents,omitempty"`
	LicensePlate    string    `json:"licensePlate,omitempty"`
	DriverName      string    `json:"driverName,omitempty"`
	IsAvailable     bool      `json:"isAvailable"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type VehicleUpdate struct {
	ProviderID      *int64    `json:"providerId"`
	Name            *string   `json:"name"`
	Type            *string   `json:"type"`
	Capacity        *int      `json:"capacity"`
	Luggage         *int      `json:"luggage"`
	Description     *string   `json:"description"`
	Features        *[]string `json:"features"`
	ImageURL        *string   `json:"imageUrl"`
	BasePriceCents  *int64    `json:"basePriceCents"`
	PricePerKmCents *int64    `json:"pricePerKmCents"`
	LicensePlate    *string   `json:"licensePlate"`
	DriverName      *string   `json:"driverName"`
	IsAvailable     *bool     `json:"isAvailable"`
}

// VehicleSeasonalPrice overrides the per-km price inside a season window.
// StartDate/EndDate use MM-DD and a season may wrap the year end
// (for example 12-01 through 02-28).
type VehicleSeasonalPrice struct {
	ID              int64  `json:"id"`
	VehicleID       int64  `json:"vehicleId"`
	SeasonName      string `json:"seasonName"`
	StartDate       string `json:"startDate"` // MM-DD
	EndDate         string `json:"endDate"`   // MM-DD
	PricePerKmCents int64  `json:"pricePerKmCents"`
}

// VehicleHourlyPrice sets the per-hour disposal price inside a season window.
type VehicleHourlyPrice struct {
	ID                int64  `json:"id"`
	VehicleID         int64  `json:"vehicleId"`
	SeasonName        string `json:"seasonName"`
	StartDate         string `json:"startDate"` // MM-DD
	EndDate           string `json:"endDate"`   // MM-DD
	PricePerHourCents int64  `json:"pricePerHourCents"`
}
