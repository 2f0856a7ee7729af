package models

import "time"

// Provider is a transport company that owns vehicles and fulfills transfer
// and disposal bookings.
type Provider struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"` // car_rental, travel_agency, transport_company
	ContactName  string    `json:"contactName,omitempty"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	ServiceZones []string  `json:"serviceZones,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ProviderUpdate supports PATCH-style updates via key presence.
type ProviderUpdate struct {
	Name         *string   `json:"name"`
	Type         *string   `json:"type"`
	ContactName  *string   `json:"contactName"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	ServiceZones *[]string `json:"serviceZones"`
	Notes        *string   `json:"notes"`
	IsActive     *bool     `json:"isActive"`
}
