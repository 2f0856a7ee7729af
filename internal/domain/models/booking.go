package models

import "time"

// TransferBooking is a one-way or round-trip point-to-point reservation.
// ProviderID stays nil until an administrator assigns a provider; once set it
// denotes exclusive assignment.
type TransferBooking struct {
	ID              int64     `json:"id"`
	Reference       string    `json:"reference"`
	CustomerID      int64     `json:"customerId"`
	VehicleID       int64     `json:"vehicleId"`
	ProviderID      *int64    `json:"providerId"`
	TransferType    string    `json:"transferType"` // one-way, round-trip
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	PickupDate      string    `json:"pickupDate"` // YYYY-MM-DD
	PickupTime      string    `json:"pickupTime"` // HH:MM
	ReturnDate      string    `json:"returnDate,omitempty"`
	ReturnTime      string    `json:"returnTime,omitempty"`
	Passengers      int       `json:"passengers"`
	Luggage         int       `json:"luggage"`
	FlightNumber    string    `json:"flightNumber,omitempty"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TransferBookingUpdate supports admin PATCH operations via key presence.
type TransferBookingUpdate struct {
	ProviderID    *int64  `json:"providerId"`
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

// DisposalBooking is an hourly vehicle-with-driver reservation.
type DisposalBooking struct {
	ID              int64     `json:"id"`
	Reference       string    `json:"reference"`
	CustomerID      int64     `json:"customerId"`
	VehicleID       int64     `json:"vehicleId"`
	ProviderID      *int64    `json:"providerId"`
	StartLocation   string    `json:"startLocation"`
	Date            string    `json:"date"` // YYYY-MM-DD
	Time            string    `json:"time"` // HH:MM
	Hours           int       `json:"hours"`
	Passengers      int       `json:"passengers"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// TourBooking is a reservation against a CityTour.
type TourBooking struct {
	ID              int64     `json:"id"`
	Reference       string    `json:"reference"`
	CustomerID      int64     `json:"customerId"`
	TourID          int64     `json:"tourId"`
	TourDate        string    `json:"tourDate"` // YYYY-MM-DD
	Adults          int       `json:"adults"`
	Children        int       `json:"children"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type TourBookingUpdate struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}
