package models

import "time"

// CityTour is a bookable guided excursion with fixed duration and capacity.
type CityTour struct {
	ID              int64     `json:"id"`
	ProviderID      *int64    `json:"providerId,omitempty"`
	Name            string    `json:"name"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	FullDescription string    `json:"fullDescription,omitempty"`
	Category        string    `json:"category"` // cultural, gastronomic, adventure
	Duration        int       `json:"duration"` // hours
	Difficulty      string    `json:"difficulty"`
	MaxCapacity     int       `json:"maxCapacity"`
	MinParticipants int       `json:"minParticipants"`
	PriceCents      int64     `json:"priceCents"`
	PriceChildCents *int64    `json:"priceChildCents,omitempty"`
	Included        []string  `json:"included,omitempty"`
	Excluded        []string  `json:"excluded,omitempty"`
	Highlights      []string  `json:"highlights,omitempty"`
	MeetingPoint    string    `json:"meetingPoint"`
	MeetingTime     string    `json:"meetingTime,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	IsActive        bool      `json:"isActive"`
	Featured        bool      `json:"featured"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

var TourDifficulties = []string{"easy", "medium", "hard"}

type CityTourUpdate struct {
	ProviderID      *int64    `json:"providerId"`
	Name            *string   `json:"name"`
	Slug            *string   `json:"slug"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"fullDescription"`
	Category        *string   `json:"category"`
	Duration        *int      `json:"duration"`
	Difficulty      *string   `json:"difficulty"`
	MaxCapacity     *int      `json:"maxCapacity"`
	MinParticipants *int      `json:"minParticipants"`
	PriceCents      *int64    `json:"priceCents"`
	PriceChildCents *int64    `json:"priceChildCents"`
	Included        *[]string `json:"included"`
	Excluded        *[]string `json:"excluded"`
	Highlights      *[]string `json:"highlights"`
	MeetingPoint    *string   `json:"meetingPoint"`
	MeetingTime     *string   `json:"meetingTime"`
	ImageURL        *string   `json:"imageUrl"`
	IsActive        *bool     `json:"isActive"`
	Featured        *bool     `json:"featured"`
}

// TourStop is one ordered step of a tour itinerary.
type TourStop struct {
	ID              int64  `json:"id"`
	TourID          int64  `json:"tourId"`
	Position        int    `json:"position"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Activity        string `json:"activity,omitempty"`
}
