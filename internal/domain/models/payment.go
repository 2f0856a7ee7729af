package models

import "time"

// PaymentIntent links a gateway payment to a booking. PaymentRef is the
// gateway-side reference the storefront polls after redirect.
type PaymentIntent struct {
	ID          int64     `json:"id"`
	OrderID     string    `json:"orderId"`
	PaymentRef  string    `json:"paymentRef"`
	BookingType string    `json:"bookingType"` // transfer, disposal, tour
	BookingID   int64     `json:"bookingId"`
	AmountCents int64     `json:"amountCents"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"` // pending, completed, failed, expired
	PayURL      string    `json:"payUrl,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
