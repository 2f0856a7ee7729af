package domain

// ID is used across domain entities.
type ID int64

// BookingStatus is the workflow state of a booking. Payment state is tracked
// separately: a confirmed booking can still be unpaid (pay-to-driver).
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Role is the closed set of authenticated user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleProvider Role = "provider"
	RoleUser     Role = "user"
)

// BookingKind distinguishes the three bookable products.
type BookingKind string

const (
	KindTransfer BookingKind = "transfer"
	KindDisposal BookingKind = "disposal"
	KindTour     BookingKind = "tour"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID  ID     `json:"userId"`
	Role    Role   `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
	Email   string `json:"email,omitempty"`
}
