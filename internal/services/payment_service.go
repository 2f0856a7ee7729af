package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"navetteclub/internal/domain"
	"navetteclub/internal/domain/models"
	"navetteclub/internal/konnect"
	"navetteclub/internal/repositories"
	"navetteclub/internal/utils"
)

// Gateway is the slice of the Konnect client the payment flow needs.
type Gateway interface {
	InitPayment(ctx context.Context, req konnect.PaymentRequest) (konnect.PaymentResponse, error)
	PaymentStatus(ctx context.Context, paymentRef string) (konnect.PaymentDetails, string, error)
}

const intentLifespan = 30 * time.Minute

// PaymentService drives the gateway flow: create an intent for a pending
// booking, poll or receive the outcome, propagate it to the booking row.
type PaymentService struct {
	IntentRepo   repositories.PaymentIntentRepo
	CustomerRepo repositories.CustomerRepo
	TransferRepo repositories.TransferBookingRepo
	DisposalRepo repositories.DisposalBookingRepo
	TourBookings repositories.TourBookingRepo
	Gateway      Gateway
	RequestID    string
}

type bookingSummary struct {
	CustomerID  int64
	AmountCents int64
	Reference   string
	Description string
}

func (s PaymentService) bookingSummary(bookingType string, bookingID int64) (bookingSummary, error) {
	switch bookingType {
	case "transfer":
		b, err := s.TransferRepo.GetByID(bookingID)
		if err != nil {
			return bookingSummary{}, err
		}
		return bookingSummary{
			CustomerID:  b.CustomerID,
			AmountCents: b.TotalPriceCents,
			Reference:   b.Reference,
			Description: fmt.Sprintf("Transfert %s → %s (%s)", b.PickupLocation, b.DropoffLocation, b.Reference),
		}, nil
	case "disposal":
		b, err := s.DisposalRepo.GetByID(bookingID)
		if err != nil {
			return bookingSummary{}, err
		}
		return bookingSummary{
			CustomerID:  b.CustomerID,
			AmountCents: b.TotalPriceCents,
			Reference:   b.Reference,
			Description: fmt.Sprintf("Mise à disposition %dh depuis %s (%s)", b.Hours, b.StartLocation, b.Reference),
		}, nil
	case "tour":
		b, err := s.TourBookings.GetByID(bookingID)
		if err != nil {
			return bookingSummary{}, err
		}
		return bookingSummary{
			CustomerID:  b.CustomerID,
			AmountCents: b.TotalPriceCents,
			Reference:   b.Reference,
			Description: fmt.Sprintf("Excursion le %s (%s)", b.TourDate, b.Reference),
		}, nil
	default:
		return bookingSummary{}, domain.ValidationError{Field: "bookingType", Msg: "type de réservation invalide"}
	}
}

// InitBookingPayment creates a gateway payment for a pending booking and
// stores the intent. Returns the redirect URL the storefront sends the
// customer to.
func (s PaymentService) InitBookingPayment(ctx context.Context, bookingType string, bookingID int64) (models.PaymentIntent, error) {
	summary, err := s.bookingSummary(bookingType, bookingID)
	if err != nil {
		return models.PaymentIntent{}, err
	}
	if summary.AmountCents <= 0 {
		return models.PaymentIntent{}, domain.ValidationError{Field: "bookingId", Msg: "montant de réservation invalide"}
	}

	customer, err := s.CustomerRepo.GetByID(summary.CustomerID)
	if err != nil {
		return models.PaymentIntent{}, err
	}

	orderID := uuid.NewString()
	resp, err := s.Gateway.InitPayment(ctx, konnect.PaymentRequest{
		AmountCents:   summary.AmountCents,
		OrderID:       orderID,
		Description:   summary.Description,
		CustomerEmail: customer.Email,
		FirstName:     customer.FirstName,
		LastName:      customer.LastName,
		Phone:         customer.Phone,
	})
	if err != nil {
		return models.PaymentIntent{}, domain.InternalError{Msg: "échec de l'initialisation du paiement", Err: err}
	}

	intent, err := s.IntentRepo.Create(models.PaymentIntent{
		OrderID:     orderID,
		PaymentRef:  resp.PaymentRef,
		BookingType: bookingType,
		BookingID:   bookingID,
		AmountCents: summary.AmountCents,
		Currency:    "EUR",
		Status:      konnect.StatusPending,
		PayURL:      resp.PayURL,
		ExpiresAt:   time.Now().Add(intentLifespan),
	})
	if err != nil {
		return models.PaymentIntent{}, err
	}

	utils.LogEvent(s.RequestID, "payment", "intent_created",
		fmt.Sprintf("ref=%s booking=%s amount=%s", resp.PaymentRef, summary.Reference, utils.FormatEuro(summary.AmountCents)))
	return intent, nil
}

// ResolveStatus polls the gateway for a payment reference and propagates the
// outcome. StatusUnknown leaves the intent untouched; the storefront must not
// show success for it.
func (s PaymentService) ResolveStatus(ctx context.Context, paymentRef string) (models.PaymentIntent, string, error) {
	intent, err := s.IntentRepo.GetByPaymentRef(paymentRef)
	if err != nil {
		return models.PaymentIntent{}, konnect.StatusUnknown, err
	}

	// Terminal statuses are settled, no point asking the gateway again.
	if intent.Status == konnect.StatusCompleted || intent.Status == konnect.StatusFailed || intent.Status == konnect.StatusExpired {
		return intent, intent.Status, nil
	}

	_, status, gwErr := s.Gateway.PaymentStatus(ctx, paymentRef)
	if status == konnect.StatusUnknown {
		utils.LogEvent(s.RequestID, "payment", "status_unknown", fmt.Sprintf("ref=%s err=%v", paymentRef, gwErr))
		return intent, konnect.StatusUnknown, nil
	}

	if status != intent.Status {
		if err := s.applyStatus(intent, status); err != nil {
			return intent, status, err
		}
		intent.Status = status
	}
	return intent, status, nil
}

// HandleWebhook processes the gateway callback for a payment reference.
func (s PaymentService) HandleWebhook(ctx context.Context, paymentRef string) error {
	_, _, err := s.ResolveStatus(ctx, paymentRef)
	return err
}

func (s PaymentService) applyStatus(intent models.PaymentIntent, status string) error {
	if err := s.IntentRepo.UpdateStatus(intent.ID, status); err != nil {
		return err
	}

	if status != konnect.StatusCompleted {
		utils.LogEvent(s.RequestID, "payment", "status_updated",
			fmt.Sprintf("ref=%s status=%s", intent.PaymentRef, status))
		return nil
	}

	var err error
	switch intent.BookingType {
	case "transfer":
		_, err = s.TransferRepo.Update(intent.BookingID, models.TransferBookingUpdate{
			Status:        ptr("confirmed"),
			PaymentStatus: ptr("paid"),
		})
	case "disposal":
		_, err = s.DisposalRepo.Update(intent.BookingID, models.TransferBookingUpdate{
			Status:        ptr("confirmed"),
			PaymentStatus: ptr("paid"),
		})
	case "tour":
		_, err = s.TourBookings.Update(intent.BookingID, models.TourBookingUpdate{
			Status:        ptr("confirmed"),
			PaymentStatus: ptr("paid"),
		})
	}
	if err != nil {
		return err
	}

	utils.LogEvent(s.RequestID, "payment", "booking_paid",
		fmt.Sprintf("ref=%s type=%s booking_id=%d", intent.PaymentRef, intent.BookingType, intent.BookingID))
	return nil
}

// ExpireStale marks overdue pending intents expired. Bookings stay pending so
// the customer can retry the payment.
func (s PaymentService) ExpireStale() (int, error) {
	stale, err := s.IntentRepo.ExpireStale()
	if err != nil {
		return 0, err
	}
	if len(stale) > 0 {
		utils.LogEvent(s.RequestID, "payment", "intents_expired", fmt.Sprintf("count=%d", len(stale)))
	}
	return len(stale), nil
}

func ptr[T any](v T) *T { return &v }
