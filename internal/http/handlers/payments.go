package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navetteclub/internal/domain"
	"navetteclub/internal/http/middleware"
	"navetteclub/internal/konnect"
	"navetteclub/internal/repositories"
	"navetteclub/internal/services"
	"navetteclub/internal/utils"
)

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		IntentRepo:   repositories.PaymentIntentRepo{},
		CustomerRepo: repositories.CustomerRepo{},
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		Gateway:      gateway,
		RequestID:    middleware.GetRequestID(c),
	}
}

type initPaymentRequest struct {
	BookingType string `json:"bookingType"`
	BookingID   int64  `json:"bookingId"`
}

// POST /api/payments/init
// Creates the gateway payment and returns the URL the storefront redirects to.
func InitPayment(c *gin.Context) {
	var req initPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BookingID <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "bookingId", Msg: "identifiant de réservation invalide"})
		return
	}

	intent, err := paymentService(c).InitBookingPayment(c.Request.Context(), req.BookingType, req.BookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"orderId":    intent.OrderID,
		"paymentRef": intent.PaymentRef,
		"payUrl":     intent.PayURL,
		"amount":     utils.FormatEuro(intent.AmountCents),
		"expiresAt":  intent.ExpiresAt,
	})
}

// GET /api/payments/status/:ref
// Polled by the storefront return page. An unknown gateway answer is reported
// as-is and never rendered as a success.
func GetPaymentStatus(c *gin.Context) {
	ref := strings.TrimSpace(c.Param("ref"))
	if ref == "" {
		RespondError(c, http.StatusBadRequest, "référence de paiement requise", nil)
		return
	}

	svc := paymentService(c)

	prior, err := svc.IntentRepo.GetByPaymentRef(ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	intent, status, err := svc.ResolveStatus(c.Request.Context(), ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if prior.Status != konnect.StatusCompleted && status == konnect.StatusCompleted {
		go sendBookingVoucherEmail(c.Copy(), intent.BookingType, intent.BookingID)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"bookingType": intent.BookingType,
		"bookingId":   intent.BookingID,
		"amount":      utils.FormatEuro(intent.AmountCents),
	})
}

// POST /api/payments/webhook?payment_ref=...
// Konnect calls back with the reference in the query string, GET or POST.
func PaymentWebhook(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("payment_ref"))
	if ref == "" {
		RespondError(c, http.StatusBadRequest, "paramètre payment_ref manquant", nil)
		return
	}

	svc := paymentService(c)

	prior, err := svc.IntentRepo.GetByPaymentRef(ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	intent, status, err := svc.ResolveStatus(c.Request.Context(), ref)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if prior.Status != konnect.StatusCompleted && status == konnect.StatusCompleted {
		go sendBookingVoucherEmail(c.Copy(), intent.BookingType, intent.BookingID)
	}

	c.JSON(http.StatusOK, gin.H{"received": true, "status": status})
}

// sendBookingVoucherEmail mails the customer their voucher, right after
// booking creation and again once a payment completes. Best effort, runs off
// the request path.
func sendBookingVoucherEmail(c *gin.Context, bookingType string, bookingID int64) {
	reqID := middleware.GetRequestID(c)

	var customerID int64
	var reference string
	var totalCents int64
	switch bookingType {
	case "transfer":
		b, err := (repositories.TransferBookingRepo{}).GetByID(bookingID)
		if err != nil {
			return
		}
		customerID, reference, totalCents = b.CustomerID, b.Reference, b.TotalPriceCents
	case "disposal":
		b, err := (repositories.DisposalBookingRepo{}).GetByID(bookingID)
		if err != nil {
			return
		}
		customerID, reference, totalCents = b.CustomerID, b.Reference, b.TotalPriceCents
	case "tour":
		b, err := (repositories.TourBookingRepo{}).GetByID(bookingID)
		if err != nil {
			return
		}
		customerID, reference, totalCents = b.CustomerID, b.Reference, b.TotalPriceCents
	default:
		return
	}

	customer, err := (repositories.CustomerRepo{}).GetByID(customerID)
	if err != nil || customer.Email == "" {
		return
	}

	svc := services.DocsService{
		TransferRepo: repositories.TransferBookingRepo{},
		DisposalRepo: repositories.DisposalBookingRepo{},
		TourBookings: repositories.TourBookingRepo{},
		CustomerRepo: repositories.CustomerRepo{},
		VehicleRepo:  repositories.VehicleRepo{},
		TourRepo:     repositories.TourRepo{},
		ProviderRepo: repositories.ProviderRepo{},
		RequestID:    reqID,
	}
	pdf, name, err := svc.GenerateVoucher(bookingType, bookingID)
	if err != nil {
		utils.LogEvent(reqID, "mail", "voucher_skipped", err.Error())
		return
	}

	fullName := strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	if err := mailer(c).SendBookingConfirmation(customer.Email, fullName, reference, totalCents, pdf, name); err != nil {
		utils.LogEvent(reqID, "mail", "confirmation_failed", err.Error())
	}
}
