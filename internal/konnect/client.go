// Package konnect talks to the Konnect payment gateway. Amounts go out in
// Tunisian millimes; the storefront polls payment references after redirect.
package konnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"navetteclub/internal/utils"
)

// Payment statuses as the gateway reports them, plus StatusUnknown for an
// unreachable gateway. Unknown must render as a failure, never as success.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusExpired   = "expired"
	StatusUnknown   = "unknown"
)

type Client struct {
	APIKey           string
	ReceiverWalletID string
	BaseURL          string
	AppBaseURL       string
	EURToTNDRate     float64
	HTTPClient       *http.Client
}

func NewClient(apiKey, receiverWallet, baseURL, appBaseURL string, eurToTND float64) *Client {
	return &Client{
		APIKey:           apiKey,
		ReceiverWalletID: receiverWallet,
		BaseURL:          baseURL,
		AppBaseURL:       appBaseURL,
		EURToTNDRate:     eurToTND,
		HTTPClient:       &http.Client{Timeout: 15 * time.Second},
	}
}

type PaymentRequest struct {
	AmountCents   int64
	OrderID       string
	Description   string
	CustomerEmail string
	FirstName     string
	LastName      string
	Phone         string
}

type PaymentResponse struct {
	PayURL     string `json:"payUrl"`
	PaymentRef string `json:"paymentRef"`
}

type PaymentDetails struct {
	ID             string `json:"id"`
	Status         string `json:"status"`
	AmountMillimes int64  `json:"amount"`
	OrderID        string `json:"orderId"`
	ExpirationDate string `json:"expirationDate,omitempty"`
}

// InitPayment creates a gateway payment with a 30-minute lifespan and returns
// the redirect URL plus the reference to poll.
func (c *Client) InitPayment(ctx context.Context, req PaymentRequest) (PaymentResponse, error) {
	if c.APIKey == "" || c.ReceiverWalletID == "" {
		return PaymentResponse{}, fmt.Errorf("passerelle de paiement non configurée")
	}

	payload := map[string]any{
		"receiverWalletId":       c.ReceiverWalletID,
		"token":                  "TND",
		"amount":                 utils.CentsToMillimes(req.AmountCents, c.EURToTNDRate),
		"type":                   "immediate",
		"description":            req.Description,
		"acceptedPaymentMethods": []string{"wallet", "bank_card", "e-DINAR"},
		"lifespan":               30,
		"checkoutForm":           false,
		"addPaymentFeesToAmount": true,
		"firstName":              req.FirstName,
		"lastName":               req.LastName,
		"phoneNumber":            req.Phone,
		"email":                  req.CustomerEmail,
		"orderId":                req.OrderID,
		"webhook":                c.AppBaseURL + "/api/payments/webhook",
		"silentWebhook":          false,
		"successUrl":             c.AppBaseURL + "/payment/success?payment_ref=PAYMENT_REF",
		"failUrl":                c.AppBaseURL + "/payment/failure?payment_ref=PAYMENT_REF",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return PaymentResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/payments/init-payment", bytes.NewReader(body))
	if err != nil {
		return PaymentResponse{}, err
	}
	httpReq.Header.Set("x-api-key", c.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return PaymentResponse{}, fmt.Errorf("init paiement Konnect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return PaymentResponse{}, fmt.Errorf("init paiement Konnect: HTTP %d %s", resp.StatusCode, apiErr.Message)
	}

	var out PaymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return PaymentResponse{}, err
	}
	if out.PaymentRef == "" || out.PayURL == "" {
		return PaymentResponse{}, fmt.Errorf("réponse Konnect incomplète")
	}
	return out, nil
}

// PaymentStatus queries the gateway once for a payment reference and maps the
// result. A transport failure returns StatusUnknown with the error; callers
// must not treat that as success.
func (c *Client) PaymentStatus(ctx context.Context, paymentRef string) (PaymentDetails, string, error) {
	details, err := c.paymentDetails(ctx, paymentRef)
	if err != nil {
		return PaymentDetails{}, StatusUnknown, err
	}

	switch details.Status {
	case StatusCompleted, StatusFailed, StatusExpired, StatusPending:
		return details, details.Status, nil
	default:
		return details, StatusUnknown, fmt.Errorf("statut Konnect inattendu: %q", details.Status)
	}
}

func (c *Client) paymentDetails(ctx context.Context, paymentRef string) (PaymentDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/payments/"+paymentRef, nil)
	if err != nil {
		return PaymentDetails{}, err
	}
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return PaymentDetails{}, fmt.Errorf("détails paiement Konnect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return PaymentDetails{}, fmt.Errorf("référence de paiement inconnue: %s", paymentRef)
	}
	if resp.StatusCode != http.StatusOK {
		return PaymentDetails{}, fmt.Errorf("détails paiement Konnect: HTTP %d", resp.StatusCode)
	}

	var wrapper struct {
		Payment PaymentDetails `json:"payment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return PaymentDetails{}, err
	}
	return wrapper.Payment, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
