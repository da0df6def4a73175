package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"whatsapp-payment-gateway/internal/domain"
	"whatsapp-payment-gateway/internal/domain/model"
)

// RazorpayGateway implements adapter.PaymentGateway using direct HTTP calls
// against the Razorpay REST API with HTTP Basic auth.
type RazorpayGateway struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

// NewRazorpayGateway creates a new direct Razorpay gateway. Both halves of the
// credential pair are required.
func NewRazorpayGateway(keyID, keySecret, baseURL string, timeout time.Duration) (*RazorpayGateway, error) {
	if keyID == "" || keySecret == "" {
		return nil, errors.New("razorpay: key id and key secret are required")
	}
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

func (g *RazorpayGateway) Name() string { return "razorpay" }

func (g *RazorpayGateway) KeyID() string { return g.keyID }

// razorpayErrorResponse represents the error envelope returned by the API.
type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder implements PaymentGateway.CreateOrder. The provider's body is
// returned untouched on success so callers can relay it verbatim.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (json.RawMessage, error) {
	if notes == nil {
		notes = map[string]string{}
	}
	requestData := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, status, err := g.do(ctx, http.MethodPost, "/v1/orders", requestData)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &domain.UpstreamError{
			StatusCode:  status,
			Description: upstreamDescription(body, "Failed to create order"),
		}
	}
	return json.RawMessage(body), nil
}

// FetchPayment implements PaymentGateway.FetchPayment.
func (g *RazorpayGateway) FetchPayment(ctx context.Context, paymentID string) (*model.ProviderPayment, error) {
	body, status, err := g.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, &domain.UpstreamError{
			StatusCode:  status,
			Description: upstreamDescription(body, "Failed to fetch payment"),
		}
	}

	var p model.ProviderPayment
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w, body: %s", err, string(body))
	}
	return &p, nil
}

// VerifySignature implements PaymentGateway.VerifySignature using the shared
// secret half of the credential pair.
func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyOrderSignature(g.keySecret, orderID, paymentID, signature)
}

func (g *RazorpayGateway) do(ctx context.Context, method, path string, payload interface{}) ([]byte, int, error) {
	var reqBody io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request data: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reqBody)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(g.keyID, g.keySecret)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

// upstreamDescription extracts the provider's error description, falling back
// to a generic message when the body carries none.
func upstreamDescription(body []byte, fallback string) string {
	var envelope razorpayErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Description != "" {
		return envelope.Error.Description
	}
	return fallback
}
