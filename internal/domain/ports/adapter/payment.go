package adapter

import (
	"context"
	"encoding/json"

	"whatsapp-payment-gateway/internal/domain/model"
)

// PaymentGateway is the hex port for the payment provider.
type PaymentGateway interface {
	Name() string

	// KeyID exposes the publishable half of the credential pair. The secret
	// half never leaves the gateway.
	KeyID() string

	// CreateOrder registers a payment intent with the provider. Amount is in
	// minor units. The raw provider body is returned so the handler can relay
	// it verbatim.
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (json.RawMessage, error)

	// FetchPayment retrieves the authoritative payment resource by id.
	FetchPayment(ctx context.Context, paymentID string) (*model.ProviderPayment, error)

	// VerifySignature reports whether the supplied signature matches the one
	// recomputed locally from the shared secret.
	VerifySignature(orderID, paymentID, signature string) bool
}
