// File: internal/usecase/payment_uc.go
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"whatsapp-payment-gateway/internal/domain"
	"whatsapp-payment-gateway/internal/domain/model"
	"whatsapp-payment-gateway/internal/domain/ports/adapter"
	"whatsapp-payment-gateway/internal/infra/logging"
)

const (
	defaultCurrency = "INR"
	minAmountMajor  = 1
)

// Compile-time check
var _ PaymentUseCase = (*paymentUC)(nil)

type PaymentUseCase interface {
	// CreateOrder validates the request, converts the amount to minor units
	// and registers the order with the provider. The provider body is
	// returned verbatim.
	CreateOrder(ctx context.Context, req model.OrderRequest) (json.RawMessage, error)
	// VerifyPayment checks the HMAC signature and, only on a match, fetches
	// the authoritative payment record from the provider.
	VerifyPayment(ctx context.Context, req model.VerificationRequest) (*model.PaymentRecord, error)
	// PublicKey exposes the publishable key id for checkout clients.
	PublicKey() string
}

type paymentUC struct {
	gateway adapter.PaymentGateway
	log     *zerolog.Logger
}

func NewPaymentUseCase(gateway adapter.PaymentGateway, logger *zerolog.Logger) *paymentUC {
	return &paymentUC{gateway: gateway, log: logger}
}

func (u *paymentUC) CreateOrder(ctx context.Context, req model.OrderRequest) (json.RawMessage, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.CreateOrder")()

	if req.Amount < minAmountMajor {
		return nil, domain.ErrAmountTooSmall
	}

	amountMinor := int64(math.Round(req.Amount * 100))
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	}
	notes := req.Notes
	if notes == nil {
		notes = map[string]string{}
	}

	raw, err := u.gateway.CreateOrder(ctx, amountMinor, currency, receipt, notes)
	if err != nil {
		u.log.Warn().Err(err).Int64("amount_minor", amountMinor).Str("currency", currency).Msg("order creation failed")
		return nil, err
	}

	u.log.Info().Int64("amount_minor", amountMinor).Str("currency", currency).Str("receipt", receipt).Msg("order created")
	return raw, nil
}

func (u *paymentUC) VerifyPayment(ctx context.Context, req model.VerificationRequest) (*model.PaymentRecord, error) {
	defer logging.TraceDuration(u.log, "PaymentUC.VerifyPayment")()

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		return nil, domain.ErrMissingFields
	}

	// Fail closed: a bad signature never reaches the provider.
	if !u.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		u.log.Warn().
			Str("order_id", logging.Redact(req.OrderID, false)).
			Str("payment_id", logging.Redact(req.PaymentID, false)).
			Msg("signature verification failed")
		return nil, domain.ErrSignatureMismatch
	}

	p, err := u.gateway.FetchPayment(ctx, req.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch verified payment: %w", err)
	}

	u.log.Info().Str("payment_id", p.ID).Str("status", p.Status).Msg("payment verified")
	return &model.PaymentRecord{
		ID:       p.ID,
		Amount:   float64(p.Amount) / 100,
		Currency: p.Currency,
		Status:   p.Status,
		Method:   p.Method,
		Email:    p.Email,
		Contact:  p.Contact,
	}, nil
}

func (u *paymentUC) PublicKey() string {
	return u.gateway.KeyID()
}
