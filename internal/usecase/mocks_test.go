//go:build !integration

package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"whatsapp-payment-gateway/internal/domain/model"
	"whatsapp-payment-gateway/internal/infra/payment"
)

const testSecret = "s3cr3t"

// MockPaymentGateway is a hand-rolled gateway double with per-method hooks
// and call counters so tests can assert that fail-closed paths never reach
// the provider.
type MockPaymentGateway struct {
	CreateOrderFunc  func(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (json.RawMessage, error)
	FetchPaymentFunc func(ctx context.Context, paymentID string) (*model.ProviderPayment, error)

	CreateOrderCalls  int
	FetchPaymentCalls int
}

func (m *MockPaymentGateway) Name() string { return "mock" }

func (m *MockPaymentGateway) KeyID() string { return "rzp_test_mock" }

func (m *MockPaymentGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (json.RawMessage, error) {
	m.CreateOrderCalls++
	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, amountMinor, currency, receipt, notes)
	}
	return json.RawMessage(`{"id":"order_mock"}`), nil
}

func (m *MockPaymentGateway) FetchPayment(ctx context.Context, paymentID string) (*model.ProviderPayment, error) {
	m.FetchPaymentCalls++
	if m.FetchPaymentFunc != nil {
		return m.FetchPaymentFunc(ctx, paymentID)
	}
	return &model.ProviderPayment{ID: paymentID, Amount: 1000, Currency: "INR", Status: "captured"}, nil
}

func (m *MockPaymentGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return payment.VerifyOrderSignature(testSecret, orderID, paymentID, signature)
}

func newTestLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
