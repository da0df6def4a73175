package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// OrderSignature computes the checkout signature Razorpay issues for a
// completed payment: lowercase hex of HMAC-SHA256("<order_id>|<payment_id>")
// keyed with the key secret.
func OrderSignature(secret, orderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyOrderSignature recomputes the expected signature and compares it to
// the supplied one. The comparison is constant-time; any difference fails.
func VerifyOrderSignature(secret, orderID, paymentID, signature string) bool {
	expected := OrderSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
