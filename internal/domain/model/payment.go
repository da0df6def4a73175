package model

// OrderRequest is the client's intent to collect a payment. Amount is in
// major currency units; the provider is spoken to in minor units.
type OrderRequest struct {
	Amount   float64           `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// VerificationRequest holds the three provider-issued identifiers a client
// submits after checkout. All are opaque strings.
type VerificationRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// ProviderPayment mirrors the provider's payment resource; Amount is in
// minor units exactly as the provider reports it.
type ProviderPayment struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Method   string `json:"method"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

// PaymentRecord is the normalized view returned to clients after a verified
// payment, with the amount converted back to major units.
type PaymentRecord struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
	Method   string  `json:"method"`
	Email    string  `json:"email"`
	Contact  string  `json:"contact"`
}
