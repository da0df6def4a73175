package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"whatsapp-payment-gateway/internal/domain"
	"whatsapp-payment-gateway/internal/domain/model"
	"whatsapp-payment-gateway/internal/infra/logging"
	"whatsapp-payment-gateway/internal/infra/metrics"
	"whatsapp-payment-gateway/internal/usecase"
)

// command is the explicit dispatch target derived from the trailing path
// segment, so unknown-action handling lives in exactly one place.
type command int

const (
	cmdUnknown command = iota
	cmdCreateOrder
	cmdVerifyPayment
	cmdGetKey
)

func parseCommand(action string) command {
	switch action {
	case "create-order":
		return cmdCreateOrder
	case "verify-payment":
		return cmdVerifyPayment
	case "get-key":
		return cmdGetKey
	default:
		return cmdUnknown
	}
}

// Server wires the payment routes to PaymentUseCase.
type Server struct {
	payUC usecase.PaymentUseCase
	log   *zerolog.Logger
}

func NewServer(payUC usecase.PaymentUseCase, logger *zerolog.Logger) *Server {
	return &Server{payUC: payUC, log: logger}
}

// Register attaches handlers to the provided router. Anything that does not
// resolve to a known action answers 400, matching the action dispatch.
func (s *Server) Register(r chi.Router) {
	r.HandleFunc("/api/v1/payment/{action}", s.handleAction)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid action"))
	})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	switch parseCommand(chi.URLParam(r, "action")) {
	case cmdCreateOrder:
		s.handleCreateOrder(w, r)
	case cmdVerifyPayment:
		s.handleVerifyPayment(w, r)
	case cmdGetKey:
		writeJSON(w, http.StatusOK, map[string]string{"key_id": s.payUC.PublicKey()})
	default:
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid action"))
	}
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveOrderCreate("fail", "bad_json", time.Since(start).Seconds())
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	raw, err := s.payUC.CreateOrder(ctx, req)
	if err != nil {
		s.writeCreateOrderError(w, err, start)
		return
	}

	metrics.ObserveOrderCreate("ok", "", time.Since(start).Seconds())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

func (s *Server) writeCreateOrderError(w http.ResponseWriter, err error, start time.Time) {
	elapsed := time.Since(start).Seconds()

	if errors.Is(err, domain.ErrAmountTooSmall) {
		metrics.ObserveOrderCreate("fail", "amount_too_small", elapsed)
		writeJSON(w, http.StatusBadRequest, errorBody("Amount must be at least 1 INR"))
		return
	}

	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		metrics.ObserveOrderCreate("fail", "upstream_error", elapsed)
		writeJSON(w, ue.StatusCode, errorBody(ue.Description))
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		metrics.ObserveOrderCreate("fail", "upstream_timeout", elapsed)
		writeJSON(w, http.StatusGatewayTimeout, errorBody("Payment provider timed out"))
		return
	}

	metrics.ObserveOrderCreate("fail", "unknown", elapsed)
	writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
}

func (s *Server) handleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	var req model.VerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ObserveVerify("fail", "bad_json", time.Since(start).Seconds())
		writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		return
	}

	record, err := s.payUC.VerifyPayment(ctx, req)
	if err != nil {
		elapsed := time.Since(start).Seconds()
		switch {
		case errors.Is(err, domain.ErrMissingFields):
			metrics.ObserveVerify("fail", "missing_fields", elapsed)
			writeJSON(w, http.StatusBadRequest, errorBody("Missing required fields"))
		case errors.Is(err, domain.ErrSignatureMismatch):
			metrics.ObserveVerify("fail", "invalid_signature", elapsed)
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"verified": false,
				"error":    "Invalid signature",
			})
		case errors.Is(err, context.DeadlineExceeded):
			metrics.ObserveVerify("fail", "upstream_timeout", elapsed)
			writeJSON(w, http.StatusGatewayTimeout, errorBody("Payment provider timed out"))
		default:
			// A verified signature with a failed provider fetch is a server
			// error; never answer verified:true without payment data.
			logging.With(ctx, s.log).Error().Err(err).Msg("verified payment fetch failed")
			metrics.ObserveVerify("fail", "fetch_error", elapsed)
			writeJSON(w, http.StatusInternalServerError, errorBody(err.Error()))
		}
		return
	}

	metrics.ObserveVerify("ok", "", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"verified": true,
		"payment":  record,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func errorBody(msg string) map[string]string {
	return map[string]string{"error": msg}
}
