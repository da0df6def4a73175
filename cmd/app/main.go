// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"whatsapp-payment-gateway/internal/config"
	"whatsapp-payment-gateway/internal/infra/api"
	"whatsapp-payment-gateway/internal/infra/logging"
	"whatsapp-payment-gateway/internal/infra/metrics"
	"whatsapp-payment-gateway/internal/infra/payment"
	"whatsapp-payment-gateway/internal/usecase"
)

func main() {
	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, no redaction)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	metrics.MustRegister()

	// ---- Payment gateway ----
	pgw, err := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL, cfg.Razorpay.Timeout)
	if err != nil {
		log.Fatalf("razorpay gateway: %v", err)
	}
	paymentUC := usecase.NewPaymentUseCase(pgw, logger)

	// ---- HTTP server ----
	r := chi.NewRouter()
	r.Use(
		api.CORS(),
		api.TraceID(logger),
		api.RequestLog(logger),
		api.Recover(logger),
		api.Timeout(cfg.Server.RequestTimeout),
	)
	srv := api.NewServer(paymentUC, logger)
	srv.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("payment gateway listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	logger.Info().Msg("shutdown requested")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
