package booking

import (
	"fmt"
	"math/rand"
	"time"

	"dbswash/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentProcessor settles the amount due for a submitted booking.
type PaymentProcessor interface {
	Process(req models.PaymentRequest) (*models.PaymentResult, error)
}

// SimulatedPaymentProcessor stands in for the mobile-money gateway. It waits
// for a configured delay and then settles, optionally declining a percentage
// of requests so the failure path stays exercised end to end.
type SimulatedPaymentProcessor struct {
	Logger   *zap.Logger
	Delay    time.Duration
	FailRate int // percent of requests declined, 0-100
}

// NewSimulatedPaymentProcessor builds a processor with the given latency and
// decline rate.
func NewSimulatedPaymentProcessor(logger *zap.Logger, delay time.Duration, failRate int) *SimulatedPaymentProcessor {
	return &SimulatedPaymentProcessor{Logger: logger, Delay: delay, FailRate: failRate}
}

// Process validates and settles a payment request. Mobile-money payments are
// marked paid; pay-on-site bookings stay pending until the customer shows up.
func (p *SimulatedPaymentProcessor) Process(req models.PaymentRequest) (*models.PaymentResult, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	time.Sleep(p.Delay)

	if p.FailRate > 0 && rand.Intn(100) < p.FailRate {
		p.Logger.Warn("payment declined",
			zap.String("session", req.SessionID),
			zap.String("method", req.Method))
		return nil, fmt.Errorf("payment declined by processor")
	}

	result := &models.PaymentResult{ProcessedAt: time.Now()}
	switch req.Method {
	case models.PaymentMobileMoney:
		result.PaymentID = "mm_" + uuid.New().String()
		result.Status = "paid"
	case models.PaymentOnSite:
		result.Status = "pending"
	}

	p.Logger.Info("payment processed",
		zap.String("session", req.SessionID),
		zap.String("method", req.Method),
		zap.Float64("amount", req.Amount),
		zap.String("status", result.Status))
	return result, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount < 0 {
		return fmt.Errorf("negative payment amount")
	}
	if req.SessionID == "" {
		return fmt.Errorf("missing session ID")
	}
	if req.Method != models.PaymentMobileMoney && req.Method != models.PaymentOnSite {
		return fmt.Errorf("unsupported method: %s", req.Method)
	}
	return nil
}
