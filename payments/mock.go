package payments

import (
	"context"
	"fmt"
	"time"

	"github.com/kunalsaini/home-service-app/models"
)

// SimulatedGateway approves every charge after a short fixed delay. The
// delay is configurable so tests can run with zero wait; cancellation tears
// the charge down early.
type SimulatedGateway struct {
	Delay time.Duration
}

func NewSimulatedGateway() *SimulatedGateway {
	return &SimulatedGateway{Delay: 2 * time.Second}
}

func (g *SimulatedGateway) Charge(ctx context.Context, amount int, method models.PaymentMethod, reference string) (*ChargeResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid charge amount %d", amount)
	}
	if !models.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("unsupported payment method %q", method)
	}

	select {
	case <-time.After(g.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	status := "succeeded"
	if method == models.MethodCOD {
		status = "pending"
	}

	return &ChargeResult{
		TransactionID: fmt.Sprintf("SIM-%s", reference),
		Status:        status,
	}, nil
}
