package payments

import (
	"context"
	"os"

	"github.com/kunalsaini/home-service-app/models"
)

// ChargeResult reports the outcome of a payment attempt.
type ChargeResult struct {
	TransactionID string
	Status        string
}

// Gateway is the payment port. The booking flow charges through this
// interface so tests can inject an immediate or failing implementation
// instead of depending on wall-clock delays.
type Gateway interface {
	Charge(ctx context.Context, amount int, method models.PaymentMethod, reference string) (*ChargeResult, error)
}

// FromEnv selects the configured gateway. Defaults to the simulated one;
// set PAYMENT_GATEWAY=stripe to charge through Stripe.
func FromEnv() Gateway {
	if os.Getenv("PAYMENT_GATEWAY") == "stripe" {
		return NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	}
	return NewSimulatedGateway()
}
