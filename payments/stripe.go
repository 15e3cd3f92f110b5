package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"github.com/kunalsaini/home-service-app/models"
)

// StripeGateway charges through Stripe payment intents. Amounts are whole
// currency units (INR) and converted to paise on the wire.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) Charge(ctx context.Context, amount int, method models.PaymentMethod, reference string) (*ChargeResult, error) {
	if method == models.MethodCOD {
		// Cash on delivery is settled after the service, nothing to charge
		return &ChargeResult{TransactionID: reference, Status: "pending"}, nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount) * 100),
		Currency: stripe.String(string(stripe.CurrencyINR)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Description: stripe.String(fmt.Sprintf("Booking %s", reference)),
		Confirm:     stripe.Bool(true),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe charge failed: %w", err)
	}

	return &ChargeResult{
		TransactionID: intent.ID,
		Status:        string(intent.Status),
	}, nil
}
