package payments

import (
	"context"
	"testing"
	"time"

	"github.com/kunalsaini/home-service-app/models"
)

func TestSimulatedGatewayCharge(t *testing.T) {
	gateway := &SimulatedGateway{Delay: 0}

	result, err := gateway.Charge(context.Background(), 799, models.MethodUPI, "BD-12345")
	if err != nil {
		t.Fatalf("Charge() error = %v", err)
	}
	if result.Status != "succeeded" {
		t.Errorf("status = %q, want succeeded", result.Status)
	}
	if result.TransactionID != "SIM-BD-12345" {
		t.Errorf("transaction id = %q, want SIM-BD-12345", result.TransactionID)
	}
}

func TestSimulatedGatewayCashOnDelivery(t *testing.T) {
	gateway := &SimulatedGateway{Delay: 0}

	result, err := gateway.Charge(context.Background(), 500, models.MethodCOD, "BD-12346")
	if err != nil {
		t.Fatalf("Charge() error = %v", err)
	}
	if result.Status != "pending" {
		t.Errorf("status = %q, want pending for cash on delivery", result.Status)
	}
}

func TestSimulatedGatewayRejectsBadInput(t *testing.T) {
	gateway := &SimulatedGateway{Delay: 0}

	if _, err := gateway.Charge(context.Background(), 0, models.MethodCard, "BD-1"); err == nil {
		t.Error("expected an error for a zero amount")
	}
	if _, err := gateway.Charge(context.Background(), -10, models.MethodCard, "BD-1"); err == nil {
		t.Error("expected an error for a negative amount")
	}
	if _, err := gateway.Charge(context.Background(), 100, "cheque", "BD-1"); err == nil {
		t.Error("expected an error for an unsupported method")
	}
}

func TestSimulatedGatewayHonorsCancellation(t *testing.T) {
	gateway := &SimulatedGateway{Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.Charge(ctx, 100, models.MethodCard, "BD-1")
	if err != context.Canceled {
		t.Errorf("Charge() error = %v, want context.Canceled", err)
	}
}

func TestNewSimulatedGatewayDefaultDelay(t *testing.T) {
	if NewSimulatedGateway().Delay != 2*time.Second {
		t.Error("default delay changed")
	}
}
