package usecase

import (
	"context"

	"github.com/xavierca1/barber-checkout/internal/entity"
	"github.com/xavierca1/barber-checkout/internal/infra/integration/stripe"
)

type PlanRegistry interface {
	Lookup(key string) (*entity.Plan, error)
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, input stripe.CheckoutSessionInput) (*stripe.CheckoutSessionOutput, error)
}

// CheckoutRecorder recebe o resultado de cada tentativa (métricas).
type CheckoutRecorder interface {
	RecordCheckout(plan, outcome string)
	RecordGatewayError(errType string)
}
