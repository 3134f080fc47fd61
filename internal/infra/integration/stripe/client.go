// Package stripe cria sessões de Checkout hospedadas no Stripe.
package stripe

import (
	"context"
	"log/slog"
	"net/http"

	stripego "github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
)

type Client struct {
	sessions checkoutsession.Client
}

type Options struct {
	// APIURL troca o endpoint da API (stripe-mock, testes).
	APIURL     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient não usa o stripe.Key global: chave e backend ficam presos a
// esta instância. Os retries de rede do SDK ficam desligados.
func NewClient(secretKey string, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backendCfg := &stripego.BackendConfig{
		LeveledLogger:     slogLeveled{logger: logger.With("component", "stripe")},
		MaxNetworkRetries: stripego.Int64(0),
		EnableTelemetry:   stripego.Bool(false),
	}
	if opts.HTTPClient != nil {
		backendCfg.HTTPClient = opts.HTTPClient
	}
	if opts.APIURL != "" {
		backendCfg.URL = stripego.String(opts.APIURL)
	}

	return &Client{
		sessions: checkoutsession.Client{
			B:   stripego.GetBackendWithConfig(stripego.APIBackend, backendCfg),
			Key: secretKey,
		},
	}
}

// CreateCheckoutSession faz exatamente uma chamada à API. Erros sempre
// voltam como *GatewayError.
func (c *Client) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSessionOutput, error) {
	params := buildSessionParams(input)
	params.Context = ctx

	sess, err := c.sessions.New(params)
	if err != nil {
		return nil, toGatewayError(err)
	}

	return &CheckoutSessionOutput{ID: sess.ID, URL: sess.URL}, nil
}

func buildSessionParams(input CheckoutSessionInput) *stripego.CheckoutSessionParams {
	lineItems := make([]*stripego.CheckoutSessionLineItemParams, 0, len(input.LineItems))
	for _, item := range input.LineItems {
		lineItems = append(lineItems, &stripego.CheckoutSessionLineItemParams{
			Price:    stripego.String(item.PriceID),
			Quantity: stripego.Int64(item.Quantity),
		})
	}

	params := &stripego.CheckoutSessionParams{
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		Mode:               stripego.String(string(stripego.CheckoutSessionModeSubscription)),
		LineItems:          lineItems,
		SuccessURL:         stripego.String(input.SuccessURL),
		CancelURL:          stripego.String(input.CancelURL),
	}
	if input.Locale != "" {
		params.Locale = stripego.String(input.Locale)
	}
	if input.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(input.CustomerEmail)
	}
	return params
}
