package stripe

import (
	"errors"

	stripego "github.com/stripe/stripe-go/v79"
)

// ErrorTypeConnection classifica falhas que não vieram da API (rede,
// contexto cancelado, resposta ilegível).
const ErrorTypeConnection = "api_connection_error"

// GatewayError carrega a mensagem e a classificação do Stripe sem detalhes
// da nossa configuração.
type GatewayError struct {
	Message    string
	Type       string
	StatusCode int
}

func (e *GatewayError) Error() string {
	return e.Message
}

func toGatewayError(err error) *GatewayError {
	var stripeErr *stripego.Error
	if errors.As(err, &stripeErr) {
		return &GatewayError{
			Message:    stripeErr.Msg,
			Type:       string(stripeErr.Type),
			StatusCode: stripeErr.HTTPStatusCode,
		}
	}
	return &GatewayError{
		Message: err.Error(),
		Type:    ErrorTypeConnection,
	}
}
