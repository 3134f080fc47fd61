package usecase

import "errors"

const (
	CodeInvalidPlan        = "INVALID_PLAN"
	CodeConfigurationError = "CONFIGURATION_ERROR"
	CodeGatewayError       = "GATEWAY_ERROR"
)

// DomainError é culpa de quem chamou (plano inexistente).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError é falha nossa ou do gateway. Type é a classificação
// repassada ao cliente.
type TechnicalError struct {
	Code    string
	Message string
	Type    string
	Err     error
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
