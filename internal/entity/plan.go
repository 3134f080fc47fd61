package entity

import "errors"

var ErrPlanNotFound = errors.New("plano não encontrado")

const (
	PlanGestao = "gestao"
	PlanFull   = "full"
)

// Plan é a definição imutável de um plano de assinatura: a chave enviada
// pelo front, os dois preços do gateway (mensalidade + taxa de setup) e o
// nome exibido.
type Plan struct {
	Key               string
	RecurringPriceRef string
	SetupPriceRef     string
	DisplayName       string
}

// Configured indica se os dois preços foram definidos no deploy.
func (p Plan) Configured() bool {
	return p.RecurringPriceRef != "" && p.SetupPriceRef != ""
}
