package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/xavierca1/barber-checkout/internal/usecase"
)

const maxCheckoutBody = 4 << 10

type CheckoutCreator interface {
	Execute(ctx context.Context, input usecase.CreateCheckoutInput) (*usecase.CreateCheckoutOutput, error)
}

type CheckoutHandler struct {
	CreateCheckoutUC CheckoutCreator
}

func NewCheckoutHandler(uc CheckoutCreator) *CheckoutHandler {
	return &CheckoutHandler{CreateCheckoutUC: uc}
}

// Handle atende POST /api/create-checkout. OPTIONS responde 200 sem corpo;
// qualquer outro método é 405 antes de olhar o corpo.
func (h *CheckoutHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		MethodNotAllowed(w, r)
		return
	}

	var input usecase.CreateCheckoutInput
	if err := json.NewDecoder(io.LimitReader(r.Body, maxCheckoutBody)).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "JSON inválido", "")
		return
	}
	input.Origin = r.Header.Get("Origin")

	output, err := h.CreateCheckoutUC.Execute(r.Context(), input)
	if err != nil {
		writeCheckoutError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func writeCheckoutError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeErrorResponse(w, http.StatusBadRequest, domainErr.Message, "")
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Message, techErr.Type)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "Erro ao criar sessão de pagamento", "")
}
