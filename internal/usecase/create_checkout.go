package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/xavierca1/barber-checkout/internal/entity"
	"github.com/xavierca1/barber-checkout/internal/infra/integration/stripe"
)

const (
	CheckoutLocale = "pt-BR"

	// Placeholder substituído pelo próprio Stripe no redirect de sucesso.
	sessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
	pricingAnchor        = "#pricing"
)

const (
	OutcomeSuccess            = "success"
	OutcomeInvalidPlan        = "invalid_plan"
	OutcomeConfigurationError = "configuration_error"
	OutcomeGatewayError       = "gateway_error"
)

// CheckoutSettings é a parte da configuração que o checkout precisa.
type CheckoutSettings struct {
	SuccessURL       string
	CancelURL        string
	DefaultCancelURL string
}

type CreateCheckoutUseCase struct {
	Plans    PlanRegistry
	Gateway  PaymentGateway // nil quando a chave do Stripe não foi configurada
	Settings CheckoutSettings
	Recorder CheckoutRecorder
	Logger   *slog.Logger
}

func NewCreateCheckoutUseCase(
	plans PlanRegistry,
	gateway PaymentGateway,
	settings CheckoutSettings,
	recorder CheckoutRecorder,
	logger *slog.Logger,
) *CreateCheckoutUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateCheckoutUseCase{
		Plans:    plans,
		Gateway:  gateway,
		Settings: settings,
		Recorder: recorder,
		Logger:   logger,
	}
}

// Execute valida o plano, monta a sessão de assinatura e chama o gateway
// uma única vez. Nada é persistido.
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, input CreateCheckoutInput) (*CreateCheckoutOutput, error) {
	plan, err := uc.Plans.Lookup(input.PlanType)
	if err != nil {
		uc.record(input.PlanType, OutcomeInvalidPlan)
		return nil, &DomainError{
			Code:    CodeInvalidPlan,
			Message: "Plano inválido",
		}
	}

	sessionInput, err := uc.buildSession(plan, input)
	if err != nil {
		uc.record(plan.Key, OutcomeConfigurationError)
		uc.Logger.ErrorContext(ctx, "checkout sem configuração", "plan", plan.Key, "reason", err.Error())
		return nil, &TechnicalError{
			Code:    CodeConfigurationError,
			Message: "Pagamento indisponível: configuração incompleta",
			Type:    OutcomeConfigurationError,
			Err:     err,
		}
	}

	session, err := uc.Gateway.CreateCheckoutSession(ctx, sessionInput)
	if err != nil {
		var gwErr *stripe.GatewayError
		if !errors.As(err, &gwErr) {
			gwErr = &stripe.GatewayError{Message: err.Error(), Type: stripe.ErrorTypeConnection}
		}

		uc.record(plan.Key, OutcomeGatewayError)
		if uc.Recorder != nil {
			uc.Recorder.RecordGatewayError(gwErr.Type)
		}
		uc.Logger.ErrorContext(ctx, "erro ao criar checkout",
			"plan", plan.Key,
			"error_type", gwErr.Type,
			"status", gwErr.StatusCode,
			"error", gwErr.Message,
		)
		return nil, &TechnicalError{
			Code:    CodeGatewayError,
			Message: gwErr.Message,
			Type:    gwErr.Type,
			Err:     err,
		}
	}

	uc.record(plan.Key, OutcomeSuccess)
	uc.Logger.InfoContext(ctx, "checkout criado", "plan", plan.Key, "plan_name", plan.DisplayName, "session_id", session.ID)

	return &CreateCheckoutOutput{URL: session.URL}, nil
}

func (uc *CreateCheckoutUseCase) buildSession(plan *entity.Plan, input CreateCheckoutInput) (stripe.CheckoutSessionInput, error) {
	if uc.Gateway == nil {
		return stripe.CheckoutSessionInput{}, errors.New("gateway credential missing")
	}
	if plan.RecurringPriceRef == "" {
		return stripe.CheckoutSessionInput{}, errors.New("recurring price missing")
	}
	if plan.SetupPriceRef == "" {
		return stripe.CheckoutSessionInput{}, errors.New("setup price missing")
	}
	if uc.Settings.SuccessURL == "" {
		return stripe.CheckoutSessionInput{}, errors.New("success url missing")
	}
	cancelURL := uc.Settings.resolveCancelURL(input.Origin)
	if cancelURL == "" {
		return stripe.CheckoutSessionInput{}, errors.New("cancel url missing")
	}

	return stripe.CheckoutSessionInput{
		LineItems: []stripe.LineItem{
			{PriceID: plan.RecurringPriceRef, Quantity: 1},
			{PriceID: plan.SetupPriceRef, Quantity: 1},
		},
		SuccessURL:    successURL(uc.Settings.SuccessURL),
		CancelURL:     cancelURL,
		Locale:        CheckoutLocale,
		CustomerEmail: strings.TrimSpace(input.Email),
	}, nil
}

func (uc *CreateCheckoutUseCase) record(plan, outcome string) {
	if uc.Recorder == nil {
		return
	}
	// Chaves inválidas viram um único label para não explodir a cardinalidade.
	if outcome == OutcomeInvalidPlan {
		plan = "unknown"
	}
	uc.Recorder.RecordCheckout(plan, outcome)
}

func successURL(base string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "session_id=" + sessionIDPlaceholder
}

// resolveCancelURL: CANCEL_URL explícito, senão a origem de quem chamou,
// senão o padrão configurado.
func (s CheckoutSettings) resolveCancelURL(origin string) string {
	if s.CancelURL != "" {
		return s.CancelURL
	}
	if o := normalizeOrigin(origin); o != "" {
		return o + pricingAnchor
	}
	return s.DefaultCancelURL
}

func normalizeOrigin(origin string) string {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return ""
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
