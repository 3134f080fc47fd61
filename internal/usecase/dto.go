package usecase

type CreateCheckoutInput struct {
	PlanType string `json:"planType"`
	Email    string `json:"email,omitempty"`

	// Origin vem do header da requisição, não do corpo.
	Origin string `json:"-"`
}

type CreateCheckoutOutput struct {
	URL string `json:"url"`
}
