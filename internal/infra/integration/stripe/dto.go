package stripe

// CheckoutSessionInput é o pedido já validado pelo use case. Quantidade é
// sempre 1 por item; a ordem dos itens é preservada.
type CheckoutSessionInput struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	Locale        string
	CustomerEmail string // vazio = não enviado
}

type LineItem struct {
	PriceID  string
	Quantity int64
}

type CheckoutSessionOutput struct {
	ID  string
	URL string
}
