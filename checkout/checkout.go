// Package checkout implements the multi-step checkout flow: field and
// cross-field form validation, the step wizard, derived totals, and the
// order handoff.
package checkout

import (
	"github.com/JamesBarr456/tienda-api/errs"
	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/services"
)

// Notifier delivers a rendered order summary through an external
// channel.
type Notifier interface {
	NotifyOrder(userID, message string) error
}

// Confirmation is returned to the customer after a successful submit.
type Confirmation struct {
	OrderText   string      `json:"order_text"`
	WhatsAppURL string      `json:"whatsapp_url"`
	Quote       Quote       `json:"quote"`
	Cart        models.Cart `json:"cart"`
}

// Service drives checkout submission over the cart service. The cart
// service handle and the user id come in explicitly; nothing is read
// from ambient state.
type Service struct {
	carts    *services.CartService
	notifier Notifier
}

func NewService(carts *services.CartService, notifier Notifier) *Service {
	return &Service{carts: carts, notifier: notifier}
}

// Submit validates the form against the wizard position, snapshots the
// cart, renders the order summary, hands it off, and marks the cart
// completed. An empty cart cannot be submitted.
func (s *Service) Submit(userID string, wizard *Wizard, form FormData) (Confirmation, error) {
	if err := wizard.checkSubmit(form); err != nil {
		return Confirmation{}, err
	}

	cart, err := s.carts.GetActiveCart(userID)
	if err != nil {
		return Confirmation{}, err
	}
	if len(cart.Items) == 0 {
		return Confirmation{}, errs.Invalid("cart", "cart is empty")
	}

	quote, err := ComputeQuote(form, cart)
	if err != nil {
		return Confirmation{}, err
	}
	text, err := Summary(form, cart)
	if err != nil {
		return Confirmation{}, err
	}

	if err := s.notifier.NotifyOrder(userID, text); err != nil {
		return Confirmation{}, err
	}

	if err := s.carts.CompleteCart(userID); err != nil {
		return Confirmation{}, err
	}

	return Confirmation{
		OrderText:   text,
		WhatsAppURL: WhatsAppURL(text),
		Quote:       quote,
		Cart:        cart,
	}, nil
}
