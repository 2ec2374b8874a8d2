package checkout

import (
	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/shipping"
	"github.com/shopspring/decimal"
)

// Bank transfers carry a 5% surcharge on the cart total.
var transferSurchargeRate = decimal.New(5, -2)

// Quote is the derived checkout total. The shipping rate is shown to
// the customer but never folded into Total; the courier collects it
// separately on delivery.
type Quote struct {
	Base          decimal.Decimal `json:"base"`
	Surcharge     decimal.Decimal `json:"surcharge"`
	Total         decimal.Decimal `json:"total"`
	ShippingLabel string          `json:"shipping_label,omitempty"`
	ShippingRate  decimal.Decimal `json:"shipping_rate"`
}

// ComputeQuote derives the payable total from the form and a cart
// snapshot: base amount, plus the transfer surcharge when applicable.
func ComputeQuote(form FormData, cart models.Cart) (Quote, error) {
	base := cart.TotalAmount

	surcharge := decimal.Zero
	if form.PaymentMethod == PaymentTransfer {
		surcharge = base.Mul(transferSurchargeRate)
	}

	quote := Quote{
		Base:         base,
		Surcharge:    surcharge,
		Total:        base.Add(surcharge),
		ShippingRate: decimal.Zero,
	}

	if form.DeliveryOption == DeliveryDelivery && form.Locality != "" && form.ShippingType != "" {
		opt, err := shipping.OptionFor(form.Locality, form.ShippingType)
		if err != nil {
			return Quote{}, err
		}
		quote.ShippingLabel = opt.Name
		quote.ShippingRate = opt.Rate
	}

	return quote, nil
}
