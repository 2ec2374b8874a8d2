package checkout

import (
	"testing"

	"github.com/JamesBarr456/tienda-api/models"
	"github.com/shopspring/decimal"
)

func cartWithTotal(total int64) models.Cart {
	return models.Cart{
		ID:          "cart-1",
		UserID:      "user-001",
		Status:      models.CartStatusActive,
		TotalAmount: decimal.NewFromInt(total),
	}
}

func TestTransferSurcharge(t *testing.T) {
	form := validForm()
	form.PaymentMethod = PaymentTransfer

	quote, err := ComputeQuote(form, cartWithTotal(1000))
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}

	if got := quote.Total.StringFixed(2); got != "1050.00" {
		t.Errorf("expected total 1050.00, got %s", got)
	}
	if got := quote.Surcharge.StringFixed(2); got != "50.00" {
		t.Errorf("expected surcharge 50.00, got %s", got)
	}
}

func TestCashHasNoSurcharge(t *testing.T) {
	form := validForm()
	form.PaymentMethod = PaymentCash

	quote, err := ComputeQuote(form, cartWithTotal(1000))
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}

	if got := quote.Total.StringFixed(2); got != "1000.00" {
		t.Errorf("expected total 1000.00, got %s", got)
	}
	if !quote.Surcharge.IsZero() {
		t.Errorf("expected zero surcharge, got %s", quote.Surcharge)
	}
}

func TestShippingRateIsInformationalOnly(t *testing.T) {
	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Address = "Av. Siempre Viva 742"
	form.Locality = "corrientes-capital"
	form.ShippingType = "standard"

	quote, err := ComputeQuote(form, cartWithTotal(1000))
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}

	if got := quote.ShippingRate.StringFixed(0); got != "2000" {
		t.Errorf("expected shipping rate 2000, got %s", got)
	}
	if quote.ShippingLabel != "Minimo" {
		t.Errorf("expected shipping label Minimo, got %q", quote.ShippingLabel)
	}
	// The rate is displayed but never added to the payable total.
	if got := quote.Total.StringFixed(2); got != "1000.00" {
		t.Errorf("expected total 1000.00, got %s", got)
	}
}

func TestQuoteUnknownLocality(t *testing.T) {
	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Locality = "narnia"
	form.ShippingType = "standard"

	if _, err := ComputeQuote(form, cartWithTotal(1000)); err == nil {
		t.Error("expected error for unknown locality")
	}
}
