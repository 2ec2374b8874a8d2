package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JamesBarr456/tienda-api/models"
	"github.com/JamesBarr456/tienda-api/shipping"
)

// Orders are handed off as a pre-filled WhatsApp message to the store's
// fixed number.
const storeWhatsAppNumber = "5493794405430"

// Summary renders the complete order text sent to the store: customer
// data, shipping choice, cart lines and the payable total. The output
// is deterministic for a given form and cart snapshot.
func Summary(form FormData, cart models.Cart) (string, error) {
	quote, err := ComputeQuote(form, cart)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("🛒 *NUEVO ORDEN DE PEDIDO*\n\n")

	b.WriteString("👤 *Datos del Cliente:*\n")
	fmt.Fprintf(&b, "Nombre: %s %s\n", form.FirstName, form.LastName)
	fmt.Fprintf(&b, "Teléfono: +%s %s\n", form.Phone.AreaCode, form.Phone.Number)
	fmt.Fprintf(&b, "Email: %s\n\n", form.Email)

	b.WriteString("📦 *Datos de Envío:*\n")
	if form.DeliveryOption == DeliveryPickup {
		b.WriteString("Opción: Retiro en local\n")
	} else {
		b.WriteString("Opción: Envío a domicilio\n")
		fmt.Fprintf(&b, "Dirección: %s\n", form.Address)
		if form.Locality != "" && form.ShippingType != "" {
			info, err := shipping.Info(form.Locality)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "Localidad: %s\n", info.Name)
			fmt.Fprintf(&b, "Tipo de envío: %s\n", quote.ShippingLabel)
			fmt.Fprintf(&b, "Costo de envío: $%s\n", quote.ShippingRate.StringFixed(0))
		}
	}

	b.WriteString("\n💳 *Método de Pago:*\n")
	if form.PaymentMethod == PaymentCash {
		b.WriteString("Efectivo\n\n")
	} else {
		b.WriteString("Transferencia (+5%)\n\n")
	}

	b.WriteString("🛍️ *Productos del Carrito:*\n")
	for i, item := range cart.Items {
		fmt.Fprintf(&b, "%d. %s - Cantidad: %d - $%s\n",
			i+1, item.Name, item.Quantity, item.UnitPrice.StringFixed(0))
	}

	fmt.Fprintf(&b, "\n💰 *Total: $%s*", quote.Total.StringFixed(2))

	return b.String(), nil
}

// WhatsAppURL builds the wa.me link that opens the chat with the order
// text pre-filled.
func WhatsAppURL(message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", storeWhatsAppNumber, url.QueryEscape(message))
}
