package checkout

import (
	"reflect"
	"strings"

	"github.com/JamesBarr456/tienda-api/shipping"
	"github.com/go-playground/validator/v10"
)

type DeliveryOption string

const (
	DeliveryPickup   DeliveryOption = "pickup"
	DeliveryDelivery DeliveryOption = "delivery"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

type PhoneInput struct {
	AreaCode string `json:"area_code" validate:"required,number,min=2,max=4"`
	Number   string `json:"number" validate:"required,number,min=6,max=10"`
}

// FormData is the full checkout form. Field rules are evaluated on
// every call for every field, regardless of which wizard step is
// visible. Locality and shipping type are required only under home
// delivery; that rule reports on the locality field.
type FormData struct {
	FirstName      string         `json:"first_name" validate:"required,min=2"`
	LastName       string         `json:"last_name" validate:"required,min=2"`
	Phone          PhoneInput     `json:"phone"`
	Email          string         `json:"email" validate:"required,email"`
	Address        string         `json:"address" validate:"omitempty,min=5"`
	DeliveryOption DeliveryOption `json:"delivery_option" validate:"required,oneof=pickup delivery"`
	Locality       string         `json:"locality" validate:"-"`
	ShippingType   shipping.Tier  `json:"shipping_type" validate:"omitempty,oneof=standard express"`
	PaymentMethod  PaymentMethod  `json:"payment_method" validate:"required,oneof=cash transfer"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(deliveryRules, FormData{})
	return v
}

// deliveryRules holds the cross-field requirements that depend on the
// chosen delivery option.
func deliveryRules(sl validator.StructLevel) {
	form := sl.Current().Interface().(FormData)

	if form.Locality != "" {
		if _, err := shipping.Info(form.Locality); err != nil {
			sl.ReportError(form.Locality, "locality", "Locality", "known_locality", "")
		}
	}

	if form.DeliveryOption != DeliveryDelivery {
		return
	}
	if form.Locality == "" || form.ShippingType == "" {
		sl.ReportError(form.Locality, "locality", "Locality", "required_for_delivery", "")
	}
	if form.Address == "" {
		sl.ReportError(form.Address, "address", "Address", "required", "")
	}
}

// Validate runs every field and cross-field rule and returns one entry
// per violated rule. An empty slice means the form can be submitted.
func Validate(form FormData) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "form", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "FormData.")
		out = append(out, FieldError{Field: field, Message: message(field, fe.Tag())})
	}
	return out
}

func message(field, tag string) string {
	switch field {
	case "first_name":
		return "First Name is required"
	case "last_name":
		return "Last Name is required"
	case "phone.area_code":
		switch tag {
		case "min":
			return "Code must be at least 2 digits"
		case "max":
			return "Code can't exceed 4 digits"
		case "number":
			return "Code must contain only numbers"
		}
		return "Code is required"
	case "phone.number":
		switch tag {
		case "min":
			return "Number must be at least 6 digits"
		case "max":
			return "Number can't exceed 10 digits"
		case "number":
			return "Phone number must contain only numbers"
		}
		return "Number is required"
	case "email":
		return "Invalid email"
	case "address":
		return "Address is required"
	case "delivery_option":
		return "Please select a delivery option"
	case "locality":
		if tag == "known_locality" {
			return "Unknown locality"
		}
		return "Locality and shipping type are required for delivery"
	case "shipping_type":
		return "Shipping type is required"
	case "payment_method":
		return "Please select a payment method"
	}
	return "Invalid value"
}
