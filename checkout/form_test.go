package checkout

import "testing"

func validForm() FormData {
	return FormData{
		FirstName:      "Maria",
		LastName:       "Gonzalez",
		Phone:          PhoneInput{AreaCode: "379", Number: "4701723"},
		Email:          "maria@example.com",
		DeliveryOption: DeliveryPickup,
		PaymentMethod:  PaymentCash,
	}
}

func hasFieldError(errs []FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidPickupForm(t *testing.T) {
	if errs := Validate(validForm()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestDeliveryRequiresLocalityAndShippingType(t *testing.T) {
	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Address = "Av. Siempre Viva 742"

	fieldErrs := Validate(form)
	if !hasFieldError(fieldErrs, "locality") {
		t.Errorf("expected error on locality field, got %v", fieldErrs)
	}
	if hasFieldError(fieldErrs, "shipping_type") {
		t.Errorf("cross-field error must attach to locality, not shipping_type: %v", fieldErrs)
	}

	// Locality alone is still not enough.
	form.Locality = "corrientes-capital"
	fieldErrs = Validate(form)
	if !hasFieldError(fieldErrs, "locality") {
		t.Errorf("expected error while shipping type missing, got %v", fieldErrs)
	}

	form.ShippingType = "standard"
	if fieldErrs := Validate(form); len(fieldErrs) != 0 {
		t.Errorf("expected valid delivery form, got %v", fieldErrs)
	}
}

func TestPickupIgnoresLocality(t *testing.T) {
	form := validForm()
	form.Locality = ""
	form.ShippingType = ""

	if fieldErrs := Validate(form); len(fieldErrs) != 0 {
		t.Errorf("pickup form must be valid without locality, got %v", fieldErrs)
	}
}

func TestDeliveryRequiresAddress(t *testing.T) {
	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Locality = "empedrado"
	form.ShippingType = "express"
	form.Address = ""

	fieldErrs := Validate(form)
	if !hasFieldError(fieldErrs, "address") {
		t.Errorf("expected error on address field, got %v", fieldErrs)
	}
}

func TestUnknownLocalityIsRejected(t *testing.T) {
	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Address = "Av. Siempre Viva 742"
	form.Locality = "narnia"
	form.ShippingType = "standard"

	fieldErrs := Validate(form)
	if !hasFieldError(fieldErrs, "locality") {
		t.Errorf("expected error on locality field, got %v", fieldErrs)
	}
}

func TestPhoneValidation(t *testing.T) {
	tests := []struct {
		name      string
		areaCode  string
		number    string
		wantField string // "" = valid
	}{
		{"both in range", "37", "470172", ""},
		{"area code too short", "3", "470172", "phone.area_code"},
		{"area code too long", "54379", "470172", "phone.area_code"},
		{"area code not numeric", "3a", "470172", "phone.area_code"},
		{"number too short", "379", "12345", "phone.number"},
		{"number too long", "379", "12345678901", "phone.number"},
		{"number not numeric", "379", "47017ab", "phone.number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			form.Phone = PhoneInput{AreaCode: tc.areaCode, Number: tc.number}

			fieldErrs := Validate(form)
			if tc.wantField == "" {
				if len(fieldErrs) != 0 {
					t.Fatalf("expected valid phone, got %v", fieldErrs)
				}
				return
			}
			if !hasFieldError(fieldErrs, tc.wantField) {
				t.Errorf("expected error on %s, got %v", tc.wantField, fieldErrs)
			}
		})
	}
}

func TestPersonalFieldRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*FormData)
		wantField string
	}{
		{"first name too short", func(f *FormData) { f.FirstName = "M" }, "first_name"},
		{"last name missing", func(f *FormData) { f.LastName = "" }, "last_name"},
		{"bad email", func(f *FormData) { f.Email = "not-an-email" }, "email"},
		{"missing delivery option", func(f *FormData) { f.DeliveryOption = "" }, "delivery_option"},
		{"missing payment method", func(f *FormData) { f.PaymentMethod = "" }, "payment_method"},
		{"bogus payment method", func(f *FormData) { f.PaymentMethod = "card" }, "payment_method"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			fieldErrs := Validate(form)
			if !hasFieldError(fieldErrs, tc.wantField) {
				t.Errorf("expected error on %s, got %v", tc.wantField, fieldErrs)
			}
		})
	}
}
