package checkout

import (
	"errors"
	"testing"
)

func TestWizardStartsAtPersonal(t *testing.T) {
	w := NewWizard()
	if w.Step() != StepPersonal {
		t.Errorf("expected personal, got %q", w.Step())
	}
}

func TestWizardWalksStepsInOrder(t *testing.T) {
	w := NewWizard()

	if got := w.Next(); got != StepShipping {
		t.Errorf("expected shipping, got %q", got)
	}
	if got := w.Next(); got != StepPayment {
		t.Errorf("expected payment, got %q", got)
	}
	// No step past payment.
	if got := w.Next(); got != StepPayment {
		t.Errorf("expected to stay at payment, got %q", got)
	}

	if got := w.Prev(); got != StepShipping {
		t.Errorf("expected shipping, got %q", got)
	}
	if got := w.Prev(); got != StepPersonal {
		t.Errorf("expected personal, got %q", got)
	}
	// No step before personal.
	if got := w.Prev(); got != StepPersonal {
		t.Errorf("expected to stay at personal, got %q", got)
	}
}

func TestCanSubmitOnlyFromPaymentStep(t *testing.T) {
	form := validForm()

	w := NewWizard()
	if w.CanSubmit(form) {
		t.Error("submit must be disabled at the personal step")
	}
	w.Next()
	if w.CanSubmit(form) {
		t.Error("submit must be disabled at the shipping step")
	}
	w.Next()
	if !w.CanSubmit(form) {
		t.Error("submit must be enabled at the payment step with a valid form")
	}

	invalid := form
	invalid.Email = "nope"
	if w.CanSubmit(invalid) {
		t.Error("submit must be disabled with an invalid form")
	}
}

func TestCheckSubmitReportsFieldErrors(t *testing.T) {
	w, err := WizardAt(StepPayment)
	if err != nil {
		t.Fatalf("WizardAt: %v", err)
	}

	form := validForm()
	form.DeliveryOption = DeliveryDelivery
	form.Address = "Av. Siempre Viva 742"

	err = w.checkSubmit(form)
	var formErr *FormInvalidError
	if !errors.As(err, &formErr) {
		t.Fatalf("expected FormInvalidError, got %v", err)
	}
	if !hasFieldError(formErr.Fields, "locality") {
		t.Errorf("expected locality error, got %v", formErr.Fields)
	}
}

func TestWizardAtUnknownStep(t *testing.T) {
	if _, err := WizardAt("review"); err == nil {
		t.Error("expected error for unknown step")
	}
}
