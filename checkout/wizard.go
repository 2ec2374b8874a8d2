package checkout

import "github.com/JamesBarr456/tienda-api/errs"

type Step string

const (
	StepPersonal Step = "personal"
	StepShipping Step = "shipping"
	StepPayment  Step = "payment"
)

var stepOrder = []Step{StepPersonal, StepShipping, StepPayment}

// Wizard is the linear three step checkout flow. Steps advance one at
// a time; going back is only allowed to the immediately preceding
// step. Submission is gated on being at the payment step with a fully
// valid form.
type Wizard struct {
	index int
}

func NewWizard() *Wizard {
	return &Wizard{}
}

// WizardAt restores a wizard to a known step, for clients that track
// their own position across requests.
func WizardAt(step Step) (*Wizard, error) {
	for i, s := range stepOrder {
		if s == step {
			return &Wizard{index: i}, nil
		}
	}
	return nil, errs.Invalid("step", "unknown checkout step")
}

func (w *Wizard) Step() Step {
	return stepOrder[w.index]
}

// Next advances to the following step. At the payment step it stays
// put; the only way forward from there is Submit.
func (w *Wizard) Next() Step {
	if w.index < len(stepOrder)-1 {
		w.index++
	}
	return w.Step()
}

// Prev moves back to the immediately preceding step.
func (w *Wizard) Prev() Step {
	if w.index > 0 {
		w.index--
	}
	return w.Step()
}

// CanSubmit reports whether the terminal submit action is enabled.
func (w *Wizard) CanSubmit(form FormData) bool {
	return w.Step() == StepPayment && len(Validate(form)) == 0
}

// checkSubmit returns the error that blocks submission, if any.
func (w *Wizard) checkSubmit(form FormData) error {
	if w.Step() != StepPayment {
		return errs.Invalid("step", "submit is only available from the payment step")
	}
	if fieldErrs := Validate(form); len(fieldErrs) > 0 {
		return &FormInvalidError{Fields: fieldErrs}
	}
	return nil
}

// FormInvalidError carries every violated rule of a rejected submit.
type FormInvalidError struct {
	Fields []FieldError
}

func (e *FormInvalidError) Error() string {
	return "checkout form is invalid"
}
