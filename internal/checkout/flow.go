// Package checkout drives the order flow: a linear step machine over the
// session, customer detail validation, the order summary text, and order
// persistence with best-effort Viber notification.
package checkout

import (
	"errors"
	"fmt"
)

// Step is a stage of the checkout flow.
type Step string

const (
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// ErrInvalidTransition is returned for a step change the flow does not allow.
var ErrInvalidTransition = errors.New("invalid checkout transition")

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	switch s {
	case StepDetails, StepPayment, StepConfirmation:
		return true
	}
	return false
}

// Transition validates a step change. The flow is linear with one exception:
// the buyer may step back from payment to details. Confirmation is terminal.
func Transition(from, to Step) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	switch from {
	case StepDetails:
		if to == StepPayment {
			return nil
		}
	case StepPayment:
		if to == StepConfirmation || to == StepDetails {
			return nil
		}
	case StepConfirmation:
		// No way out. A new order starts a fresh flow.
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
