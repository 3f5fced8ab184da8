package domain

import "errors"

var (
	ErrInvalidTenure     = errors.New("tenure must be 1, 2 or 3 years")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidScore      = errors.New("credit score must be between 300 and 900")
	ErrInvalidMaxLoan    = errors.New("max loan allowed must not be negative")
	ErrInvalidPreference = errors.New("unknown tenure preference")
	ErrNoTenureFits      = errors.New("no tenure keeps the EMI within the requested maximum")
	ErrNonFiniteOffer    = errors.New("offer has a non-finite installment")
	ErrSanctionNotFound  = errors.New("sanction not found")
)

// ValidationError reports which input field was rejected.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
