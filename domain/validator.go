package domain

import "github.com/shopspring/decimal"

// Validators are stateless and side-effect-free so they can be used
// outside the service layer, e.g. directly in tests.

// ValidateAmount checks that value is strictly positive.
func ValidateAmount(value decimal.Decimal) error {
	if !value.IsPositive() {
		return &InvalidAmountError{Amount: value}
	}
	return nil
}

// ValidateLoanAmount checks that value is within the inclusive
// [min, max] bounds.
func ValidateLoanAmount(value, min, max decimal.Decimal) error {
	if value.LessThan(min) || value.GreaterThan(max) {
		return &InvalidLoanAmountError{Amount: value, Min: min, Max: max}
	}
	return nil
}

// ValidateInterestRate checks that value is within [0, max].
func ValidateInterestRate(value, max decimal.Decimal) error {
	if value.IsNegative() || value.GreaterThan(max) {
		return &InvalidInterestRateError{Rate: value, Max: max}
	}
	return nil
}

// ValidateRepayment checks that amount does not exceed the
// outstanding debt it is applied against.
func ValidateRepayment(amount, outstanding decimal.Decimal) error {
	if amount.GreaterThan(outstanding) {
		return &OverpaymentError{Amount: amount, Outstanding: outstanding}
	}
	return nil
}
