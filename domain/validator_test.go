package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateAmount(t *testing.T) {
	testCases := []struct {
		amount  string
		wantErr bool
	}{
		{"0.01", false},
		{"100", false},
		{"0", true},
		{"-1", true},
		{"-0.01", true},
	}

	for _, tt := range testCases {
		err := ValidateAmount(dec(tt.amount))
		if tt.wantErr {
			var invalidAmount *InvalidAmountError
			require.ErrorAs(t, err, &invalidAmount, "amount %s", tt.amount)
			assert.True(t, invalidAmount.Amount.Equal(dec(tt.amount)))
		} else {
			assert.NoError(t, err, "amount %s", tt.amount)
		}
	}
}

func TestValidateLoanAmount(t *testing.T) {
	min, max := dec("100"), dec("1000000")

	testCases := []struct {
		amount  string
		wantErr bool
	}{
		{"100", false},     // lower bound inclusive
		{"1000000", false}, // upper bound inclusive
		{"500", false},
		{"99.99", true},
		{"1000000.01", true},
		{"0", true},
	}

	for _, tt := range testCases {
		err := ValidateLoanAmount(dec(tt.amount), min, max)
		if tt.wantErr {
			var invalidLoan *InvalidLoanAmountError
			require.ErrorAs(t, err, &invalidLoan, "amount %s", tt.amount)
			assert.True(t, invalidLoan.Min.Equal(min))
			assert.True(t, invalidLoan.Max.Equal(max))
		} else {
			assert.NoError(t, err, "amount %s", tt.amount)
		}
	}
}

func TestValidateInterestRate(t *testing.T) {
	max := dec("1.0")

	testCases := []struct {
		rate    string
		wantErr bool
	}{
		{"0", false},
		{"0.05", false},
		{"1.0", false}, // ceiling inclusive
		{"1.01", true},
		{"-0.01", true},
	}

	for _, tt := range testCases {
		err := ValidateInterestRate(dec(tt.rate), max)
		if tt.wantErr {
			var invalidRate *InvalidInterestRateError
			require.ErrorAs(t, err, &invalidRate, "rate %s", tt.rate)
		} else {
			assert.NoError(t, err, "rate %s", tt.rate)
		}
	}
}

func TestValidateRepayment(t *testing.T) {
	outstanding := dec("700")

	testCases := []struct {
		amount  string
		wantErr bool
	}{
		{"1", false},
		{"700", false}, // exact payoff allowed
		{"700.01", true},
		{"9999", true},
	}

	for _, tt := range testCases {
		err := ValidateRepayment(dec(tt.amount), outstanding)
		if tt.wantErr {
			var overpayment *OverpaymentError
			require.ErrorAs(t, err, &overpayment, "amount %s", tt.amount)
			assert.True(t, overpayment.Outstanding.Equal(outstanding))
		} else {
			assert.NoError(t, err, "amount %s", tt.amount)
		}
	}
}
