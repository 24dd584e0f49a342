package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoan(t *testing.T) {
	loan, err := NewLoan(dec("1000"), dec("0.10"), DefaultLimits())
	require.NoError(t, err)

	assert.NotEqual(t, "", loan.ID.String())
	assert.True(t, loan.Principal.Equal(dec("1000")))
	assert.True(t, loan.InterestRate.Equal(dec("0.10")))
	assert.True(t, loan.AmountRepaid.IsZero())
	assert.True(t, loan.TotalOwed().Equal(dec("1100")))
	assert.True(t, loan.OutstandingDebt().Equal(dec("1100")))
}

func TestNewLoanZeroRate(t *testing.T) {
	loan, err := NewLoan(dec("500"), dec("0"), DefaultLimits())
	require.NoError(t, err)
	assert.True(t, loan.OutstandingDebt().Equal(dec("500")))
}

func TestNewLoanValidation(t *testing.T) {
	testCases := []struct {
		name      string
		principal string
		rate      string
		wantErr   error
	}{
		{"zero principal", "0", "0.05", &InvalidAmountError{}},
		{"negative principal", "-100", "0.05", &InvalidAmountError{}},
		{"below minimum", "99", "0.05", &InvalidLoanAmountError{}},
		{"above maximum", "1000001", "0.05", &InvalidLoanAmountError{}},
		{"negative rate", "1000", "-0.01", &InvalidInterestRateError{}},
		{"rate above ceiling", "1000", "1.5", &InvalidInterestRateError{}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			loan, err := NewLoan(dec(tt.principal), dec(tt.rate), DefaultLimits())
			assert.Nil(t, loan)
			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
		})
	}
}

func TestNewLoanBounds(t *testing.T) {
	limits := DefaultLimits()

	// Exact bounds are accepted.
	for _, amount := range []string{"100", "1000000"} {
		_, err := NewLoan(dec(amount), dec("0"), limits)
		assert.NoError(t, err, "principal %s", amount)
	}
	// An epsilon outside either bound is rejected.
	for _, amount := range []string{"99.99", "1000000.01"} {
		_, err := NewLoan(dec(amount), dec("0"), limits)
		var invalidLoan *InvalidLoanAmountError
		assert.ErrorAs(t, err, &invalidLoan, "principal %s", amount)
	}
}

func TestApplyRepayment(t *testing.T) {
	loan, err := NewLoan(dec("1000"), dec("0.10"), DefaultLimits())
	require.NoError(t, err)

	remaining, err := loan.ApplyRepayment(dec("400"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("700")))
	assert.True(t, loan.AmountRepaid.Equal(dec("400")))

	// Repayments accumulate, no double counting.
	remaining, err = loan.ApplyRepayment(dec("300"))
	require.NoError(t, err)
	assert.True(t, remaining.Equal(dec("400")))
	assert.True(t, loan.AmountRepaid.Equal(dec("700")))
}

func TestApplyRepaymentExactPayoff(t *testing.T) {
	loan, err := NewLoan(dec("1000"), dec("0.10"), DefaultLimits())
	require.NoError(t, err)

	remaining, err := loan.ApplyRepayment(dec("1100"))
	require.NoError(t, err)
	assert.True(t, remaining.IsZero())
	assert.True(t, loan.OutstandingDebt().IsZero())
}

func TestApplyRepaymentOverpayment(t *testing.T) {
	loan, err := NewLoan(dec("1000"), dec("0.10"), DefaultLimits())
	require.NoError(t, err)

	_, err = loan.ApplyRepayment(dec("400"))
	require.NoError(t, err)

	_, err = loan.ApplyRepayment(dec("800"))
	var overpayment *OverpaymentError
	require.ErrorAs(t, err, &overpayment)
	assert.True(t, overpayment.Outstanding.Equal(dec("700")))

	// Failed repayment must not mutate the loan.
	assert.True(t, loan.OutstandingDebt().Equal(dec("700")))
	assert.True(t, loan.AmountRepaid.Equal(dec("400")))
}

func TestApplyRepaymentInvalidAmount(t *testing.T) {
	loan, err := NewLoan(dec("1000"), dec("0"), DefaultLimits())
	require.NoError(t, err)

	for _, amount := range []string{"0", "-50"} {
		_, err := loan.ApplyRepayment(dec(amount))
		var invalidAmount *InvalidAmountError
		assert.ErrorAs(t, err, &invalidAmount, "amount %s", amount)
		assert.True(t, loan.AmountRepaid.IsZero())
	}
}
