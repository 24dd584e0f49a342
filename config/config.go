package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/muniu/numibank/domain"
)

// Config holds application configuration.
//
// Defaults: MIN_LOAN_AMOUNT=100, MAX_LOAN_AMOUNT=1000000,
// MAX_INTEREST_RATE=1.0 (100% flat), REDIS_ADDR="" (in-process
// cache), LOG_LEVEL=info.
type Config struct {
	RedisAddr string
	LogLevel  string
	Limits    domain.Limits
}

// NewConfig loads configuration from environment variables, falling
// back to the documented defaults.
func NewConfig() (*Config, error) {
	limits := domain.DefaultLimits()

	var err error
	if limits.MinLoanAmount, err = getDecimalEnv("MIN_LOAN_AMOUNT", limits.MinLoanAmount); err != nil {
		return nil, err
	}
	if limits.MaxLoanAmount, err = getDecimalEnv("MAX_LOAN_AMOUNT", limits.MaxLoanAmount); err != nil {
		return nil, err
	}
	if limits.MaxInterestRate, err = getDecimalEnv("MAX_INTEREST_RATE", limits.MaxInterestRate); err != nil {
		return nil, err
	}

	if limits.MinLoanAmount.GreaterThan(limits.MaxLoanAmount) {
		return nil, fmt.Errorf("MIN_LOAN_AMOUNT %s exceeds MAX_LOAN_AMOUNT %s",
			limits.MinLoanAmount, limits.MaxLoanAmount)
	}

	return &Config{
		RedisAddr: getEnv("REDIS_ADDR", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		Limits:    limits,
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getDecimalEnv(key string, defaultVal decimal.Decimal) (decimal.Decimal, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return parsed, nil
}
