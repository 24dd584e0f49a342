package main

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/muniu/numibank/config"
	"github.com/muniu/numibank/repository"
	"github.com/muniu/numibank/service"
)

// Demo wiring: registers a customer, grants a loan and walks it
// through repayments. The bank itself is a library; this binary only
// shows how the pieces fit together.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		cache = repository.NewRedisCache(cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
	}

	repo := repository.NewCustomerRepositoryMemory()
	bank := service.NewBankService(repo, cache, logger, cfg.Limits)

	if _, err := bank.CreateCustomer("alice", "Alice Wanjiru"); err != nil {
		logger.Fatalf("Failed to register customer: %v", err)
	}

	loan, err := bank.Lend("alice", decimal.NewFromInt(1000), decimal.NewFromFloat(0.10))
	if err != nil {
		logger.Fatalf("Failed to grant loan: %v", err)
	}

	if _, err := bank.Repay("alice", loan.ID, decimal.NewFromInt(400)); err != nil {
		logger.Fatalf("Failed to process repayment: %v", err)
	}

	info, err := bank.CustomerInfo("alice")
	if err != nil {
		logger.Fatalf("Failed to fetch customer info: %v", err)
	}
	logger.WithFields(logrus.Fields{
		"customer_id":  info.ID,
		"outstanding":  info.TotalOutstandingDebt,
		"total_repaid": info.TotalRepaid,
	}).Info("ledger state")
}
