package storage

import (
	"context"
	"fmt"

	"github.com/harperdean/scrip/internal/model"
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	return ctx.Err()
}

func validateString(value, name string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil")
	}
	if txn.ID == "" {
		return fmt.Errorf("transaction ID cannot be empty")
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("transaction date cannot be zero")
	}
	return nil
}

func validateBudget(budget *model.Budget) error {
	if budget == nil {
		return fmt.Errorf("budget cannot be nil")
	}
	if budget.CategoryID <= 0 {
		return fmt.Errorf("budget category ID must be positive")
	}
	if budget.Amount <= 0 {
		return fmt.Errorf("budget amount must be positive")
	}
	if !budget.Period.Valid() {
		return fmt.Errorf("invalid budget period %q", budget.Period)
	}
	return nil
}
