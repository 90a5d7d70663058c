// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/harperdean/scrip/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID int
	Limit      int
	Offset     int
}

// Storage defines the contract for the persistence layer. The parsing
// and categorization core never touches it; commands load categories
// through it and persist finalized transactions through it.
type Storage interface {
	// Transaction operations
	SaveTransaction(ctx context.Context, txn *model.Transaction) error
	SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error)
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	UpdateTransactionCategory(ctx context.Context, id string, categoryID int) error

	// Category operations
	GetCategories(ctx context.Context) ([]model.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*model.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*model.Category, error)
	CreateCategory(ctx context.Context, name, icon, color string, keywords []string) (*model.Category, error)
	UpdateCategoryKeywords(ctx context.Context, id int, keywords []string) error
	DeleteCategory(ctx context.Context, id int) error

	// Budget operations
	SaveBudget(ctx context.Context, budget *model.Budget) error
	GetBudgets(ctx context.Context) ([]model.Budget, error)
	GetBudgetForCategory(ctx context.Context, categoryID int) (*model.Budget, error)

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for flaky operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
