package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperdean/scrip/internal/model"
)

// SaveBudget inserts a budget, or updates the active budget for the same
// category.
func (s *SQLiteStorage) SaveBudget(ctx context.Context, budget *model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	existing, err := s.GetBudgetForCategory(ctx, budget.CategoryID)
	if err != nil {
		return err
	}

	if existing != nil {
		_, err = s.db.ExecContext(ctx, `
			UPDATE budgets
			SET amount = ?, period = ?, start_date = ?, is_active = ?
			WHERE id = ?`,
			budget.Amount, budget.Period, budget.StartDate, budget.IsActive, existing.ID)
		if err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}
		budget.ID = existing.ID
		return nil
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category_id, amount, period, start_date, is_active)
		VALUES (?, ?, ?, ?, ?)`,
		budget.CategoryID, budget.Amount, budget.Period, budget.StartDate, budget.IsActive)
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get budget ID: %w", err)
	}
	budget.ID = int(id)
	return nil
}

// GetBudgets returns all active budgets.
func (s *SQLiteStorage) GetBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, amount, period, start_date, is_active, created_at
		FROM budgets
		WHERE is_active = 1
		ORDER BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []model.Budget
	for rows.Next() {
		var b model.Budget
		if err := rows.Scan(&b.ID, &b.CategoryID, &b.Amount, &b.Period,
			&b.StartDate, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating budgets: %w", err)
	}

	return budgets, nil
}

// GetBudgetForCategory returns the active budget for a category, or nil.
func (s *SQLiteStorage) GetBudgetForCategory(ctx context.Context, categoryID int) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var b model.Budget
	err := s.db.QueryRowContext(ctx, `
		SELECT id, category_id, amount, period, start_date, is_active, created_at
		FROM budgets
		WHERE category_id = ? AND is_active = 1`, categoryID).
		Scan(&b.ID, &b.CategoryID, &b.Amount, &b.Period,
			&b.StartDate, &b.IsActive, &b.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget: %w", err)
	}
	return &b, nil
}
