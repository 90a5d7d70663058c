package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/harperdean/scrip/internal/model"
)

// GetCategories returns all active categories in insertion order. The
// order matters: it is the tie-break order the classifier uses.
func (s *SQLiteStorage) GetCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, color, keywords, is_active, created_at
		FROM categories
		WHERE is_active = 1
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategoryByName returns a category by its name, or nil if not found.
func (s *SQLiteStorage) GetCategoryByName(ctx context.Context, name string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, icon, color, keywords, is_active, created_at
		FROM categories
		WHERE name = ? AND is_active = 1`, name)

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return cat, nil
}

// GetCategoryByID returns a category by ID, or nil if not found.
func (s *SQLiteStorage) GetCategoryByID(ctx context.Context, id int) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, icon, color, keywords, is_active, created_at
		FROM categories
		WHERE id = ?`, id)

	cat, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query category: %w", err)
	}
	return cat, nil
}

// CreateCategory creates a new category with its keyword list.
func (s *SQLiteStorage) CreateCategory(ctx context.Context, name, icon, color string, keywords []string) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, icon, color, keywords)
		VALUES (?, ?, ?, ?)`,
		name, icon, color, string(keywordsJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get category ID: %w", err)
	}

	return s.GetCategoryByID(ctx, int(id))
}

// UpdateCategoryKeywords replaces a category's keyword list.
func (s *SQLiteStorage) UpdateCategoryKeywords(ctx context.Context, id int, keywords []string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return fmt.Errorf("failed to marshal keywords: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET keywords = ? WHERE id = ?`,
		string(keywordsJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update category keywords: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("category %d not found", id)
	}
	return nil
}

// DeleteCategory soft-deletes a category so historical transactions keep
// a resolvable reference.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("category %d not found", id)
	}
	return nil
}

func scanCategory(row rowScanner) (*model.Category, error) {
	var (
		cat          model.Category
		keywordsJSON string
	)

	err := row.Scan(&cat.ID, &cat.Name, &cat.Icon, &cat.Color,
		&keywordsJSON, &cat.IsActive, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}

	if keywordsJSON != "" {
		if err := json.Unmarshal([]byte(keywordsJSON), &cat.Keywords); err != nil {
			return nil, fmt.Errorf("failed to unmarshal keywords: %w", err)
		}
	}

	return &cat, nil
}
