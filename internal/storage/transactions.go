package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/harperdean/scrip/internal/model"
	"github.com/harperdean/scrip/internal/service"
)

// SaveTransaction inserts or replaces a single transaction.
func (s *SQLiteStorage) SaveTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}

	if txn.Hash == "" {
		txn.Hash = txn.GenerateHash()
	}

	tags, err := json.Marshal(txn.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO transactions
			(id, hash, date, merchant, description, amount, category_id, notes, tags, raw_ocr_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.Hash, txn.Date, txn.Merchant, txn.Description,
		txn.Amount, nullableID(txn.CategoryID), txn.Notes, string(tags), txn.RawOCRText,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// SaveTransactions inserts a batch of transactions, skipping any whose
// hash already exists. Returns the number of newly saved rows.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, txns []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions
			(id, hash, date, merchant, description, amount, category_id, notes, tags, raw_ocr_text)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	saved := 0
	for i := range txns {
		txn := &txns[i]
		if err := validateTransaction(txn); err != nil {
			return saved, fmt.Errorf("invalid transaction at index %d: %w", i, err)
		}
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		tags, err := json.Marshal(txn.Tags)
		if err != nil {
			return saved, fmt.Errorf("failed to marshal tags: %w", err)
		}

		res, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.Merchant, txn.Description,
			txn.Amount, nullableID(txn.CategoryID), txn.Notes, string(tags), txn.RawOCRText,
		)
		if err != nil {
			return saved, fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			saved++
		}
	}

	if err := tx.Commit(); err != nil {
		return saved, fmt.Errorf("failed to commit transactions: %w", err)
	}

	slog.Debug("saved transactions", "total", len(txns), "new", saved)
	return saved, nil
}

// GetTransactionByID returns a single transaction, or nil if not found.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, hash, date, merchant, description, amount, category_id, notes, tags, raw_ocr_text, created_at
		FROM transactions
		WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return txn, nil
}

// GetTransactions returns transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, hash, date, merchant, description, amount, category_id, notes, tags, raw_ocr_text, created_at
		FROM transactions
		WHERE 1=1`)

	var args []any
	if filter.StartDate != nil {
		query.WriteString(" AND date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query.WriteString(" AND date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.CategoryID > 0 {
		query.WriteString(" AND category_id = ?")
		args = append(args, filter.CategoryID)
	}
	query.WriteString(" ORDER BY date DESC")
	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query.WriteString(" OFFSET ?")
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return txns, nil
}

// UpdateTransactionCategory reassigns a transaction to a category.
func (s *SQLiteStorage) UpdateTransactionCategory(ctx context.Context, id string, categoryID int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET category_id = ? WHERE id = ?`,
		nullableID(categoryID), id)
	if err != nil {
		return fmt.Errorf("failed to update transaction category: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("transaction %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var (
		txn        model.Transaction
		categoryID sql.NullInt64
		notes      sql.NullString
		tagsJSON   sql.NullString
		rawText    sql.NullString
		desc       sql.NullString
		createdAt  time.Time
	)

	err := row.Scan(&txn.ID, &txn.Hash, &txn.Date, &txn.Merchant, &desc,
		&txn.Amount, &categoryID, &notes, &tagsJSON, &rawText, &createdAt)
	if err != nil {
		return nil, err
	}

	txn.Description = desc.String
	txn.CategoryID = int(categoryID.Int64)
	txn.Notes = notes.String
	txn.RawOCRText = rawText.String
	txn.CreatedAt = createdAt

	if tagsJSON.String != "" {
		if err := json.Unmarshal([]byte(tagsJSON.String), &txn.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}

	return &txn, nil
}

// nullableID maps a zero category ID to NULL so unclassified
// transactions don't reference a nonexistent row.
func nullableID(id int) any {
	if id <= 0 {
		return nil
	}
	return id
}
