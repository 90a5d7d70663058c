package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/classify"
	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
	"github.com/harperdean/scrip/internal/model"
)

func importCmd() *cobra.Command {
	var autoCategorize bool

	cmd := &cobra.Command{
		Use:   "import <transactions.csv>",
		Short: "Import transactions from a CSV file",
		Long: `Bulk-import transactions from a CSV with columns
date,merchant,description,amount. Duplicate rows (same date, amount,
merchant, and description) are skipped by hash. With --categorize each
imported transaction is auto-assigned a category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			txns, err := readTransactionsCSV(args[0])
			if err != nil {
				return err
			}
			if len(txns) == 0 {
				fmt.Println(cli.FormatWarning("no transactions found in file"))
				return nil
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if autoCategorize {
				categories, err := store.GetCategories(ctx)
				if err != nil {
					return fmt.Errorf("failed to load categories: %w", err)
				}

				classifier := classify.NewClassifier()
				bar := progressbar.Default(int64(len(txns)), "categorizing")
				for i := range txns {
					if cat := classifier.Categorize(txns[i].Description, txns[i].Merchant, categories); cat != nil {
						txns[i].CategoryID = cat.ID
					}
					_ = bar.Add(1)
				}
				fmt.Println()
			}

			saved, err := store.SaveTransactions(ctx, txns)
			if err != nil {
				return fmt.Errorf("failed to save transactions: %w", err)
			}

			skipped := len(txns) - saved
			common.LogInfo("import complete", common.Fields{"saved": saved, "skipped": skipped})
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d transactions (%d duplicates skipped)", saved, skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoCategorize, "categorize", false, "auto-assign categories during import")

	return cmd
}

func readTransactionsCSV(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	var txns []model.Transaction
	for i, record := range records {
		if len(record) < 4 {
			return nil, fmt.Errorf("row %d: expected date,merchant,description,amount", i+1)
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "date") {
			continue
		}

		date, err := time.Parse("2006-01-02", strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid date %q: %w", i+1, record[0], err)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid amount %q: %w", i+1, record[3], err)
		}

		txn := model.Transaction{
			ID:          fmt.Sprintf("import-%s-%d", date.Format("20060102"), i),
			Date:        date,
			Merchant:    strings.TrimSpace(record[1]),
			Description: strings.TrimSpace(record[2]),
			Amount:      amount,
		}
		txn.Hash = txn.GenerateHash()
		txns = append(txns, txn)
	}
	return txns, nil
}
