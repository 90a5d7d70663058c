package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/classify"
	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
	"github.com/harperdean/scrip/internal/model"
)

// labeledRow is one ground-truth example from the evaluation CSV.
type labeledRow struct {
	merchant    string
	description string
	category    string
}

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <labeled.csv>",
		Short: "Measure categorization accuracy against labeled data",
		Long: `Read a CSV of labeled transactions (merchant,description,category),
categorize each row with the stored keyword lists, and report the
prediction accuracy. Intended for tuning keyword lists offline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rows, err := readLabeledCSV(args[0])
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return common.NewUserError("no labeled rows found", nil)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}
			if len(categories) == 0 {
				return common.ErrNoCategories
			}

			byName := make(map[string]model.Category, len(categories))
			for _, cat := range categories {
				byName[strings.ToLower(cat.Name)] = cat
			}

			var (
				txns   []classify.TransactionText
				actual []model.Category
			)
			for _, row := range rows {
				cat, ok := byName[strings.ToLower(row.category)]
				if !ok {
					fmt.Println(cli.FormatWarning(fmt.Sprintf("skipping row with unknown category %q", row.category)))
					continue
				}
				txns = append(txns, classify.TransactionText{
					Description: row.description,
					Merchant:    row.merchant,
				})
				actual = append(actual, cat)
			}

			classifier := classify.NewClassifier()
			bar := progressbar.Default(int64(len(txns)), "categorizing")

			predictions := make([]model.Category, 0, len(txns))
			for _, txn := range txns {
				batch := classifier.CategorizeBatch([]classify.TransactionText{txn}, categories)
				predictions = append(predictions, batch[0])
				_ = bar.Add(1)
			}

			accuracy := classify.CalculateAccuracy(predictions, actual)
			fmt.Println()
			fmt.Println(cli.FormatTitle("Evaluation"))
			fmt.Printf("  rows:     %d\n", len(predictions))
			fmt.Printf("  accuracy: %.1f%%\n", accuracy)
			return nil
		},
	}
}

func readLabeledCSV(path string) ([]labeledRow, error) {
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

	var rows []labeledRow
	for i, record := range records {
		if len(record) < 3 {
			return nil, fmt.Errorf("row %d: expected merchant,description,category", i+1)
		}
		// Skip the header row if present.
		if i == 0 && strings.EqualFold(strings.TrimSpace(record[0]), "merchant") {
			continue
		}
		rows = append(rows, labeledRow{
			merchant:    strings.TrimSpace(record[0]),
			description: strings.TrimSpace(record[1]),
			category:    strings.TrimSpace(record[2]),
		})
	}
	return rows, nil
}
