package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/harperdean/scrip/internal/classify"
	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
	"github.com/harperdean/scrip/internal/model"
	"github.com/harperdean/scrip/internal/ocr"
	"github.com/harperdean/scrip/internal/receipt"
	"github.com/harperdean/scrip/internal/service"
)

func scanCmd() *cobra.Command {
	var (
		dryRun bool
		yes    bool
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Scan a receipt image into a categorized transaction",
		Long: `Run the configured OCR engine over a receipt image, extract the
merchant, total, and date from the recognized text, suggest a spending
category, and save the transaction. Extraction is best-effort: anything
the heuristics miss is left blank for you to fill in.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			imagePath := args[0]

			extractor := createExtractor()

			// OCR is the one flaky external collaborator; retry lives
			// here, not in the parsing core.
			var result *ocr.Result
			err := common.WithRetry(ctx, func() error {
				var extractErr error
				result, extractErr = extractor.Extract(ctx, imagePath)
				return extractErr
			}, service.RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond})
			if err != nil {
				common.LogError(err, "OCR extraction failed", common.Fields{"image": imagePath})
				return common.NewUserError("could not read the receipt image", err)
			}
			common.LogDebug("extracted receipt text", common.Fields{
				"image":      imagePath,
				"chars":      len(result.Text),
				"confidence": result.Confidence,
			})

			floor := viper.GetFloat64("ocr.confidence_floor")
			if result.Confidence < floor {
				fmt.Println(cli.FormatWarning(fmt.Sprintf(
					"low OCR confidence (%.0f%%), extracted fields may need correction", result.Confidence)))
			}

			parser := receipt.NewParser()
			parsed := parser.Parse(result.Text)

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			classifier := classify.NewClassifier()
			category := classifier.Categorize(result.Text, parsed.MerchantOrEmpty(), categories)

			printParsed(parsed, category)

			if dryRun {
				return nil
			}
			if parsed.Total == nil {
				return common.NewUserError("no total found on the receipt; add the transaction manually", nil)
			}
			if !yes && !confirm("Save this transaction?") {
				fmt.Println(cli.SubtleStyle.Render("Not saved."))
				return nil
			}

			txn := buildTransaction(parsed, category, notes, result.Text)
			if err := store.SaveTransaction(ctx, &txn); err != nil {
				return fmt.Errorf("failed to save transaction: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved transaction %s ($%.2f)", txn.ID, txn.Amount)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "extract and categorize without saving")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "save without confirmation")
	cmd.Flags().StringVar(&notes, "notes", "", "notes to attach to the transaction")

	return cmd
}

func buildTransaction(parsed model.ParsedReceipt, category *model.Category, notes, rawText string) model.Transaction {
	now := time.Now()

	txn := model.Transaction{
		ID:         newTransactionID(now),
		Date:       now,
		Merchant:   parsed.MerchantOrEmpty(),
		Notes:      notes,
		RawOCRText: rawText,
	}
	if parsed.Total != nil {
		txn.Amount = *parsed.Total
	}
	if parsed.Date != nil {
		txn.Date = *parsed.Date
	}
	if category != nil {
		txn.CategoryID = category.ID
	}
	if len(parsed.Items) > 0 {
		max := 2
		if len(parsed.Items) < max {
			max = len(parsed.Items)
		}
		txn.Description = joinItems(parsed.Items[:max])
	}
	txn.Hash = txn.GenerateHash()
	return txn
}

func joinItems(items []string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += ", "
		}
		out += item
	}
	return out
}

func printParsed(parsed model.ParsedReceipt, category *model.Category) {
	fmt.Println(cli.FormatTitle("Extracted receipt"))

	printField := func(label, value string) {
		if value == "" {
			value = cli.SubtleStyle.Render("(not found)")
		}
		fmt.Printf("  %s %s\n", cli.BoldStyle.Render(label+":"), value)
	}

	printField("Merchant", parsed.MerchantOrEmpty())
	if parsed.Total != nil {
		printField("Total", fmt.Sprintf("$%.2f", *parsed.Total))
	} else {
		printField("Total", "")
	}
	if parsed.Date != nil {
		printField("Date", parsed.Date.Format("2006-01-02"))
	} else {
		printField("Date", "")
	}
	if category != nil {
		printField("Category", fmt.Sprintf("%s %s", category.Icon, category.Name))
	} else {
		printField("Category", "")
	}
	if len(parsed.Items) > 0 {
		fmt.Printf("  %s\n", cli.BoldStyle.Render("Items:"))
		for _, item := range parsed.Items {
			fmt.Printf("    %s\n", cli.SubtleStyle.Render(item))
		}
	}
}
