package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/model"
	"github.com/harperdean/scrip/internal/report"
	"github.com/harperdean/scrip/internal/service"
)

func reportCmd() *cobra.Command {
	var monthsBack int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show spending summaries",
		Long: `Summarize spending: totals per category with their share of overall
spending, a monthly series, and the month-over-month trend.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			now := time.Now()
			windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
				AddDate(0, -(monthsBack - 1), 0)

			txns, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &windowStart})
			if err != nil {
				return fmt.Errorf("failed to load transactions: %w", err)
			}
			if len(txns) == 0 {
				fmt.Println(cli.FormatWarning("no transactions in the selected window"))
				return nil
			}

			categories, err := store.GetCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to load categories: %w", err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Spending, last %d months", monthsBack)))
			fmt.Printf("  total: $%.2f\n\n", report.TotalSpending(txns))

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Count"),
				cli.BoldStyle.Render("Total"),
				cli.BoldStyle.Render("Share"))
			for _, summary := range report.GroupByCategory(txns, categories) {
				fmt.Fprintf(w, "  %s %s\t%d\t$%.2f\t%.1f%%\n",
					summary.Icon, summary.Name, summary.Count, summary.Total, summary.Percentage)
			}
			w.Flush()

			fmt.Println()
			fmt.Println(cli.BoldStyle.Render("  " + cli.ChartIcon + " By month"))
			for _, month := range report.SpendingByMonth(txns, now, monthsBack) {
				fmt.Printf("  %s\t$%.2f\n", month.Month.Format("Jan 2006"), month.Amount)
			}

			printInsights(txns, now)
			return nil
		},
	}

	cmd.Flags().IntVar(&monthsBack, "months", 3, "number of months to include")

	return cmd
}

func printInsights(txns []model.Transaction, now time.Time) {
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	previousStart := currentStart.AddDate(0, -1, 0)

	var current, previous []model.Transaction
	for _, txn := range txns {
		switch {
		case !txn.Date.Before(currentStart):
			current = append(current, txn)
		case !txn.Date.Before(previousStart):
			previous = append(previous, txn)
		}
	}

	insights := report.SpendingInsights(current, previous)

	fmt.Println()
	switch insights.Trend {
	case report.TrendUp:
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"spending is up %.1f%% ($%.2f) versus last month", insights.ChangePercentage, insights.Change)))
	case report.TrendDown:
		fmt.Println(cli.FormatSuccess(fmt.Sprintf(
			"spending is down %.1f%% ($%.2f) versus last month", -insights.ChangePercentage, -insights.Change)))
	case report.TrendStable:
		fmt.Println(cli.SubtleStyle.Render("  spending is roughly flat versus last month"))
	}
}
