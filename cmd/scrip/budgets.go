package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperdean/scrip/internal/cli"
	"github.com/harperdean/scrip/internal/common"
	"github.com/harperdean/scrip/internal/model"
	"github.com/harperdean/scrip/internal/report"
	"github.com/harperdean/scrip/internal/service"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Manage category budgets",
		Long:  `Set spending caps per category and track progress against them.`,
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(budgetProgressCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Set a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil || amount <= 0 {
				return common.NewUserError(fmt.Sprintf("invalid amount %q", args[1]), err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			category, err := store.GetCategoryByName(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to look up category: %w", err)
			}
			if category == nil {
				return common.NewUserError(fmt.Sprintf("category %q not found", args[0]), nil)
			}

			budget := model.Budget{
				CategoryID: category.ID,
				Amount:     amount,
				Period:     model.BudgetPeriod(period),
				StartDate:  time.Now(),
				IsActive:   true,
			}
			if err := store.SaveBudget(ctx, &budget); err != nil {
				return fmt.Errorf("failed to save budget: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Set %s budget of $%.2f for %s", budget.Period, budget.Amount, category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&period, "period", "monthly", "budget period (weekly, monthly, yearly)")

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'scrip budgets set' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Period"))

			for _, budget := range budgets {
				category, err := store.GetCategoryByID(ctx, budget.CategoryID)
				if err != nil {
					return fmt.Errorf("failed to look up category %d: %w", budget.CategoryID, err)
				}
				name := fmt.Sprintf("#%d", budget.CategoryID)
				if category != nil {
					name = category.Name
				}
				fmt.Fprintf(w, "%s\t$%.2f\t%s\n", name, budget.Amount, budget.Period)
			}
			return nil
		},
	}
}

func budgetProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show spending against each budget for the current period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			budgets, err := store.GetBudgets(ctx)
			if err != nil {
				return fmt.Errorf("failed to load budgets: %w", err)
			}
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Budget progress"))

			now := time.Now()
			for _, budget := range budgets {
				start := periodStart(budget.Period, now)
				txns, err := store.GetTransactions(ctx, service.TransactionFilter{
					StartDate:  &start,
					CategoryID: budget.CategoryID,
				})
				if err != nil {
					return fmt.Errorf("failed to load transactions: %w", err)
				}

				progress := report.CalculateBudgetProgress(budget, txns)

				category, err := store.GetCategoryByID(ctx, budget.CategoryID)
				if err != nil {
					return fmt.Errorf("failed to look up category %d: %w", budget.CategoryID, err)
				}
				name := fmt.Sprintf("#%d", budget.CategoryID)
				if category != nil {
					name = category.Name
				}

				line := fmt.Sprintf("  %s: $%.2f of $%.2f (%.0f%%)",
					name, progress.Spent, budget.Amount, progress.Percentage)
				if progress.IsOverBudget {
					fmt.Println(cli.ErrorStyle.Render(line + "  (over budget)"))
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}

// periodStart returns the beginning of the current budget window.
func periodStart(period model.BudgetPeriod, now time.Time) time.Time {
	switch period {
	case model.PeriodWeekly:
		weekday := int(now.Weekday())
		return time.Date(now.Year(), now.Month(), now.Day()-weekday, 0, 0, 0, 0, now.Location())
	case model.PeriodYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}
