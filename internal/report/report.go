// Package report computes display-independent spending aggregates over
// transaction history: category breakdowns, monthly series, budget
// progress, and month-over-month insights.
package report

import (
	"sort"
	"time"

	"github.com/harperdean/scrip/internal/model"
)

// CategorySummary is one category's share of total spending.
type CategorySummary struct {
	Name       string
	Icon       string
	ID         int
	Count      int
	Total      float64
	Percentage float64
}

// MonthlySpending is total spending in one calendar month.
type MonthlySpending struct {
	Month  time.Time
	Amount float64
}

// BudgetProgress reports spending against a budget cap.
type BudgetProgress struct {
	Spent        float64
	Remaining    float64
	Percentage   float64
	IsOverBudget bool
}

// Trend describes the direction of a month-over-month spending change.
type Trend string

const (
	// TrendUp means spending rose more than the stable band allows.
	TrendUp Trend = "up"
	// TrendDown means spending fell more than the stable band allows.
	TrendDown Trend = "down"
	// TrendStable means the change stayed within ±5%.
	TrendStable Trend = "stable"
)

// Insights summarizes the change between two months of spending.
type Insights struct {
	Trend            Trend
	Change           float64
	ChangePercentage float64
}

// TotalSpending sums transaction amounts.
func TotalSpending(txns []model.Transaction) float64 {
	total := 0.0
	for _, txn := range txns {
		total += txn.Amount
	}
	return total
}

// GroupByCategory breaks spending down per category, with each
// category's share of the overall total. Categories with no
// transactions are omitted; results are sorted by total descending.
func GroupByCategory(txns []model.Transaction, categories []model.Category) []CategorySummary {
	total := TotalSpending(txns)

	var summaries []CategorySummary
	for _, cat := range categories {
		summary := CategorySummary{ID: cat.ID, Name: cat.Name, Icon: cat.Icon}
		for _, txn := range txns {
			if txn.CategoryID == cat.ID {
				summary.Total += txn.Amount
				summary.Count++
			}
		}
		if summary.Count == 0 {
			continue
		}
		if total > 0 {
			summary.Percentage = summary.Total / total * 100
		}
		summaries = append(summaries, summary)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Total > summaries[j].Total
	})
	return summaries
}

// SpendingByMonth buckets spending into the last monthsBack calendar
// months ending at now, oldest first. Months with no spending appear
// with a zero amount.
func SpendingByMonth(txns []model.Transaction, now time.Time, monthsBack int) []MonthlySpending {
	if monthsBack <= 0 {
		return nil
	}

	months := make([]MonthlySpending, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		start := startOfMonth(now).AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		amount := 0.0
		for _, txn := range txns {
			if !txn.Date.Before(start) && txn.Date.Before(end) {
				amount += txn.Amount
			}
		}
		months = append(months, MonthlySpending{Month: start, Amount: amount})
	}
	return months
}

// AverageDailySpending returns total spending divided over a day window.
func AverageDailySpending(txns []model.Transaction, days int) float64 {
	if days <= 0 {
		return 0
	}
	return TotalSpending(txns) / float64(days)
}

// CalculateBudgetProgress reports how far the transactions (already
// filtered to the budget's category and period) have consumed a budget.
// The percentage is capped at 100; the over-budget flag carries the
// overflow signal.
func CalculateBudgetProgress(budget model.Budget, txns []model.Transaction) BudgetProgress {
	spent := 0.0
	for _, txn := range txns {
		if txn.CategoryID == budget.CategoryID {
			spent += txn.Amount
		}
	}

	percentage := 0.0
	if budget.Amount > 0 {
		percentage = spent / budget.Amount * 100
	}
	if percentage > 100 {
		percentage = 100
	}

	return BudgetProgress{
		Spent:        spent,
		Remaining:    budget.Amount - spent,
		Percentage:   percentage,
		IsOverBudget: spent > budget.Amount,
	}
}

// SpendingInsights compares the current month's spending to the
// previous month's. Changes within ±5% count as stable.
func SpendingInsights(currentMonth, previousMonth []model.Transaction) Insights {
	current := TotalSpending(currentMonth)
	previous := TotalSpending(previousMonth)

	change := current - previous
	changePct := 0.0
	if previous > 0 {
		changePct = change / previous * 100
	}

	trend := TrendStable
	if changePct > 5 || changePct < -5 {
		if change > 0 {
			trend = TrendUp
		} else {
			trend = TrendDown
		}
	}

	return Insights{
		Change:           change,
		ChangePercentage: changePct,
		Trend:            trend,
	}
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
