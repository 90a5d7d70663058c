package model

import "time"

// BudgetPeriod is the recurrence window of a budget.
type BudgetPeriod string

const (
	// PeriodWeekly resets the budget every week.
	PeriodWeekly BudgetPeriod = "weekly"
	// PeriodMonthly resets the budget every month.
	PeriodMonthly BudgetPeriod = "monthly"
	// PeriodYearly resets the budget every year.
	PeriodYearly BudgetPeriod = "yearly"
)

// Valid reports whether the period is one of the known values.
func (p BudgetPeriod) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget is a spending cap for one category over a recurring period.
type Budget struct {
	StartDate  time.Time
	CreatedAt  time.Time
	Period     BudgetPeriod
	ID         int
	CategoryID int
	Amount     float64
	IsActive   bool
}
