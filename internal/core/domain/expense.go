package domain

import "time"

// PlannedExpense is a future outflow the forecasting engine reads: how much,
// when, and optionally what for.
type PlannedExpense struct {
	ExpenseID string    `json:"expenseID"` // Primary Key (e.g., UUID), assigned by persistence
	Amount    Amount    `json:"amount"`
	Date      time.Time `json:"date"`
	Category  string    `json:"category"` // Nullable
}
