package domain

import "github.com/shopspring/decimal"

// BudgetCategoryWeight is one weighted category of a budget template. The
// weights of all categories in a template sum to 10000 basis points; that
// invariant is owned by the data the persistence layer supplies.
type BudgetCategoryWeight struct {
	Name     string `json:"name"`
	WeightBp RateBp `json:"weightBp"`
}

// CategoryAllocation is the minor-unit amount allocated to one category. The
// full set for a budget always sums exactly to the budget total.
type CategoryAllocation struct {
	Name      string `json:"name"`
	Allocated Amount `json:"allocated"`
}

// BudgetVariance compares a category's allocation with actual spend.
type BudgetVariance struct {
	Remaining       Amount          `json:"remaining"`
	VariancePercent decimal.Decimal `json:"variancePercent"` // one decimal place
	IsOverBudget    bool            `json:"isOverBudget"`
}

// CategorySpend is actual spend recorded against one category.
type CategorySpend struct {
	Name  string `json:"name"`
	Spent Amount `json:"spent"`
}

// CategoryShare is one category's slice of total spend.
type CategoryShare struct {
	Name         string `json:"name"`
	Spent        Amount `json:"spent"`
	ShareOfSpend RateBp `json:"shareOfSpend"`
}

// BudgetSummary is the dashboard roll-up for one budget.
type BudgetSummary struct {
	TotalSpent  Amount          `json:"totalSpent"`
	Remaining   Amount          `json:"remaining"`
	Utilization RateBp          `json:"utilization"` // spent as a share of the budget total
	Categories  []CategoryShare `json:"categories"`
}
