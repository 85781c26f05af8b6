package services

import (
	"github.com/paletteworks/studio-finance/internal/core/domain"
)

// BudgetCalculator defines operations for splitting budgets across weighted
// categories and measuring spend against them.
type BudgetCalculator interface {
	// AllocateFromTemplate splits total across the weighted categories so the
	// allocations sum exactly to total. Output order matches input order.
	AllocateFromTemplate(total domain.Amount, categories []domain.BudgetCategoryWeight) []domain.CategoryAllocation

	// CalculateVariance compares a category's allocation with actual spend.
	CalculateVariance(allocated, spent domain.Amount) domain.BudgetVariance

	// SummarizeBudget rolls per-category spend up into a dashboard summary.
	SummarizeBudget(total domain.Amount, spend []domain.CategorySpend) domain.BudgetSummary
}
