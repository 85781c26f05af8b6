package services

import (
	"log/slog"
	"sort"

	"github.com/paletteworks/studio-finance/internal/core/domain"
	portssvc "github.com/paletteworks/studio-finance/internal/core/ports/services"
	"github.com/paletteworks/studio-finance/internal/utils/moneycalc"
	"github.com/shopspring/decimal"
)

// budgetService implements the BudgetCalculator interface
type budgetService struct {
	BaseService
}

// BudgetServiceOption is a functional option for configuring the budget service
type BudgetServiceOption func(*budgetService)

// WithBudgetLogger sets the logger for the budget service.
func WithBudgetLogger(logger *slog.Logger) BudgetServiceOption {
	return func(s *budgetService) {
		s.Logger = logger
	}
}

// NewBudgetService creates a new budget service with the provided options
func NewBudgetService(options ...BudgetServiceOption) portssvc.BudgetCalculator {
	svc := &budgetService{}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure budgetService implements the BudgetCalculator interface
var _ portssvc.BudgetCalculator = (*budgetService)(nil)

// AllocateFromTemplate splits total across weighted categories with the
// largest-remainder method: floor every exact share, then hand the leftover
// minor units to the categories with the largest fractional remainders.
// Equal remainders keep their input order, so the result is deterministic.
func (s *budgetService) AllocateFromTemplate(total domain.Amount, categories []domain.BudgetCategoryWeight) []domain.CategoryAllocation {
	allocations := make([]domain.CategoryAllocation, 0, len(categories))
	if len(categories) == 0 {
		return allocations
	}

	var totalWeight int64
	for _, c := range categories {
		totalWeight += int64(c.WeightBp)
	}
	if totalWeight <= 0 {
		// Weight data violates the template invariant; nothing sane to split.
		s.LogWarn("budget template has no positive weight, allocating nothing",
			slog.Int("categories", len(categories)))
		for _, c := range categories {
			allocations = append(allocations, domain.CategoryAllocation{Name: c.Name})
		}
		return allocations
	}

	// Exact integer division: total*weight = totalWeight*quotient + remainder,
	// with the quotient floored so the remainder is never negative.
	divisor := decimal.NewFromInt(totalWeight)
	floors := make([]int64, len(categories))
	remainders := make([]decimal.Decimal, len(categories))
	var floorSum int64
	for i, c := range categories {
		numerator := total.Decimal().Mul(c.WeightBp.Decimal())
		q, r := numerator.QuoRem(divisor, 0)
		if r.IsNegative() {
			q = q.Sub(decimal.NewFromInt(1))
			r = r.Add(divisor)
		}
		floors[i] = q.IntPart()
		remainders[i] = r
		floorSum += floors[i]
	}

	order := make([]int, len(categories))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	leftover := int64(total) - floorSum
	for k := int64(0); k < leftover; k++ {
		floors[order[k]]++
	}

	for i, c := range categories {
		allocations = append(allocations, domain.CategoryAllocation{
			Name:      c.Name,
			Allocated: domain.Amount(floors[i]),
		})
	}
	return allocations
}

// CalculateVariance compares a category's allocation with actual spend. The
// variance percent carries one decimal place; a zero allocation yields zero
// rather than an error.
func (s *budgetService) CalculateVariance(allocated, spent domain.Amount) domain.BudgetVariance {
	remaining := moneycalc.Subtract(allocated, spent)
	variance := decimal.Zero
	if allocated != 0 {
		// remaining/allocated*100 to one decimal place: scale to tenths of a
		// percent before dividing, round half up, then shift back.
		tenths := moneycalc.RoundHalfUp(remaining.Decimal().Shift(3).Div(allocated.Decimal()))
		variance = decimal.New(tenths, -1)
	}
	return domain.BudgetVariance{
		Remaining:       remaining,
		VariancePercent: variance,
		IsOverBudget:    remaining < 0,
	}
}

// SummarizeBudget rolls per-category spend up into a dashboard summary.
func (s *budgetService) SummarizeBudget(total domain.Amount, spend []domain.CategorySpend) domain.BudgetSummary {
	var totalSpent domain.Amount
	for _, c := range spend {
		totalSpent = moneycalc.Add(totalSpent, c.Spent)
	}

	categories := make([]domain.CategoryShare, 0, len(spend))
	for _, c := range spend {
		categories = append(categories, domain.CategoryShare{
			Name:         c.Name,
			Spent:        c.Spent,
			ShareOfSpend: moneycalc.ToPercentage(c.Spent, totalSpent),
		})
	}

	return domain.BudgetSummary{
		TotalSpent:  totalSpent,
		Remaining:   moneycalc.Subtract(total, totalSpent),
		Utilization: moneycalc.ToPercentage(totalSpent, total),
		Categories:  categories,
	}
}
