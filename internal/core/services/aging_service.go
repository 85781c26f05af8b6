package services

import (
	"log/slog"
	"time"

	"github.com/paletteworks/studio-finance/internal/core/domain"
	portssvc "github.com/paletteworks/studio-finance/internal/core/ports/services"
	"github.com/paletteworks/studio-finance/internal/utils/moneycalc"
)

// agingService implements the AgingClassifier interface
type agingService struct {
	BaseService
}

// AgingServiceOption is a functional option for configuring the aging service
type AgingServiceOption func(*agingService)

// WithAgingLogger sets the logger for the aging service.
func WithAgingLogger(logger *slog.Logger) AgingServiceOption {
	return func(s *agingService) {
		s.Logger = logger
	}
}

// NewAgingService creates a new aging service with the provided options
func NewAgingService(options ...AgingServiceOption) portssvc.AgingClassifier {
	svc := &agingService{}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure agingService implements the AgingClassifier interface
var _ portssvc.AgingClassifier = (*agingService)(nil)

// wholeDaysBetween counts whole days from one instant to another, flooring
// toward negative infinity so a future `to` yields a negative count rather
// than an error.
func wholeDaysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	days := diff / (24 * time.Hour)
	if diff%(24*time.Hour) < 0 {
		days--
	}
	return int(days)
}

// agingCategoryIndex maps days overdue to one of the five fixed buckets.
// The ranges are closed: day 30 is still 1-30, day 31 opens 31-60.
func agingCategoryIndex(daysOverdue int) int {
	switch {
	case daysOverdue <= 0:
		return 0
	case daysOverdue <= 30:
		return 1
	case daysOverdue <= 60:
		return 2
	case daysOverdue <= 90:
		return 3
	default:
		return 4
	}
}

// CalculateAgingBuckets places every positive outstanding balance into exactly
// one bucket by days overdue as of the given date. Zero and negative balances
// are skipped entirely, so they never inflate even the Current bucket. All
// five buckets are always returned, empty or not.
func (s *agingService) CalculateAgingBuckets(invoices []domain.OutstandingInvoice, asOf time.Time) domain.AgingReport {
	report := domain.AgingReport{Buckets: domain.NewAgingBuckets()}
	for _, inv := range invoices {
		if inv.BalanceDue <= 0 {
			continue
		}
		daysOverdue := wholeDaysBetween(inv.DueDate, asOf)
		idx := agingCategoryIndex(daysOverdue)
		report.Buckets[idx].Total = moneycalc.Add(report.Buckets[idx].Total, inv.BalanceDue)
		report.Buckets[idx].Count++
		report.TotalOutstanding = moneycalc.Add(report.TotalOutstanding, inv.BalanceDue)
		if daysOverdue >= 1 {
			report.TotalOverdueCount++
		}
	}
	return report
}

// FindOverdueInvoices returns the IDs of invoices that have crossed into
// overdue: an eligible status, a due date strictly before asOf, and a strictly
// positive balance. Statuses are not mutated here; the caller transitions the
// matches to OVERDUE.
func (s *agingService) FindOverdueInvoices(invoices []domain.OutstandingInvoice, asOf time.Time) []string {
	ids := make([]string, 0)
	for _, inv := range invoices {
		if !inv.Status.CanBecomeOverdue() {
			continue
		}
		if !inv.DueDate.Before(asOf) {
			continue
		}
		if inv.BalanceDue <= 0 {
			continue
		}
		ids = append(ids, inv.InvoiceID)
	}
	return ids
}
