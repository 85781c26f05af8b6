package services

import (
	"time"

	"github.com/paletteworks/studio-finance/internal/core/domain"
)

// AgingClassifier defines the accounts-receivable aging operations.
type AgingClassifier interface {
	// CalculateAgingBuckets places every positive outstanding balance into
	// exactly one of the five fixed day-range buckets as of the given date.
	CalculateAgingBuckets(invoices []domain.OutstandingInvoice, asOf time.Time) domain.AgingReport

	// FindOverdueInvoices returns the IDs of invoices that have crossed into
	// overdue as of the given date. It is a pure query; transitioning the
	// matched invoices to OVERDUE is the caller's responsibility.
	FindOverdueInvoices(invoices []domain.OutstandingInvoice, asOf time.Time) []string
}
