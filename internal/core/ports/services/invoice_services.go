package services

import (
	"time"

	"github.com/paletteworks/studio-finance/internal/core/domain"
)

// InvoiceCalculator defines the invoice totals engine. CalculateTotals is the
// single source of truth for invoice totals: callers must never trust
// externally supplied totals and always recompute from line items before
// persisting or displaying.
type InvoiceCalculator interface {
	// CalculateTotals recomputes subtotal, tax and total from line items.
	CalculateTotals(lineItems []domain.LineItem, taxRate domain.RateBp) domain.InvoiceTotals

	// ValidateIntegrity reports whether stored totals match what the line
	// items derive to, field by field.
	ValidateIntegrity(stored domain.InvoiceTotals, lineItems []domain.LineItem, taxRate domain.RateBp) bool

	// GenerateInvoiceNumber derives the display number for an invoice from
	// its period key and per-period sequence.
	GenerateInvoiceNumber(periodKey string, sequence int) string

	// CalculateDueDate derives the due date from the issue date and the
	// invoice's payment terms.
	CalculateDueDate(issueDate time.Time, terms domain.PaymentTerms) time.Time

	// ApplyPayment recomputes the balance and lifecycle status that would
	// result from a proposed payment. It does not mutate the invoice;
	// persisting the transition is the caller's job.
	ApplyPayment(inv domain.OutstandingInvoice, payment domain.Amount) domain.PaymentResult
}
