package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/paletteworks/studio-finance/internal/core/domain"
	portssvc "github.com/paletteworks/studio-finance/internal/core/ports/services"
	"github.com/paletteworks/studio-finance/internal/utils/moneycalc"
)

const invoiceNumberPrefix = "INV"

// invoiceService implements the InvoiceCalculator interface
type invoiceService struct {
	BaseService
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithInvoiceLogger sets the logger for the invoice service.
func WithInvoiceLogger(logger *slog.Logger) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Logger = logger
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(options ...InvoiceServiceOption) portssvc.InvoiceCalculator {
	svc := &invoiceService{}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceCalculator interface
var _ portssvc.InvoiceCalculator = (*invoiceService)(nil)

// CalculateTotals recomputes subtotal, tax and total from line items. Totals
// stored or submitted by clients are never trusted; this is the single source
// of truth. Total is subtotal + tax by construction.
func (s *invoiceService) CalculateTotals(lineItems []domain.LineItem, taxRate domain.RateBp) domain.InvoiceTotals {
	var subtotal domain.Amount
	for _, item := range lineItems {
		subtotal = moneycalc.Add(subtotal, moneycalc.LineItemAmount(item.UnitPrice, item.Quantity))
	}
	tax := moneycalc.ApplyRate(subtotal, taxRate)
	return domain.InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    moneycalc.Add(subtotal, tax),
	}
}

// ValidateIntegrity recomputes totals from the line items and compares them
// with the stored fields, detecting tampering or drift.
func (s *invoiceService) ValidateIntegrity(stored domain.InvoiceTotals, lineItems []domain.LineItem, taxRate domain.RateBp) bool {
	recomputed := s.CalculateTotals(lineItems, taxRate)
	if recomputed != stored {
		s.LogWarn("stored invoice totals do not match recomputation",
			slog.Int64("storedTotal", int64(stored.Total)),
			slog.Int64("recomputedTotal", int64(recomputed.Total)))
		return false
	}
	return true
}

// GenerateInvoiceNumber renders PREFIX-PERIODKEY-NNNN with the sequence
// zero-padded to at least four digits; wider sequences are never truncated.
func (s *invoiceService) GenerateInvoiceNumber(periodKey string, sequence int) string {
	return fmt.Sprintf("%s-%s-%04d", invoiceNumberPrefix, periodKey, sequence)
}

// CalculateDueDate derives the due date from the issue date and payment
// terms. Terms without a due-date offset of their own, milestone billing
// included, fall back to net 30 by policy.
func (s *invoiceService) CalculateDueDate(issueDate time.Time, terms domain.PaymentTerms) time.Time {
	switch terms {
	case domain.TermsDueOnReceipt:
		return issueDate
	case domain.TermsNet15:
		return issueDate.AddDate(0, 0, 15)
	case domain.TermsNet30:
		return issueDate.AddDate(0, 0, 30)
	case domain.TermsNet60:
		return issueDate.AddDate(0, 0, 60)
	default:
		return issueDate.AddDate(0, 0, 30)
	}
}

// ApplyPayment recomputes the balance and status that would result from a
// proposed payment. Overpayment clamps to a zero balance; guarding against
// two concurrent payments over-paying the same invoice belongs to the
// transactional persistence layer. The input invoice is never mutated.
func (s *invoiceService) ApplyPayment(inv domain.OutstandingInvoice, payment domain.Amount) domain.PaymentResult {
	if payment <= 0 {
		return domain.PaymentResult{NewBalance: inv.BalanceDue, NewStatus: inv.Status}
	}
	newBalance := moneycalc.Subtract(inv.BalanceDue, payment)
	if newBalance <= 0 {
		return domain.PaymentResult{NewBalance: 0, NewStatus: domain.StatusPaid}
	}
	return domain.PaymentResult{NewBalance: newBalance, NewStatus: domain.StatusPartiallyPaid}
}
