package domain

import "time"

// PaymentTerms identifies when an invoice falls due relative to its issue date.
type PaymentTerms string

const (
	TermsDueOnReceipt PaymentTerms = "DUE_ON_RECEIPT"
	TermsNet15        PaymentTerms = "NET_15"
	TermsNet30        PaymentTerms = "NET_30"
	TermsNet60        PaymentTerms = "NET_60"
	// TermsMilestone bills per project milestone and carries no due-date
	// offset of its own.
	TermsMilestone PaymentTerms = "MILESTONE"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft         InvoiceStatus = "DRAFT"
	StatusSent          InvoiceStatus = "SENT"
	StatusViewed        InvoiceStatus = "VIEWED"
	StatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	StatusOverdue       InvoiceStatus = "OVERDUE"
	StatusPaid          InvoiceStatus = "PAID"
	StatusWrittenOff    InvoiceStatus = "WRITTEN_OFF"
)

// CanBecomeOverdue reports whether an invoice in this status may be flagged
// overdue once its due date has passed. Drafts were never issued, settled and
// written-off invoices have nothing outstanding, and an invoice already
// flagged stays where it is.
func (s InvoiceStatus) CanBecomeOverdue() bool {
	switch s {
	case StatusSent, StatusViewed, StatusPartiallyPaid:
		return true
	}
	return false
}

// LineItem is a single billable line on an invoice. Line items are consumed to
// produce amounts; this core never persists them.
type LineItem struct {
	Description string `json:"description"`
	UnitPrice   Amount `json:"unitPrice"`
	Quantity    QtyM   `json:"quantity"`
}

// InvoiceTotals are the recomputed monetary totals for one invoice.
// Total is always Subtotal + Tax by construction.
type InvoiceTotals struct {
	Subtotal Amount `json:"subtotal"`
	Tax      Amount `json:"tax"`
	Total    Amount `json:"total"`
}

// OutstandingInvoice is the slice of a persisted invoice this core reads:
// what is still owed, when it was due, and where it sits in its lifecycle.
type OutstandingInvoice struct {
	InvoiceID  string        `json:"invoiceID"` // Primary Key (e.g., UUID), assigned by persistence
	BalanceDue Amount        `json:"balanceDue"`
	DueDate    time.Time     `json:"dueDate"`
	Status     InvoiceStatus `json:"status"`
}

// PaymentResult is the recomputed balance and lifecycle status after applying
// a proposed payment to an invoice.
type PaymentResult struct {
	NewBalance Amount        `json:"newBalance"`
	NewStatus  InvoiceStatus `json:"newStatus"`
}
