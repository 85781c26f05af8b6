package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paletteworks/studio-finance/internal/core/domain"
	"github.com/paletteworks/studio-finance/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dueDaysAgo(asOf time.Time, days int) time.Time {
	return asOf.AddDate(0, 0, -days)
}

func TestCalculateAgingBuckets(t *testing.T) {
	svc := services.NewAgingService()
	asOf := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	t.Run("boundary days land in the right bucket", func(t *testing.T) {
		tests := []struct {
			daysOverdue int
			wantBucket  int
		}{
			{daysOverdue: -10, wantBucket: 0},
			{daysOverdue: 0, wantBucket: 0},
			{daysOverdue: 1, wantBucket: 1},
			{daysOverdue: 30, wantBucket: 1},
			{daysOverdue: 31, wantBucket: 2},
			{daysOverdue: 60, wantBucket: 2},
			{daysOverdue: 61, wantBucket: 3},
			{daysOverdue: 90, wantBucket: 3},
			{daysOverdue: 91, wantBucket: 4},
			{daysOverdue: 400, wantBucket: 4},
		}

		for _, tt := range tests {
			report := svc.CalculateAgingBuckets([]domain.OutstandingInvoice{
				{InvoiceID: uuid.NewString(), BalanceDue: 5000, DueDate: dueDaysAgo(asOf, tt.daysOverdue), Status: domain.StatusSent},
			}, asOf)

			require.Len(t, report.Buckets, 5)
			for i, bucket := range report.Buckets {
				if i == tt.wantBucket {
					assert.Equal(t, domain.Amount(5000), bucket.Total, "days=%d bucket=%s", tt.daysOverdue, bucket.Label)
					assert.Equal(t, 1, bucket.Count)
				} else {
					assert.Equal(t, domain.Amount(0), bucket.Total, "days=%d bucket=%s", tt.daysOverdue, bucket.Label)
					assert.Equal(t, 0, bucket.Count)
				}
			}
		}
	})

	t.Run("invoice 31 days overdue falls in 31-60", func(t *testing.T) {
		report := svc.CalculateAgingBuckets([]domain.OutstandingInvoice{
			{
				InvoiceID:  uuid.NewString(),
				BalanceDue: 80000,
				DueDate:    time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
				Status:     domain.StatusOverdue,
			},
		}, asOf)

		assert.Equal(t, "31-60", report.Buckets[2].Label)
		assert.Equal(t, domain.Amount(80000), report.Buckets[2].Total)
		assert.Equal(t, domain.Amount(0), report.Buckets[1].Total)
	})

	t.Run("zero and negative balances are skipped entirely", func(t *testing.T) {
		report := svc.CalculateAgingBuckets([]domain.OutstandingInvoice{
			{InvoiceID: uuid.NewString(), BalanceDue: 0, DueDate: dueDaysAgo(asOf, 10), Status: domain.StatusPaid},
			{InvoiceID: uuid.NewString(), BalanceDue: -250, DueDate: dueDaysAgo(asOf, 10), Status: domain.StatusPaid},
		}, asOf)

		for _, bucket := range report.Buckets {
			assert.Equal(t, domain.Amount(0), bucket.Total)
			assert.Equal(t, 0, bucket.Count)
		}
		assert.Equal(t, domain.Amount(0), report.TotalOutstanding)
		assert.Equal(t, 0, report.TotalOverdueCount)
	})

	t.Run("totals accumulate across buckets", func(t *testing.T) {
		report := svc.CalculateAgingBuckets([]domain.OutstandingInvoice{
			{InvoiceID: uuid.NewString(), BalanceDue: 1000, DueDate: dueDaysAgo(asOf, -5), Status: domain.StatusSent},
			{InvoiceID: uuid.NewString(), BalanceDue: 2000, DueDate: dueDaysAgo(asOf, 15), Status: domain.StatusSent},
			{InvoiceID: uuid.NewString(), BalanceDue: 3000, DueDate: dueDaysAgo(asOf, 45), Status: domain.StatusOverdue},
			{InvoiceID: uuid.NewString(), BalanceDue: 4000, DueDate: dueDaysAgo(asOf, 120), Status: domain.StatusOverdue},
		}, asOf)

		assert.Equal(t, domain.Amount(10000), report.TotalOutstanding)
		assert.Equal(t, 3, report.TotalOverdueCount) // the not-yet-due invoice is excluded
		assert.Equal(t, 1, report.Buckets[0].Count)
		assert.Equal(t, 1, report.Buckets[1].Count)
		assert.Equal(t, 1, report.Buckets[2].Count)
		assert.Equal(t, 1, report.Buckets[4].Count)
	})

	t.Run("five buckets returned even with no invoices", func(t *testing.T) {
		report := svc.CalculateAgingBuckets(nil, asOf)
		require.Len(t, report.Buckets, 5)
		assert.Equal(t, "Current", report.Buckets[0].Label)
		assert.Equal(t, "90+", report.Buckets[4].Label)
	})
}

func TestFindOverdueInvoices(t *testing.T) {
	svc := services.NewAgingService()
	asOf := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	pastDue := dueDaysAgo(asOf, 10)

	t.Run("only eligible statuses match", func(t *testing.T) {
		tests := []struct {
			status domain.InvoiceStatus
			want   bool
		}{
			{status: domain.StatusSent, want: true},
			{status: domain.StatusViewed, want: true},
			{status: domain.StatusPartiallyPaid, want: true},
			{status: domain.StatusDraft, want: false},
			{status: domain.StatusOverdue, want: false},
			{status: domain.StatusPaid, want: false},
			{status: domain.StatusWrittenOff, want: false},
		}

		for _, tt := range tests {
			id := uuid.NewString()
			got := svc.FindOverdueInvoices([]domain.OutstandingInvoice{
				{InvoiceID: id, BalanceDue: 5000, DueDate: pastDue, Status: tt.status},
			}, asOf)
			if tt.want {
				assert.Equal(t, []string{id}, got, string(tt.status))
			} else {
				assert.Empty(t, got, string(tt.status))
			}
		}
	})

	t.Run("due date must be strictly before asOf", func(t *testing.T) {
		got := svc.FindOverdueInvoices([]domain.OutstandingInvoice{
			{InvoiceID: uuid.NewString(), BalanceDue: 5000, DueDate: asOf, Status: domain.StatusSent},
			{InvoiceID: uuid.NewString(), BalanceDue: 5000, DueDate: asOf.AddDate(0, 0, 3), Status: domain.StatusSent},
		}, asOf)
		assert.Empty(t, got)
	})

	t.Run("zero balance never matches", func(t *testing.T) {
		got := svc.FindOverdueInvoices([]domain.OutstandingInvoice{
			{InvoiceID: uuid.NewString(), BalanceDue: 0, DueDate: pastDue, Status: domain.StatusSent},
		}, asOf)
		assert.Empty(t, got)
	})

	t.Run("matching IDs returned in input order", func(t *testing.T) {
		first, second := uuid.NewString(), uuid.NewString()
		got := svc.FindOverdueInvoices([]domain.OutstandingInvoice{
			{InvoiceID: first, BalanceDue: 100, DueDate: pastDue, Status: domain.StatusViewed},
			{InvoiceID: uuid.NewString(), BalanceDue: 100, DueDate: pastDue, Status: domain.StatusDraft},
			{InvoiceID: second, BalanceDue: 100, DueDate: pastDue, Status: domain.StatusPartiallyPaid},
		}, asOf)
		assert.Equal(t, []string{first, second}, got)
	})
}
