package moneyfmt_test

import (
	"testing"

	"github.com/paletteworks/studio-finance/internal/apperrors"
	"github.com/paletteworks/studio-finance/internal/core/domain"
	"github.com/paletteworks/studio-finance/internal/utils/moneyfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name  string
		input domain.Amount
		want  string
	}{
		{name: "zero", input: 0, want: "$0.00"},
		{name: "sub-dollar", input: 50, want: "$0.50"},
		{name: "no separator needed", input: 99999, want: "$999.99"},
		{name: "one separator", input: 123456, want: "$1,234.56"},
		{name: "two separators", input: 100000000, want: "$1,000,000.00"},
		{name: "negative", input: -123456, want: "-$1,234.56"},
		{name: "negative sub-dollar", input: -5, want: "-$0.05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moneyfmt.FormatAmount(tt.input))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Amount
		wantErr bool
	}{
		{name: "plain", input: "1234.56", want: 123456},
		{name: "with symbol and separators", input: "$1,234.56", want: 123456},
		{name: "stray whitespace", input: "  $99.00 ", want: 9900},
		{name: "integer dollars", input: "42", want: 4200},
		{name: "negative with symbol", input: "-$12.34", want: -1234},
		{name: "sub-cent precision rounds half up", input: "$12.345", want: 1235},
		{name: "sub-cent precision rounds down", input: "$12.344", want: 1234},
		{name: "empty", input: "   ", wantErr: true},
		{name: "not a number", input: "twelve dollars", wantErr: true},
		{name: "two decimal points", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := moneyfmt.ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrUnparseableAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBasisPoints(t *testing.T) {
	tests := []struct {
		name  string
		input domain.RateBp
		want  string
	}{
		{name: "whole percent", input: 1600, want: "16.00%"},
		{name: "fraction of a percent", input: 5, want: "0.05%"},
		{name: "over one hundred percent", input: 12345, want: "123.45%"},
		{name: "zero", input: 0, want: "0.00%"},
		{name: "full rate", input: domain.FullRate, want: "100.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moneyfmt.FormatBasisPoints(tt.input))
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input domain.QtyM
		want  string
	}{
		{name: "integral quantity has no decimal point", input: 2000, want: "2"},
		{name: "one decimal place", input: 2500, want: "2.5"},
		{name: "two decimal places", input: 2520, want: "2.52"},
		{name: "three decimal places", input: 2525, want: "2.525"},
		{name: "below one unit", input: 500, want: "0.5"},
		{name: "zero", input: 0, want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moneyfmt.FormatQuantity(tt.input))
		})
	}
}
