// Package moneyfmt renders unit values for display and parses user-typed
// currency strings back into minor-unit amounts. The application runs in a
// single organizational currency, so the symbol and separators are fixed.
package moneyfmt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/paletteworks/studio-finance/internal/apperrors"
	"github.com/paletteworks/studio-finance/internal/core/domain"
	"github.com/paletteworks/studio-finance/internal/utils/moneycalc"
	"github.com/shopspring/decimal"
)

const currencySymbol = "$"

// FormatAmount renders an amount as a currency string with thousands
// separators and exactly two fraction digits, e.g. 123456 -> "$1,234.56".
func FormatAmount(a domain.Amount) string {
	v := int64(a)
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%s%s.%02d", currencySymbol, groupThousands(v/100), v%100)
	if neg {
		return "-" + s
	}
	return s
}

// ParseAmount converts a user-typed currency string to a minor-unit amount.
// The currency symbol, thousands separators and surrounding whitespace are
// optional; precision below one minor unit rounds half up.
func ParseAmount(s string) (domain.Amount, error) {
	cleaned := strings.NewReplacer(currencySymbol, "", ",", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0, fmt.Errorf("empty input: %w", apperrors.ErrUnparseableAmount)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, apperrors.ErrUnparseableAmount)
	}
	return domain.Amount(moneycalc.RoundHalfUp(d.Shift(2))), nil
}

// FormatBasisPoints renders a rate with exactly two fraction digits,
// e.g. 1600 -> "16.00%".
func FormatBasisPoints(r domain.RateBp) string {
	return decimal.New(int64(r), -2).StringFixed(2) + "%"
}

// FormatQuantity renders a scaled quantity with trailing zeros stripped:
// 2000 -> "2", 2500 -> "2.5", 2525 -> "2.525".
func FormatQuantity(q domain.QtyM) string {
	return decimal.New(int64(q), -3).String()
}

func groupThousands(v int64) string {
	digits := strconv.FormatInt(v, 10)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
