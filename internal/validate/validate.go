package validate

import (
	"strconv"
	"strings"
	"time"

	"stockledger/internal/domain"
)

// Form field coercion for the stock entry forms. Beyond type coercion
// (and the NOT NULL columns) nothing is checked; the ledger trusts its
// single operator.

func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

func Quantity(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func Money(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Date accepts YYYY-MM-DD and returns it unchanged.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", false
	}
	return s, true
}

func HasExpiry(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == domain.ExpiryYes || s == domain.ExpiryNo
}

func PaymentStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s == domain.PaymentPaid || s == domain.PaymentPending
}
