package services

import (
	"fmt"
	"math"
	"time"

	"stockledger/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// amountEpsilon absorbs float drift when comparing money sums.
const amountEpsilon = 0.005

// ApplyPayment overwrites the payment columns with caller-supplied figures.
// The amounts are trusted verbatim; whether they add up to the record's
// total is the caller's problem (see CheckAmounts for the strict mode).
func ApplyPayment(rec *domain.StockRecord, newPaid, newPending float64, fullyPaid bool, now time.Time) {
	if fullyPaid {
		rec.PaymentStatus = domain.PaymentPaid
	} else {
		rec.PaymentStatus = domain.PaymentPending
	}
	rec.PaidAmount = newPaid
	rec.PendingAmount = newPending
	rec.UpdatedAt = now.Format(timestampLayout)
}

// MarkFullyPaid settles the outstanding balance in place. Unlike
// ApplyPayment it cannot leave the record inconsistent, and applying it
// twice is a no-op the second time.
func MarkFullyPaid(rec *domain.StockRecord, now time.Time) {
	rec.PaidAmount += rec.PendingAmount
	rec.PendingAmount = 0
	rec.PaymentStatus = domain.PaymentPaid
	rec.UpdatedAt = now.Format(timestampLayout)
}

// CheckAmounts reports whether paid + pending matches the record total.
// The default payment path never calls this; it exists for tests and for
// the STRICT_AMOUNTS mode.
func CheckAmounts(rec domain.StockRecord) error {
	if math.Abs(rec.PaidAmount+rec.PendingAmount-rec.TotalAmount) > amountEpsilon {
		return fmt.Errorf("amounts do not add up: paid %.2f + pending %.2f != total %.2f",
			rec.PaidAmount, rec.PendingAmount, rec.TotalAmount)
	}
	return nil
}
