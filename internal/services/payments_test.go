package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stockledger/internal/domain"
	"stockledger/internal/services"
)

var payTime = time.Date(2024, 5, 15, 14, 45, 12, 0, time.UTC)

func TestApplyPaymentOverwritesVerbatim(t *testing.T) {
	r := domain.StockRecord{
		TotalAmount:   100,
		PaidAmount:    40,
		PendingAmount: 60,
		PaymentStatus: domain.PaymentPending,
		UpdatedAt:     "2024-01-01 00:00:00",
	}

	services.ApplyPayment(&r, 70, 30, false, payTime)
	assert.Equal(t, domain.PaymentPending, r.PaymentStatus)
	assert.Equal(t, 70.0, r.PaidAmount)
	assert.Equal(t, 30.0, r.PendingAmount)
	assert.Equal(t, "2024-05-15 14:45:12", r.UpdatedAt)

	// No cross-check against the total: inconsistent figures go through.
	services.ApplyPayment(&r, 999, 999, true, payTime)
	assert.Equal(t, domain.PaymentPaid, r.PaymentStatus)
	assert.Equal(t, 999.0, r.PaidAmount)
	assert.Equal(t, 999.0, r.PendingAmount)
}

func TestMarkFullyPaidIsIdempotent(t *testing.T) {
	r := domain.StockRecord{
		TotalAmount:   100,
		PaidAmount:    40,
		PendingAmount: 60,
		PaymentStatus: domain.PaymentPending,
	}

	services.MarkFullyPaid(&r, payTime)
	assert.Equal(t, domain.PaymentPaid, r.PaymentStatus)
	assert.Equal(t, 100.0, r.PaidAmount)
	assert.Equal(t, 0.0, r.PendingAmount)

	services.MarkFullyPaid(&r, payTime)
	assert.Equal(t, domain.PaymentPaid, r.PaymentStatus)
	assert.Equal(t, 100.0, r.PaidAmount)
	assert.Equal(t, 0.0, r.PendingAmount)
}

func TestCheckAmounts(t *testing.T) {
	ok := domain.StockRecord{TotalAmount: 100, PaidAmount: 40, PendingAmount: 60}
	assert.NoError(t, services.CheckAmounts(ok))

	drifted := domain.StockRecord{TotalAmount: 100, PaidAmount: 40.001, PendingAmount: 59.999}
	assert.NoError(t, services.CheckAmounts(drifted))

	bad := domain.StockRecord{TotalAmount: 100, PaidAmount: 70, PendingAmount: 60}
	assert.Error(t, services.CheckAmounts(bad))
}
