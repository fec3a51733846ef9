package services_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockledger/internal/domain"
	"stockledger/internal/repos"
	"stockledger/internal/services"
)

func memService(t *testing.T) *services.StockService {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := services.NewStockService(repos.NewStockRepo(db), false)
	svc.Now = func() time.Time { return today }
	return svc
}

func TestAddThenAlertsPartition(t *testing.T) {
	svc := memService(t)

	_, err := svc.Add(rec("Yogurt", "Dairy Co", 12, day(3), "PAID", 0))
	require.NoError(t, err)
	_, err = svc.Add(rec("Bread", "Bakery", 5, day(-1), "PAID", 0))
	require.NoError(t, err)
	_, err = svc.Add(rec("Salt", "HomeCare", 50, "", "PAID", 0))
	require.NoError(t, err)

	expired, near, err := svc.Alerts()
	require.NoError(t, err)

	require.Len(t, near, 1)
	assert.Equal(t, "Yogurt", near[0].ProductName)
	require.Len(t, expired, 1)
	assert.Equal(t, "Bread", expired[0].ProductName)
}

func TestPendingSupplierTotalsEndToEnd(t *testing.T) {
	svc := memService(t)

	_, err := svc.Add(rec("Rice", "Agro Traders", 10, "", "PENDING", 100))
	require.NoError(t, err)
	_, err = svc.Add(rec("Wheat", "Agro Traders", 10, "", "PENDING", 150))
	require.NoError(t, err)
	_, err = svc.Add(rec("Milk", "Dairy Co", 4, "", "PAID", 0))
	require.NoError(t, err)

	items, totals, err := svc.PendingSuppliers()
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.InDelta(t, 250, totals["Agro Traders"], 0.001)
	_, hasPaidSupplier := totals["Dairy Co"]
	assert.False(t, hasPaidSupplier)
}

func TestAddStampsBothTimestamps(t *testing.T) {
	svc := memService(t)

	id, err := svc.Add(rec("Rice", "Agro Traders", 10, "", "PAID", 0))
	require.NoError(t, err)

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15 10:30:00", got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestProcessPaymentPersists(t *testing.T) {
	svc := memService(t)

	r := rec("Rice", "Agro Traders", 10, "", "PENDING", 60)
	r.TotalAmount = 100
	r.PaidAmount = 40
	id, err := svc.Add(r)
	require.NoError(t, err)

	status, err := svc.ProcessPayment(id, 70, 30, false)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, status)

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 70.0, got.PaidAmount)
	assert.Equal(t, 30.0, got.PendingAmount)

	status, err = svc.ProcessPayment(id, 100, 0, true)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, status)
}

func TestProcessPaymentMissingRecord(t *testing.T) {
	svc := memService(t)
	_, err := svc.ProcessPayment(9999, 10, 0, true)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestProcessPaymentStrictMode(t *testing.T) {
	svc := memService(t)
	svc.Strict = true

	r := rec("Rice", "Agro Traders", 10, "", "PENDING", 60)
	r.TotalAmount = 100
	r.PaidAmount = 40
	id, err := svc.Add(r)
	require.NoError(t, err)

	// 70 + 50 != 100 -> rejected, nothing written
	_, err = svc.ProcessPayment(id, 70, 50, false)
	require.Error(t, err)

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 40.0, got.PaidAmount)

	// consistent figures pass
	_, err = svc.ProcessPayment(id, 70, 30, false)
	assert.NoError(t, err)
}

func TestMarkPaidTwice(t *testing.T) {
	svc := memService(t)

	r := rec("Rice", "Agro Traders", 10, "", "PENDING", 60)
	r.TotalAmount = 100
	r.PaidAmount = 40
	id, err := svc.Add(r)
	require.NoError(t, err)

	require.NoError(t, svc.MarkPaid(id))
	require.NoError(t, svc.MarkPaid(id))

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, 100.0, got.PaidAmount)
	assert.Equal(t, 0.0, got.PendingAmount)
}

func TestEditOverwritesAndKeepsCreatedAt(t *testing.T) {
	svc := memService(t)

	id, err := svc.Add(rec("Rice", "Agro Traders", 10, "", "PAID", 0))
	require.NoError(t, err)

	later := today.Add(48 * time.Hour)
	svc.Now = func() time.Time { return later }

	updated := rec("Brown Rice", "Agro Traders", 8, "", "PENDING", 20)
	require.NoError(t, svc.Edit(id, updated))

	got, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Brown Rice", got.ProductName)
	assert.Equal(t, 8, got.Quantity)
	assert.Equal(t, "2024-05-15 10:30:00", got.CreatedAt)
	assert.Equal(t, "2024-05-17 10:30:00", got.UpdatedAt)
}

func TestDeleteRemovesRecord(t *testing.T) {
	svc := memService(t)

	id, err := svc.Add(rec("Rice", "Agro Traders", 10, "", "PAID", 0))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(id))

	_, err = svc.Get(id)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDashboardOverStore(t *testing.T) {
	svc := memService(t)

	_, err := svc.Add(rec("Rice", "Agro Traders", 10, day(-2), "PENDING", 150))
	require.NoError(t, err)
	_, err = svc.Add(rec("Milk", "Dairy Co", 4, day(3), "PAID", 0))
	require.NoError(t, err)

	s, err := svc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalProducts)
	assert.Equal(t, 14, s.TotalQuantity)
	assert.Equal(t, 1, s.ExpiredCount)
	assert.Equal(t, 1, s.NearExpiryCount)
	assert.InDelta(t, 150, s.PendingTotal, 0.001)
}
