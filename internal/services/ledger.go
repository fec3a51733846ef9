package services

import (
	"time"

	"stockledger/internal/domain"
)

const dateLayout = "2006-01-02"

// ExpiryStatusOf buckets a record's expiry date against today.
// Records without expiry tracking, and dates that fail to parse, get
// StatusAbsent rather than an error; listing views must not break on
// one bad row.
func ExpiryStatusOf(hasExpiry, expiryDate string, today time.Time) domain.ExpiryStatus {
	if hasExpiry != domain.ExpiryYes || expiryDate == "" {
		return domain.StatusAbsent
	}
	expiry, err := time.Parse(dateLayout, expiryDate)
	if err != nil {
		return domain.StatusAbsent
	}
	days := daysBetween(today, expiry)
	switch {
	case days < 0:
		return domain.StatusExpired
	case days <= 7:
		return domain.StatusNearExpiry
	default:
		return domain.StatusFresh
	}
}

// daysBetween counts whole calendar days from d1 to d2, ignoring time of day.
func daysBetween(d1, d2 time.Time) int {
	a := time.Date(d1.Year(), d1.Month(), d1.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(d2.Year(), d2.Month(), d2.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// statusOf derives the bucket for a full record.
func statusOf(rec domain.StockRecord, today time.Time) domain.ExpiryStatus {
	return ExpiryStatusOf(rec.HasExpiry, rec.ExpiryDate.String, today)
}

// Summarize computes the dashboard aggregates over the full record set.
func Summarize(records []domain.StockRecord, today time.Time) domain.DashboardSummary {
	var s domain.DashboardSummary
	s.TotalProducts = len(records)
	for _, rec := range records {
		s.TotalQuantity += rec.Quantity
		switch statusOf(rec, today) {
		case domain.StatusExpired:
			s.ExpiredCount++
		case domain.StatusNearExpiry:
			s.NearExpiryCount++
		}
		if rec.PaymentStatus == domain.PaymentPending {
			s.PendingTotal += rec.PendingAmount
		}
	}
	return s
}

// PartitionAlerts splits records into expired and near-expiry groups,
// keeping the input order within each group. Fresh and status-less
// records are dropped.
func PartitionAlerts(records []domain.StockRecord, today time.Time) (expired, nearExpiry []domain.StockRecord) {
	for _, rec := range records {
		switch statusOf(rec, today) {
		case domain.StatusExpired:
			expired = append(expired, rec)
		case domain.StatusNearExpiry:
			nearExpiry = append(nearExpiry, rec)
		}
	}
	return expired, nearExpiry
}

// SupplierPendingTotals sums pending amounts per supplier over records
// already filtered to PENDING. Supplier names are compared verbatim;
// map order is unspecified and display ordering is the caller's job.
func SupplierPendingTotals(pending []domain.StockRecord) map[string]float64 {
	totals := make(map[string]float64, len(pending))
	for _, rec := range pending {
		totals[rec.SupplierName] += rec.PendingAmount
	}
	return totals
}

// WithStatus decorates records with their derived expiry status for listing.
func WithStatus(records []domain.StockRecord, today time.Time) []domain.StockWithStatus {
	out := make([]domain.StockWithStatus, 0, len(records))
	for _, rec := range records {
		out = append(out, domain.StockWithStatus{StockRecord: rec, ExpiryStatus: statusOf(rec, today)})
	}
	return out
}
