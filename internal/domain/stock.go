package domain

import "database/sql"

// Payment status values stored in the payment_status column.
const (
	PaymentPaid    = "PAID"
	PaymentPending = "PENDING"
)

// Has-expiry flag values stored in the has_expiry column.
const (
	ExpiryYes = "YES"
	ExpiryNo  = "NO"
)

// ExpiryStatus is the derived freshness bucket for a stock record.
// The zero value means the record has no applicable expiry status.
type ExpiryStatus string

const (
	StatusAbsent     ExpiryStatus = ""
	StatusExpired    ExpiryStatus = "expired"
	StatusNearExpiry ExpiryStatus = "near_expiry"
	StatusFresh      ExpiryStatus = "fresh"
)

// StockRecord is one purchase/inventory line in the stock table.
// Dates are stored as "2006-01-02" strings and timestamps as
// "2006-01-02 15:04:05", matching the on-disk schema.
type StockRecord struct {
	ID            int64          `db:"id"`
	ProductName   string         `db:"product_name"`
	Category      string         `db:"category"`
	Quantity      int            `db:"quantity"`
	Unit          string         `db:"unit"`
	PurchasePrice float64        `db:"purchase_price"`
	TotalAmount   float64        `db:"total_amount"`
	SupplierName  string         `db:"supplier_name"`
	PurchaseDate  string         `db:"purchase_date"`
	HasExpiry     string         `db:"has_expiry"` // YES | NO
	ExpiryDate    sql.NullString `db:"expiry_date"`
	PaymentStatus string         `db:"payment_status"` // PAID | PENDING
	PaidAmount    float64        `db:"paid_amount"`
	PendingAmount float64        `db:"pending_amount"`
	Notes         sql.NullString `db:"notes"`
	CreatedAt     string         `db:"created_at"`
	UpdatedAt     string         `db:"updated_at"`
}

// DashboardSummary holds the aggregate figures shown on the dashboard.
type DashboardSummary struct {
	TotalProducts   int
	TotalQuantity   int
	ExpiredCount    int
	NearExpiryCount int
	PendingTotal    float64
}

// StockWithStatus pairs a record with its derived expiry status for listing views.
type StockWithStatus struct {
	StockRecord
	ExpiryStatus ExpiryStatus
}
