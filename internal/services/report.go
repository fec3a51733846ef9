package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"stockledger/internal/domain"
)

// Report is a rendered export ready for browser download.
type Report struct {
	Data        []byte
	Filename    string
	ContentType string
}

var stockHeader = []string{
	"Product Name", "Category", "Quantity", "Unit", "Purchase Price",
	"Total Amount", "Supplier", "Purchase Date", "Has Expiry",
	"Expiry Date", "Payment Status", "Paid Amount", "Pending Amount",
	"Notes", "Created At",
}

var pendingHeader = []string{
	"Product Name", "Supplier", "Pending Amount", "Purchase Date", "Notes",
}

// StockCSV renders the full 15-column stock export.
func StockCSV(records []domain.StockRecord) (Report, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ProductName, r.Category, strconv.Itoa(r.Quantity), r.Unit, money(r.PurchasePrice),
			money(r.TotalAmount), r.SupplierName, r.PurchaseDate, r.HasExpiry,
			r.ExpiryDate.String, r.PaymentStatus, money(r.PaidAmount), money(r.PendingAmount),
			r.Notes.String, r.CreatedAt,
		})
	}
	return renderCSV("stock_report.csv", stockHeader, rows)
}

// PendingCSV renders the 5-column pending-suppliers export.
func PendingCSV(records []domain.StockRecord) (Report, error) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ProductName, r.SupplierName, money(r.PendingAmount),
			r.PurchaseDate, r.Notes.String,
		})
	}
	return renderCSV("pending_suppliers_report.csv", pendingHeader, rows)
}

func renderCSV(filename string, header []string, rows [][]string) (Report, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return Report{}, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return Report{}, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Report{}, err
	}
	return Report{Data: buf.Bytes(), Filename: filename, ContentType: "text/csv"}, nil
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
