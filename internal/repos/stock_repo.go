package repos

import (
	"stockledger/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StockRepo struct{ db *sqlx.DB }

func NewStockRepo(db *sqlx.DB) *StockRepo { return &StockRepo{db: db} }

const stockCols = `
  id, product_name, category, quantity, unit, purchase_price, total_amount,
  supplier_name, purchase_date, has_expiry, expiry_date, payment_status,
  paid_amount, pending_amount, notes, created_at, updated_at`

// All returns every record, most recently created first.
func (r *StockRepo) All() ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	err := r.db.Select(&out, `
  SELECT`+stockCols+`
  FROM stock
  ORDER BY created_at DESC, id DESC
`)
	return out, err
}

// ByID returns sql.ErrNoRows untouched when the id has no row.
func (r *StockRepo) ByID(id int64) (domain.StockRecord, error) {
	var rec domain.StockRecord
	err := r.db.Get(&rec, `
  SELECT`+stockCols+`
  FROM stock
  WHERE id = ?
`, id)
	return rec, err
}

// WithExpiry returns records that carry an expiry date.
func (r *StockRepo) WithExpiry() ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	err := r.db.Select(&out, `
  SELECT`+stockCols+`
  FROM stock
  WHERE has_expiry = 'YES' AND expiry_date IS NOT NULL
  ORDER BY created_at DESC, id DESC
`)
	return out, err
}

// Pending returns unpaid records grouped for the supplier report.
func (r *StockRepo) Pending() ([]domain.StockRecord, error) {
	var out []domain.StockRecord
	err := r.db.Select(&out, `
  SELECT`+stockCols+`
  FROM stock
  WHERE payment_status = 'PENDING'
  ORDER BY supplier_name
`)
	return out, err
}

func (r *StockRepo) Insert(rec domain.StockRecord) (int64, error) {
	res, err := r.db.NamedExec(`
  INSERT INTO stock (
    product_name, category, quantity, unit, purchase_price, total_amount,
    supplier_name, purchase_date, has_expiry, expiry_date, payment_status,
    paid_amount, pending_amount, notes, created_at, updated_at
  ) VALUES (
    :product_name, :category, :quantity, :unit, :purchase_price, :total_amount,
    :supplier_name, :purchase_date, :has_expiry, :expiry_date, :payment_status,
    :paid_amount, :pending_amount, :notes, :created_at, :updated_at
  )
`, rec)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites every mutable field; created_at is left alone.
func (r *StockRepo) Update(id int64, rec domain.StockRecord) error {
	rec.ID = id
	_, err := r.db.NamedExec(`
  UPDATE stock SET
    product_name = :product_name, category = :category, quantity = :quantity,
    unit = :unit, purchase_price = :purchase_price, total_amount = :total_amount,
    supplier_name = :supplier_name, purchase_date = :purchase_date,
    has_expiry = :has_expiry, expiry_date = :expiry_date,
    payment_status = :payment_status, paid_amount = :paid_amount,
    pending_amount = :pending_amount, notes = :notes, updated_at = :updated_at
  WHERE id = :id
`, rec)
	return err
}

// UpdatePayment touches only the payment columns and the update timestamp.
func (r *StockRepo) UpdatePayment(id int64, status string, paid, pending float64, updatedAt string) error {
	_, err := r.db.Exec(`
  UPDATE stock SET
    payment_status = ?, paid_amount = ?, pending_amount = ?, updated_at = ?
  WHERE id = ?
`, status, paid, pending, updatedAt, id)
	return err
}

func (r *StockRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM stock WHERE id = ?`, id)
	return err
}
