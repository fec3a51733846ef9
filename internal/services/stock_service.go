package services

import (
	"time"

	"stockledger/internal/domain"
	"stockledger/internal/repos"
)

// StockService is the ledger engine wired to its store and clock.
type StockService struct {
	Stock *repos.StockRepo
	// Now is the clock; tests pin it to a fixed date.
	Now func() time.Time
	// Strict makes ProcessPayment reject amounts that don't add up
	// to the record total. Off by default.
	Strict bool
}

func NewStockService(stock *repos.StockRepo, strict bool) *StockService {
	return &StockService{Stock: stock, Now: time.Now, Strict: strict}
}

func (s *StockService) Dashboard() (domain.DashboardSummary, error) {
	records, err := s.Stock.All()
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	return Summarize(records, s.Now()), nil
}

func (s *StockService) Listing() ([]domain.StockWithStatus, error) {
	records, err := s.Stock.All()
	if err != nil {
		return nil, err
	}
	return WithStatus(records, s.Now()), nil
}

func (s *StockService) Alerts() (expired, nearExpiry []domain.StockRecord, err error) {
	records, err := s.Stock.WithExpiry()
	if err != nil {
		return nil, nil, err
	}
	expired, nearExpiry = PartitionAlerts(records, s.Now())
	return expired, nearExpiry, nil
}

func (s *StockService) PendingSuppliers() ([]domain.StockRecord, map[string]float64, error) {
	pending, err := s.Stock.Pending()
	if err != nil {
		return nil, nil, err
	}
	return pending, SupplierPendingTotals(pending), nil
}

func (s *StockService) Get(id int64) (domain.StockRecord, error) {
	return s.Stock.ByID(id)
}

// Add stamps both timestamps with the same value and inserts.
func (s *StockService) Add(rec domain.StockRecord) (int64, error) {
	now := s.Now().Format(timestampLayout)
	rec.CreatedAt = now
	rec.UpdatedAt = now
	return s.Stock.Insert(rec)
}

// Edit overwrites every mutable field of an existing record.
func (s *StockService) Edit(id int64, rec domain.StockRecord) error {
	rec.UpdatedAt = s.Now().Format(timestampLayout)
	return s.Stock.Update(id, rec)
}

func (s *StockService) Delete(id int64) error {
	return s.Stock.Delete(id)
}

// ProcessPayment applies caller-supplied figures to a record and returns
// the resulting payment status. Returns sql.ErrNoRows when the id is gone.
func (s *StockService) ProcessPayment(id int64, newPaid, newPending float64, fullyPaid bool) (string, error) {
	rec, err := s.Stock.ByID(id)
	if err != nil {
		return "", err
	}
	ApplyPayment(&rec, newPaid, newPending, fullyPaid, s.Now())
	if s.Strict {
		if err := CheckAmounts(rec); err != nil {
			return "", err
		}
	}
	if err := s.Stock.UpdatePayment(id, rec.PaymentStatus, rec.PaidAmount, rec.PendingAmount, rec.UpdatedAt); err != nil {
		return "", err
	}
	return rec.PaymentStatus, nil
}

// MarkPaid settles the full outstanding balance on a record.
func (s *StockService) MarkPaid(id int64) error {
	rec, err := s.Stock.ByID(id)
	if err != nil {
		return err
	}
	MarkFullyPaid(&rec, s.Now())
	return s.Stock.UpdatePayment(id, rec.PaymentStatus, rec.PaidAmount, rec.PendingAmount, rec.UpdatedAt)
}

func (s *StockService) StockReport() (Report, error) {
	records, err := s.Stock.All()
	if err != nil {
		return Report{}, err
	}
	return StockCSV(records)
}

func (s *StockService) PendingReport() (Report, error) {
	records, err := s.Stock.Pending()
	if err != nil {
		return Report{}, err
	}
	return PendingCSV(records)
}
