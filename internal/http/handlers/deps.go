package handlers

import (
	"stockledger/internal/config"
	"stockledger/internal/repos"
	"stockledger/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	DashboardHandler *DashboardHandler
	StockHandler     *StockHandler
	PaymentHandler   *PaymentHandler
	ReportHandler    *ReportHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	stockRepo := repos.NewStockRepo(db)
	stockSvc := services.NewStockService(stockRepo, cfg.StrictAmounts)

	return &Deps{
		DashboardHandler: &DashboardHandler{Stock: stockSvc},
		StockHandler:     &StockHandler{Stock: stockSvc},
		PaymentHandler:   &PaymentHandler{Stock: stockSvc},
		ReportHandler:    &ReportHandler{Stock: stockSvc},
	}
}
