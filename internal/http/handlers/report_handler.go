package handlers

import (
	applog "stockledger/internal/log"
	"stockledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler serves the derived views (expiry alerts, pending
// suppliers) and the CSV downloads.
type ReportHandler struct {
	Stock *services.StockService
}

// GET /expiry-alerts
func (h *ReportHandler) ExpiryAlerts(c *fiber.Ctx) error {
	expired, nearExpiry, err := h.Stock.Alerts()
	if err != nil {
		applog.Error(c, "alerts.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load expiry alerts"})
	}
	return render(c, "expiry_alert", fiber.Map{
		"ExpiredItems":    expired,
		"NearExpiryItems": nearExpiry,
	})
}

// GET /pending-suppliers
func (h *ReportHandler) PendingSuppliers(c *fiber.Ctx) error {
	items, totals, err := h.Stock.PendingSuppliers()
	if err != nil {
		applog.Error(c, "pending.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load pending payments"})
	}
	return render(c, "pending_suppliers", fiber.Map{
		"PendingItems":   items,
		"SupplierTotals": totals,
	})
}

// GET /export/stock.csv
func (h *ReportHandler) ExportStock(c *fiber.Ctx) error {
	rep, err := h.Stock.StockReport()
	if err != nil {
		applog.Error(c, "export.stock.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not export stock"})
	}
	return sendReport(c, rep)
}

// GET /export/pending.csv
func (h *ReportHandler) ExportPending(c *fiber.Ctx) error {
	rep, err := h.Stock.PendingReport()
	if err != nil {
		applog.Error(c, "export.pending.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not export pending payments"})
	}
	return sendReport(c, rep)
}

func sendReport(c *fiber.Ctx, rep services.Report) error {
	c.Set(fiber.HeaderContentType, rep.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=`+rep.Filename)
	return c.Send(rep.Data)
}
