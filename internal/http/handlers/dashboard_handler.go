package handlers

import (
	applog "stockledger/internal/log"
	"stockledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Stock *services.StockService
}

// GET /dashboard
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	s, err := h.Stock.Dashboard()
	if err != nil {
		applog.Error(c, "dashboard.load.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load dashboard"})
	}
	return render(c, "dashboard", fiber.Map{
		"TotalProducts":   s.TotalProducts,
		"TotalQuantity":   s.TotalQuantity,
		"ExpiredCount":    s.ExpiredCount,
		"NearExpiryCount": s.NearExpiryCount,
		"PendingTotal":    s.PendingTotal,
	})
}
