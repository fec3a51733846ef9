package handlers

import (
	"database/sql"
	"errors"

	applog "stockledger/internal/log"
	"stockledger/internal/services"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Stock *services.StockService
}

type paymentRequest struct {
	PaymentAmount    float64 `json:"paymentAmount"`
	NewPaidAmount    float64 `json:"newPaidAmount"`
	NewPendingAmount float64 `json:"newPendingAmount"`
	IsFullyPaid      bool    `json:"isFullyPaid"`
}

type paymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	NewStatus string `json:"newStatus,omitempty"`
}

// POST /payments/:id — JSON endpoint used by the pending-suppliers page.
// Every failure comes back as {success:false, message}, never a bare 500.
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.JSON(paymentResponse{Success: false, Message: "invalid id"})
	}
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		applog.Security(c, "payment.parse.fail", map[string]any{"id": id})
		return c.JSON(paymentResponse{Success: false, Message: err.Error()})
	}

	status, err := h.Stock.ProcessPayment(id, req.NewPaidAmount, req.NewPendingAmount, req.IsFullyPaid)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(paymentResponse{Success: false, Message: "Product not found"})
		}
		applog.Error(c, "payment.process.fail", err, map[string]any{"id": id})
		return c.JSON(paymentResponse{Success: false, Message: err.Error()})
	}

	applog.Audit(c, "payment.process", map[string]any{
		"id":      id,
		"amount":  req.PaymentAmount,
		"paid":    req.NewPaidAmount,
		"pending": req.NewPendingAmount,
		"status":  status,
	})
	return c.JSON(paymentResponse{Success: true, Message: "Payment processed successfully", NewStatus: status})
}

// POST /payments/:id/mark-paid — settles the outstanding balance.
func (h *PaymentHandler) MarkPaid(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	if err := h.Stock.MarkPaid(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			setFlash(c, "error", "Product not found!")
			return c.Redirect("/pending-suppliers")
		}
		applog.Error(c, "payment.markpaid.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update payment"})
	}
	applog.Audit(c, "payment.markpaid", map[string]any{"id": id})
	setFlash(c, "success", "Payment marked as paid!")
	return c.Redirect("/pending-suppliers")
}
