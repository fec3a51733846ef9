package handlers

import (
	"database/sql"
	"errors"
	"strconv"

	"stockledger/internal/domain"
	applog "stockledger/internal/log"
	"stockledger/internal/services"
	"stockledger/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	Stock *services.StockService
}

// parseStockForm coerces the add/edit form into a record. It returns the
// name of the first bad field, or "" when everything parsed.
func parseStockForm(c *fiber.Ctx) (domain.StockRecord, string) {
	var rec domain.StockRecord
	var ok bool

	if rec.ProductName, ok = validate.Required(c.FormValue("product_name")); !ok {
		return rec, "product_name"
	}
	if rec.Category, ok = validate.Required(c.FormValue("category")); !ok {
		return rec, "category"
	}
	if rec.Quantity, ok = validate.Quantity(c.FormValue("quantity")); !ok {
		return rec, "quantity"
	}
	if rec.Unit, ok = validate.Required(c.FormValue("unit")); !ok {
		return rec, "unit"
	}
	if rec.PurchasePrice, ok = validate.Money(c.FormValue("purchase_price")); !ok {
		return rec, "purchase_price"
	}
	if rec.TotalAmount, ok = validate.Money(c.FormValue("total_amount")); !ok {
		return rec, "total_amount"
	}
	if rec.SupplierName, ok = validate.Required(c.FormValue("supplier_name")); !ok {
		return rec, "supplier_name"
	}
	if rec.PurchaseDate, ok = validate.Date(c.FormValue("purchase_date")); !ok {
		return rec, "purchase_date"
	}
	if rec.HasExpiry, ok = validate.HasExpiry(c.FormValue("has_expiry")); !ok {
		return rec, "has_expiry"
	}
	// Expiry date only travels with the YES flag; anything else is dropped.
	if rec.HasExpiry == domain.ExpiryYes {
		d, ok := validate.Date(c.FormValue("expiry_date"))
		if !ok {
			return rec, "expiry_date"
		}
		rec.ExpiryDate = sql.NullString{String: d, Valid: true}
	}
	if rec.PaymentStatus, ok = validate.PaymentStatus(c.FormValue("payment_status")); !ok {
		return rec, "payment_status"
	}
	if rec.PaidAmount, ok = validate.Money(c.FormValue("paid_amount")); !ok {
		return rec, "paid_amount"
	}
	if rec.PendingAmount, ok = validate.Money(c.FormValue("pending_amount")); !ok {
		return rec, "pending_amount"
	}
	if notes := c.FormValue("notes"); notes != "" {
		rec.Notes = sql.NullString{String: notes, Valid: true}
	}
	return rec, ""
}

func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil && id > 0
}

// GET /products/new
func (h *StockHandler) NewForm(c *fiber.Ctx) error {
	return render(c, "add_product", fiber.Map{})
}

// POST /products/new
func (h *StockHandler) Create(c *fiber.Ctx) error {
	rec, bad := parseStockForm(c)
	if bad != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": bad})
		return c.Status(fiber.StatusBadRequest).Render("add_product", fiber.Map{
			"Err": "Please check the " + bad + " field.", "CSRFToken": c.Cookies("csrf_"),
		})
	}
	id, err := h.Stock.Add(rec)
	if err != nil {
		applog.Error(c, "stock.add.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not save product"})
	}
	applog.Audit(c, "stock.add", map[string]any{"id": id, "product": rec.ProductName})
	setFlash(c, "success", "Product added successfully!")
	return c.Redirect("/stock")
}

// GET /stock
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.Stock.Listing()
	if err != nil {
		applog.Error(c, "stock.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load stock"})
	}
	return render(c, "view_stock", fiber.Map{"Items": items, "Count": len(items)})
}

// GET /products/:id/edit
func (h *StockHandler) EditForm(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	rec, err := h.Stock.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			setFlash(c, "error", "Product not found!")
			return c.Redirect("/stock")
		}
		applog.Error(c, "stock.get.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not load product"})
	}
	return render(c, "edit_product", fiber.Map{"Product": rec})
}

// POST /products/:id/edit
func (h *StockHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	rec, bad := parseStockForm(c)
	if bad != "" {
		applog.Security(c, "validation.fail", map[string]any{"field": bad, "id": id})
		return c.Status(fiber.StatusBadRequest).SendString("invalid " + bad)
	}
	if err := h.Stock.Edit(id, rec); err != nil {
		applog.Error(c, "stock.update.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not update product"})
	}
	applog.Audit(c, "stock.update", map[string]any{"id": id})
	setFlash(c, "success", "Product updated successfully!")
	return c.Redirect("/stock")
}

// POST /products/:id/delete
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("invalid id")
	}
	if err := h.Stock.Delete(id); err != nil {
		applog.Error(c, "stock.delete.fail", err, map[string]any{"id": id})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not delete product"})
	}
	applog.Audit(c, "stock.delete", map[string]any{"id": id})
	setFlash(c, "success", "Product deleted successfully!")
	return c.Redirect("/stock")
}
