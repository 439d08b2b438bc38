package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/contracts"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/ledger"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

// Invoice-level handlers are closed over the pipeline so the same code serves
// /invoices (sales) and /bills (purchases).

func (h *Handler) CreateInvoice(pipeline ledger.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body contracts.InvoiceCreateRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			h.respondError(c, appErrors.ParseValidationErrors(err))
			return
		}

		counterpartyID, err := pkg.ParseULID(body.CounterpartyID)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("counterparty_id", "has invalid format"))
			return
		}

		inv, err := h.LedgerService.CreateInvoice(c.Request.Context(), &ledger.CreateInvoiceRequest{
			Pipeline:       pipeline,
			CounterpartyId: counterpartyID,
			DocumentNumber: body.DocumentNumber,
			TotalAmount:    body.TotalAmount,
			IssueDate:      body.IssueDate,
			Notes:          body.Notes,
		})
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, contracts.InvoiceResponse{Invoice: inv})
	}
}

func (h *Handler) ListInvoices(pipeline ledger.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		pagination := h.parsePagination(c)

		if counterparty := c.Query("counterparty_id"); counterparty != "" {
			counterpartyID, err := pkg.ParseULID(counterparty)
			if err != nil {
				h.respondError(c, appErrors.NewValidationError("counterparty_id", "has invalid format"))
				return
			}
			invoices, total, err := h.LedgerService.ListInvoicesByCounterparty(c.Request.Context(), pipeline, counterpartyID, pagination)
			if err != nil {
				h.respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, pkg.NewPaginatedResponse(invoices, pagination.Page, pagination.Limit, total))
			return
		}

		invoices, total, err := h.LedgerService.ListInvoices(c.Request.Context(), pipeline, pagination)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, pkg.NewPaginatedResponse(invoices, pagination.Page, pagination.Limit, total))
	}
}

func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	detail, err := h.LedgerService.GetInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *Handler) UpdateInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	inv, err := h.LedgerService.UpdateInvoice(c.Request.Context(), invoiceID, &ledger.UpdateInvoiceRequest{
		TotalAmount: body.TotalAmount,
		PaidAmount:  body.PaidAmount,
		IssueDate:   body.IssueDate,
		Notes:       body.Notes,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Invoice: inv})
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	if err := h.LedgerService.DeleteInvoice(c.Request.Context(), invoiceID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted successfully"})
}

func (h *Handler) ReconcileInvoice(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	inv, err := h.LedgerService.ReconcileInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Invoice: inv})
}

func (h *Handler) AddItem(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.ItemCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	item, inv, err := h.LedgerService.AddItem(c.Request.Context(), invoiceID, &ledger.ItemRequest{
		Date:        body.Date,
		Name:        body.Name,
		Amount:      body.Amount,
		Description: body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ItemMutationResponse{Item: item, Invoice: inv})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	itemID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.ItemUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	item, inv, err := h.LedgerService.UpdateItem(c.Request.Context(), itemID, &ledger.ItemPatch{
		Date:        body.Date,
		Name:        body.Name,
		Amount:      body.Amount,
		Description: body.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemMutationResponse{Item: item, Invoice: inv})
}

func (h *Handler) DeleteItem(c *gin.Context) {
	itemID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	inv, err := h.LedgerService.DeleteItem(c.Request.Context(), itemID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Invoice: inv})
}

func (h *Handler) ListItems(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	items, err := h.LedgerService.ListItems(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ItemListResponse{Items: items})
}

func (h *Handler) AddPayment(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.PaymentCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	payment, inv, err := h.LedgerService.AddPayment(c.Request.Context(), invoiceID, &ledger.PaymentRequest{
		Date:      body.Date,
		Amount:    body.Amount,
		Method:    ledger.PaymentMethod(body.Method),
		Reference: body.Reference,
		Note:      body.Note,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.PaymentMutationResponse{Payment: payment, Invoice: inv})
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	paymentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.PaymentUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	patch := &ledger.PaymentPatch{
		Date:      body.Date,
		Amount:    body.Amount,
		Reference: body.Reference,
		Note:      body.Note,
	}
	if body.Method != nil {
		method := ledger.PaymentMethod(*body.Method)
		patch.Method = &method
	}

	payment, inv, err := h.LedgerService.UpdatePayment(c.Request.Context(), paymentID, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentMutationResponse{Payment: payment, Invoice: inv})
}

func (h *Handler) DeletePayment(c *gin.Context) {
	paymentID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	inv, err := h.LedgerService.DeletePayment(c.Request.Context(), paymentID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.InvoiceResponse{Invoice: inv})
}

func (h *Handler) ListPayments(c *gin.Context) {
	invoiceID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	payments, err := h.LedgerService.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.PaymentListResponse{Payments: payments})
}
