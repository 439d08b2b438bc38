package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/contracts"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/customer"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

func (h *Handler) CreateCustomer(c *gin.Context) {
	var body contracts.CustomerCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	created, err := h.CustomerService.Create(c.Request.Context(), &customer.CreateCustomerRequest{
		Name:  body.Name,
		Phone: body.Phone,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CustomerResponse{Customer: created})
}

func (h *Handler) ListCustomers(c *gin.Context) {
	pagination := h.parsePagination(c)

	customers, total, err := h.CustomerService.List(c.Request.Context(), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(customers, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	found, err := h.CustomerService.GetById(c.Request.Context(), customerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CustomerResponse{Customer: found})
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	updated, err := h.CustomerService.Update(c.Request.Context(), customerID, &customer.UpdateCustomerRequest{
		Name:     body.Name,
		Phone:    body.Phone,
		IsActive: body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CustomerResponse{Customer: updated})
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	customerID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	if err := h.CustomerService.Delete(c.Request.Context(), customerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
