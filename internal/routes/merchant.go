package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/contracts"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/domain/merchant"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
	"github.com/vaishnaviugal12/Buisness-Management-System/internal/pkg"
)

func (h *Handler) CreateMerchant(c *gin.Context) {
	var body contracts.MerchantCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	created, err := h.MerchantService.Create(c.Request.Context(), &merchant.CreateMerchantRequest{
		Name:        body.Name,
		Number:      body.Number,
		Phone:       body.Phone,
		BankAccount: body.BankAccount,
		IfscCode:    body.IfscCode,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.MerchantResponse{Merchant: created})
}

func (h *Handler) ListMerchants(c *gin.Context) {
	pagination := h.parsePagination(c)

	merchants, total, err := h.MerchantService.List(c.Request.Context(), pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(merchants, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetMerchant(c *gin.Context) {
	merchantID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	found, err := h.MerchantService.GetById(c.Request.Context(), merchantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MerchantResponse{Merchant: found})
}

func (h *Handler) UpdateMerchant(c *gin.Context) {
	merchantID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	var body contracts.MerchantUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	updated, err := h.MerchantService.Update(c.Request.Context(), merchantID, &merchant.UpdateMerchantRequest{
		Name:        body.Name,
		Number:      body.Number,
		Phone:       body.Phone,
		BankAccount: body.BankAccount,
		IfscCode:    body.IfscCode,
		IsActive:    body.IsActive,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MerchantResponse{Merchant: updated})
}

func (h *Handler) DeleteMerchant(c *gin.Context) {
	merchantID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "has invalid format"))
		return
	}

	if err := h.MerchantService.Delete(c.Request.Context(), merchantID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Merchant deleted successfully"})
}
