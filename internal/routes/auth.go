package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vaishnaviugal12/Buisness-Management-System/internal/contracts"
	appErrors "github.com/vaishnaviugal12/Buisness-Management-System/internal/errors"
)

// Login godoc
// @Summary Authenticate the shop operator
// @Tags auth
// @Accept json
// @Produce json
// @Param body body contracts.LoginRequest true "Credentials"
// @Success 200 {object} contracts.LoginResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var body contracts.LoginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	token, err := h.AuthService.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.LoginResponse{Token: token})
}

// Verify godoc
// @Summary Confirm the presented token is still valid
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} contracts.VerifyResponse
// @Router /auth/verify [get]
func (h *Handler) Verify(c *gin.Context) {
	// Reaching this handler means the auth middleware accepted the token.
	c.JSON(http.StatusOK, contracts.VerifyResponse{Valid: true, Message: "Token is valid"})
}
