package handlers

import (
	"net/http"

	"fitmarket/internal/usecase"
	"fitmarket/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administrator dashboard aggregates.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) PlatformStats(c *gin.Context) {
	stats, err := h.usecase.PlatformStats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}
