package handlers

import (
	"errors"
	"net/http"

	request "fitmarket/internal/adapter/http/dto/request"
	"fitmarket/internal/domain/entities"
	"fitmarket/internal/usecase"
	"fitmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidGymPayload = pkg.NewDomainErrorSimple("INVALID_GYM_INPUT", "Invalid gym payload", http.StatusBadRequest)
)

// GymHandler handles HTTP requests for partner gyms.

type GymHandler struct {
	usecase usecase.IGymUseCase
}

func NewGymHandler(uc usecase.IGymUseCase) *GymHandler {
	return &GymHandler{usecase: uc}
}

func (h *GymHandler) CreateGym(c *gin.Context) {
	var payload request.CreateGymRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGymPayload.HTTPStatus, errInvalidGymPayload.ToHTTPError())
		return
	}

	gym, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapGymError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gym)
}

func (h *GymHandler) GetGym(c *gin.Context) {
	gym, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGymError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) ListGyms(c *gin.Context) {
	filter := entities.GymFilter{
		Status: entities.GymStatus(c.Query("status")),
		Plan:   entities.GymPlan(c.Query("plan")),
		Search: c.Query("search"),
	}

	gyms, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapGymError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gyms)
}

func (h *GymHandler) UpdateGym(c *gin.Context) {
	var payload request.UpdateGymRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidGymPayload.HTTPStatus, errInvalidGymPayload.ToHTTPError())
		return
	}

	gym, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapGymError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gym)
}

func (h *GymHandler) DeleteGym(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapGymError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func mapGymError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGymID), errors.Is(err, usecase.ErrInvalidGymInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGymNotFound):
		return pkg.NewDomainErrorSimple("GYM_NOT_FOUND", "Gym not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
