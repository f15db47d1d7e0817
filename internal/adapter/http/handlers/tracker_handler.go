package handlers

import (
	"errors"
	"net/http"

	request "fitmarket/internal/adapter/http/dto/request"
	"fitmarket/internal/usecase"
	"fitmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTrackerPayload = pkg.NewDomainErrorSimple("INVALID_TRACKER_INPUT", "Invalid tracker payload", http.StatusBadRequest)
)

// TrackerHandler handles the per-user calorie tracker. Every route is
// scoped to the authenticated user id placed in the context by the auth
// middleware.

type TrackerHandler struct {
	usecase usecase.ITrackerUseCase
}

func NewTrackerHandler(uc usecase.ITrackerUseCase) *TrackerHandler {
	return &TrackerHandler{usecase: uc}
}

func (h *TrackerHandler) Today(c *gin.Context) {
	day, err := h.usecase.Today(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		appErr := mapTrackerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *TrackerHandler) AddMeal(c *gin.Context) {
	var payload request.AddMealRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackerPayload.HTTPStatus, errInvalidTrackerPayload.ToHTTPError())
		return
	}

	day, err := h.usecase.AddMeal(c.Request.Context(), c.GetString("user_id"), payload.ToEntity())
	if err != nil {
		appErr := mapTrackerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, day)
}

func (h *TrackerHandler) RemoveMeal(c *gin.Context) {
	day, err := h.usecase.RemoveMeal(c.Request.Context(), c.GetString("user_id"), c.Param("mealId"))
	if err != nil {
		appErr := mapTrackerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, day)
}

func (h *TrackerHandler) SetGoal(c *gin.Context) {
	var payload request.SetGoalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTrackerPayload.HTTPStatus, errInvalidTrackerPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SetGoal(c.Request.Context(), c.GetString("user_id"), payload.Goal); err != nil {
		appErr := mapTrackerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *TrackerHandler) History(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		appErr := mapTrackerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, history)
}

func mapTrackerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackerInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMealNotFound):
		return pkg.NewDomainErrorSimple("MEAL_NOT_FOUND", "Meal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
