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
	errInvalidWorkoutPayload = pkg.NewDomainErrorSimple("INVALID_WORKOUT_INPUT", "Invalid workout payload", http.StatusBadRequest)
)

// WorkoutHandler handles HTTP requests for partner workout plans.

type WorkoutHandler struct {
	usecase usecase.IWorkoutUseCase
}

func NewWorkoutHandler(uc usecase.IWorkoutUseCase) *WorkoutHandler {
	return &WorkoutHandler{usecase: uc}
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var payload request.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkoutPayload.HTTPStatus, errInvalidWorkoutPayload.ToHTTPError())
		return
	}

	workout, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workout, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	filter := entities.WorkoutFilter{
		PartnerID: c.Query("partner_id"),
		StudentID: c.Query("student_id"),
		Search:    c.Query("search"),
	}

	workouts, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	var payload request.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkoutPayload.HTTPStatus, errInvalidWorkoutPayload.ToHTTPError())
		return
	}

	workout, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// AssignWorkout ties the workout to a student of the same partner.
func (h *WorkoutHandler) AssignWorkout(c *gin.Context) {
	var payload request.AssignWorkoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkoutPayload.HTTPStatus, errInvalidWorkoutPayload.ToHTTPError())
		return
	}

	workout, err := h.usecase.Assign(c.Request.Context(), c.Param("id"), payload.StudentID, payload.StudentName)
	if err != nil {
		appErr := mapWorkoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, workout)
}

func mapWorkoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkoutID), errors.Is(err, usecase.ErrInvalidWorkoutInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkoutNotFound):
		return pkg.NewDomainErrorSimple("WORKOUT_NOT_FOUND", "Workout not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
