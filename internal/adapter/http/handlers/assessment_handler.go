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
	errInvalidAssessmentPayload = pkg.NewDomainErrorSimple("INVALID_ASSESSMENT_INPUT", "Invalid assessment payload", http.StatusBadRequest)
)

// AssessmentHandler handles HTTP requests for physical assessments.

type AssessmentHandler struct {
	usecase usecase.IAssessmentUseCase
}

func NewAssessmentHandler(uc usecase.IAssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{usecase: uc}
}

func (h *AssessmentHandler) CreateAssessment(c *gin.Context) {
	var payload request.CreateAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	assessment, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, assessment)
}

func (h *AssessmentHandler) GetAssessment(c *gin.Context) {
	assessment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) ListAssessments(c *gin.Context) {
	filter := entities.AssessmentFilter{
		PartnerID: c.Query("partner_id"),
		StudentID: c.Query("student_id"),
	}

	assessments, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (h *AssessmentHandler) UpdateAssessment(c *gin.Context) {
	var payload request.UpdateAssessmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAssessmentPayload.HTTPStatus, errInvalidAssessmentPayload.ToHTTPError())
		return
	}

	assessment, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, assessment)
}

func (h *AssessmentHandler) DeleteAssessment(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// StudentHistory lists the student's assessments oldest first, so the
// evolution of weight and body-mass index reads chronologically.
func (h *AssessmentHandler) StudentHistory(c *gin.Context) {
	history, err := h.usecase.HistoryByStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		appErr := mapAssessmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, history)
}

func mapAssessmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssessmentID), errors.Is(err, usecase.ErrInvalidAssessmentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssessmentNotFound):
		return pkg.NewDomainErrorSimple("ASSESSMENT_NOT_FOUND", "Assessment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
