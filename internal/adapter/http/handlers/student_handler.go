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
	errInvalidStudentPayload = pkg.NewDomainErrorSimple("INVALID_STUDENT_INPUT", "Invalid student payload", http.StatusBadRequest)
)

// StudentHandler handles HTTP requests for a partner's students.

type StudentHandler struct {
	usecase usecase.IStudentUseCase
}

func NewStudentHandler(uc usecase.IStudentUseCase) *StudentHandler {
	return &StudentHandler{usecase: uc}
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var payload request.CreateStudentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	student, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapStudentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, student)
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	student, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapStudentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) ListStudents(c *gin.Context) {
	filter := entities.StudentFilter{
		PartnerID: c.Query("partner_id"),
		Status:    entities.StudentStatus(c.Query("status")),
		Search:    c.Query("search"),
	}

	students, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		appErr := mapStudentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, students)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	var payload request.UpdateStudentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStudentPayload.HTTPStatus, errInvalidStudentPayload.ToHTTPError())
		return
	}

	student, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapStudentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, student)
}

func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapStudentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func mapStudentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStudentID), errors.Is(err, usecase.ErrInvalidStudentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStudentNotFound):
		return pkg.NewDomainErrorSimple("STUDENT_NOT_FOUND", "Student not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
