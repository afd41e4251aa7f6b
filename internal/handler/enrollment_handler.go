package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/repository"
	"github.com/amowaisusmani/student-management-backend/internal/response"
	"github.com/amowaisusmani/student-management-backend/internal/service"
	"github.com/amowaisusmani/student-management-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// EnrollmentHandler handles enrollment listing, creation and removal.
type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler.
func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// List godoc
// GET /api/v1/enrollments
// Lists enrollments with student identity, optionally filtered by
// course_id and/or student_id.
func (h *EnrollmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))
	courseID, _ := strconv.ParseInt(c.Query("course_id"), 10, 64)
	studentID, _ := strconv.ParseInt(c.Query("student_id"), 10, 64)

	records, pagination, err := h.enrollmentService.List(c.Request.Context(), courseID, studentID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"enrollments": records}, pagination)
}

// Create godoc
// POST /api/v1/enrollments
// Enrolls a student in a course. The pair must be unique; neither side is
// checked for existence.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req model.CreateEnrollmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment := &model.Enrollment{StudentID: req.StudentID, CourseID: req.CourseID}

	if err := h.enrollmentService.Create(c.Request.Context(), enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicateEnrollment) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// Delete godoc
// DELETE /api/v1/enrollments/:id
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	affected, err := h.enrollmentService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": affected})
}
