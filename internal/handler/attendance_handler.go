package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/response"
	"github.com/amowaisusmani/student-management-backend/internal/service"
	"github.com/amowaisusmani/student-management-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// AttendanceHandler handles attendance marking and listing.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// List godoc
// GET /api/v1/attendance
// Lists attendance marks with student identity, optionally narrowed by
// course_id, student_id and an inclusive date range (from/to, YYYY-MM-DD).
func (h *AttendanceHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))

	var f model.AttendanceFilter
	f.CourseID, _ = strconv.ParseInt(c.Query("course_id"), 10, 64)
	f.StudentID, _ = strconv.ParseInt(c.Query("student_id"), 10, 64)

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"from": "must be a date in YYYY-MM-DD format"})
			return
		}
		f.DateFrom = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"to": "must be a date in YYYY-MM-DD format"})
			return
		}
		f.DateTo = &t
	}

	records, pagination, err := h.attendanceService.List(c.Request.Context(), f, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"attendance": records}, pagination)
}

// Create godoc
// POST /api/v1/attendance
// Records an attendance mark. A second mark for the same student, course
// and date is accepted — the store keeps duplicates by design.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	date, _ := time.Parse(dateLayout, req.Date) // Format guaranteed by binding

	mark := &model.Attendance{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    req.Status,
		Date:      date,
	}

	if err := h.attendanceService.Create(c.Request.Context(), mark); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"attendance": mark})
}

// Update godoc
// PUT /api/v1/attendance/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	date, _ := time.Parse(dateLayout, req.Date)

	mark := &model.Attendance{
		ID:        id,
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		Status:    req.Status,
		Date:      date,
	}

	affected, err := h.attendanceService.Update(c.Request.Context(), mark)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	updated, _ := h.attendanceService.GetByID(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"attendance": updated})
}

// Delete godoc
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	affected, err := h.attendanceService.Delete(c.Request.Context(), id)
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
