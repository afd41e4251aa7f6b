package handler

import (
	"net/http"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/amowaisusmani/student-management-backend/internal/response"
	"github.com/amowaisusmani/student-management-backend/internal/service"
	"github.com/amowaisusmani/student-management-backend/internal/validator"
	"github.com/gin-gonic/gin"
)

// ResultHandler handles exam result CRUD.
type ResultHandler struct {
	resultService *service.ResultService
}

// NewResultHandler creates a new ResultHandler.
func NewResultHandler(resultService *service.ResultService) *ResultHandler {
	return &ResultHandler{resultService: resultService}
}

// List godoc
// GET /api/v1/results
// Lists results with joined student and exam detail, optionally filtered
// by exam_id and/or student_id.
func (h *ResultHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "0"))
	examID, _ := strconv.ParseInt(c.Query("exam_id"), 10, 64)
	studentID, _ := strconv.ParseInt(c.Query("student_id"), 10, 64)

	records, pagination, err := h.resultService.List(c.Request.Context(), examID, studentID, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"results": records}, pagination)
}

// Create godoc
// POST /api/v1/results
// Records marks. The store does not check marks_obtained against
// total_marks, nor that the referenced student/exam exist.
func (h *ResultHandler) Create(c *gin.Context) {
	var req model.CreateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		StudentID:     req.StudentID,
		ExamID:        req.ExamID,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}

	if err := h.resultService.Create(c.Request.Context(), result); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"result": result})
}

// Update godoc
// PUT /api/v1/results/:id
func (h *ResultHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	result := &model.Result{
		ID:            id,
		StudentID:     req.StudentID,
		ExamID:        req.ExamID,
		MarksObtained: req.MarksObtained,
		TotalMarks:    req.TotalMarks,
	}

	affected, err := h.resultService.Update(c.Request.Context(), result)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if affected == 0 {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	updated, _ := h.resultService.GetByID(c.Request.Context(), id)
	response.Success(c, http.StatusOK, gin.H{"result": updated})
}

// Delete godoc
// DELETE /api/v1/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	affected, err := h.resultService.Delete(c.Request.Context(), id)
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
