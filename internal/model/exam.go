package model

import "time"

// ExamType represents the kind of exam.
type ExamType string

const (
	ExamHalfYearly ExamType = "Half Yearly"
	ExamFinalTerm  ExamType = "Final Term"
)

// Valid returns true when the exam type is a supported value.
func (t ExamType) Valid() bool {
	switch t {
	case ExamHalfYearly, ExamFinalTerm:
		return true
	default:
		return false
	}
}

// Exam represents a scheduled exam for a course.
type Exam struct {
	ID        int64     `json:"exam_id"`
	CourseID  int64     `json:"course_id"`
	ExamType  ExamType  `json:"exam_type"`
	ExamDate  time.Time `json:"exam_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateExamRequest is the payload for scheduling an exam.
type CreateExamRequest struct {
	CourseID int64    `json:"course_id" binding:"required,gt=0"`
	ExamType ExamType `json:"exam_type" binding:"required,oneof='Half Yearly' 'Final Term'"`
	ExamDate string   `json:"exam_date" binding:"required,datetime=2006-01-02"`
}

// UpdateExamRequest is the payload for rescheduling an exam.
type UpdateExamRequest struct {
	CourseID int64    `json:"course_id" binding:"required,gt=0"`
	ExamType ExamType `json:"exam_type" binding:"required,oneof='Half Yearly' 'Final Term'"`
	ExamDate string   `json:"exam_date" binding:"required,datetime=2006-01-02"`
}
