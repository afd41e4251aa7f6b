package model

import "time"

// Course represents a course offering.
type Course struct {
	ID         int64     `json:"course_id"`
	CourseName string    `json:"course_name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCourseRequest is the payload for creating a new course.
type CreateCourseRequest struct {
	CourseName string `json:"course_name" binding:"required,max=100"`
}

// UpdateCourseRequest is the payload for renaming a course.
type UpdateCourseRequest struct {
	CourseName string `json:"course_name" binding:"required,max=100"`
}
