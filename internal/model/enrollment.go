package model

import "time"

// Enrollment links a student to a course. The link is advisory only:
// there are no foreign keys, so either side may not exist.
type Enrollment struct {
	ID        int64     `json:"enrollment_id"`
	StudentID int64     `json:"student_id"`
	CourseID  int64     `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EnrollmentRecord extends an enrollment with student identity for listings.
// Rows whose student no longer exists carry empty identity fields.
type EnrollmentRecord struct {
	Enrollment
	RollNo    string `json:"roll_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CreateEnrollmentRequest is the payload for enrolling a student in a course.
type CreateEnrollmentRequest struct {
	StudentID int64 `json:"student_id" binding:"required,gt=0"`
	CourseID  int64 `json:"course_id" binding:"required,gt=0"`
}
