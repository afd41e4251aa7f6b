package model

import "time"

// AttendanceStatus represents the status for attendance records.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

// Valid returns true when the status is a supported value.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent:
		return true
	default:
		return false
	}
}

// Attendance is a single attendance mark. One row per student/course/date
// is not enforced unique — duplicates are possible by design.
type Attendance struct {
	ID        int64            `json:"attendance_id"`
	StudentID int64            `json:"student_id"`
	CourseID  int64            `json:"course_id"`
	Status    AttendanceStatus `json:"status"`
	Date      time.Time        `json:"attendance_date"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// AttendanceRecord extends an attendance mark with student identity.
type AttendanceRecord struct {
	Attendance
	RollNo    string `json:"roll_no"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	CourseID  int64
	StudentID int64
	DateFrom  *time.Time
	DateTo    *time.Time
}

// CreateAttendanceRequest is the payload for marking attendance.
type CreateAttendanceRequest struct {
	StudentID int64            `json:"student_id" binding:"required,gt=0"`
	CourseID  int64            `json:"course_id" binding:"required,gt=0"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
	Date      string           `json:"attendance_date" binding:"required,datetime=2006-01-02"`
}

// UpdateAttendanceRequest is the payload for correcting a mark.
type UpdateAttendanceRequest struct {
	StudentID int64            `json:"student_id" binding:"required,gt=0"`
	CourseID  int64            `json:"course_id" binding:"required,gt=0"`
	Status    AttendanceStatus `json:"status" binding:"required,oneof=Present Absent"`
	Date      string           `json:"attendance_date" binding:"required,datetime=2006-01-02"`
}
