package model

import "time"

// Gender is the declared gender of a student.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Valid returns true when the gender is a supported value.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	default:
		return false
	}
}

// Student represents a registered student.
type Student struct {
	ID          int64     `json:"student_id"`
	RollNo      string    `json:"roll_no"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Gender      Gender    `json:"gender"`
	DOB         time.Time `json:"dob"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	AddressLine string    `json:"address_line"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateStudentRequest is the payload for registering a new student.
// All fields are required; phone is the custom 10-digit rule.
type CreateStudentRequest struct {
	RollNo      string `json:"roll_no" binding:"required,max=20"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Gender      Gender `json:"gender" binding:"required,oneof=Male Female Other"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
	Phone       string `json:"phone" binding:"required,phone"`
	Email       string `json:"email" binding:"required,email,max=100"`
	AddressLine string `json:"address_line" binding:"required,max=255"`
}

// UpdateStudentRequest is the payload for updating an existing student.
// Updates re-run the exact validation rules used on create.
type UpdateStudentRequest struct {
	RollNo      string `json:"roll_no" binding:"required,max=20"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	Gender      Gender `json:"gender" binding:"required,oneof=Male Female Other"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
	Phone       string `json:"phone" binding:"required,phone"`
	Email       string `json:"email" binding:"required,email,max=100"`
	AddressLine string `json:"address_line" binding:"required,max=255"`
}
