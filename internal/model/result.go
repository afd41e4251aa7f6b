package model

import "time"

// Result holds the marks a student obtained in an exam. The store does not
// enforce marks_obtained <= total_marks.
type Result struct {
	ID            int64     `json:"result_id"`
	StudentID     int64     `json:"student_id"`
	ExamID        int64     `json:"exam_id"`
	MarksObtained float64   `json:"marks_obtained"`
	TotalMarks    float64   `json:"total_marks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ResultRecord extends a result with student identity and exam metadata.
type ResultRecord struct {
	Result
	RollNo     string    `json:"roll_no"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	CourseName string    `json:"course_name"`
	ExamType   ExamType  `json:"exam_type"`
	ExamDate   time.Time `json:"exam_date"`
}

// CreateResultRequest is the payload for recording exam marks.
type CreateResultRequest struct {
	StudentID     int64   `json:"student_id" binding:"required,gt=0"`
	ExamID        int64   `json:"exam_id" binding:"required,gt=0"`
	MarksObtained float64 `json:"marks_obtained" binding:"gte=0"`
	TotalMarks    float64 `json:"total_marks" binding:"required,gt=0"`
}

// UpdateResultRequest is the payload for correcting recorded marks.
type UpdateResultRequest struct {
	StudentID     int64   `json:"student_id" binding:"required,gt=0"`
	ExamID        int64   `json:"exam_id" binding:"required,gt=0"`
	MarksObtained float64 `json:"marks_obtained" binding:"gte=0"`
	TotalMarks    float64 `json:"total_marks" binding:"required,gt=0"`
}
