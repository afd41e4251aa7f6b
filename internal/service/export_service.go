package service

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/export"
	"github.com/rs/zerolog"
)

// ErrUnknownEntity is returned for an export entity name this service does
// not know.
var ErrUnknownEntity = errors.New("unknown export entity")

const dateLayout = "2006-01-02"

// ExportService renders full entity row sets as CSV, one entity type per
// file.
type ExportService struct {
	students    *StudentService
	courses     *CourseService
	enrollments *EnrollmentService
	attendance  *AttendanceService
	exams       *ExamService
	results     *ResultService
	log         zerolog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(
	students *StudentService,
	courses *CourseService,
	enrollments *EnrollmentService,
	attendance *AttendanceService,
	exams *ExamService,
	results *ResultService,
	log zerolog.Logger,
) *ExportService {
	return &ExportService{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		attendance:  attendance,
		exams:       exams,
		results:     results,
		log:         log.With().Str("component", "export_service").Logger(),
	}
}

// Export streams the named entity's full row set as CSV to w.
func (s *ExportService) Export(ctx context.Context, entity string, w io.Writer) error {
	columns, rows, err := s.table(ctx, entity)
	if err != nil {
		return err
	}

	s.log.Debug().Str("entity", entity).Int("rows", len(rows)).Msg("exporting CSV")
	return export.Write(w, columns, rows)
}

// ExportFile writes the named entity's full row set as CSV to the file at
// path.
func (s *ExportService) ExportFile(ctx context.Context, entity, path string) error {
	columns, rows, err := s.table(ctx, entity)
	if err != nil {
		return err
	}
	return export.WriteFile(path, columns, rows)
}

// table materializes the column list and stringified rows for one entity,
// ordered by primary key.
func (s *ExportService) table(ctx context.Context, entity string) ([]string, [][]string, error) {
	switch entity {
	case "students":
		students, err := s.students.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"student_id", "roll_no", "first_name", "last_name", "gender", "dob", "phone", "email", "address_line"}
		rows := make([][]string, 0, len(students))
		for _, st := range students {
			rows = append(rows, []string{
				strconv.FormatInt(st.ID, 10), st.RollNo, st.FirstName, st.LastName,
				string(st.Gender), st.DOB.Format(dateLayout), st.Phone, st.Email, st.AddressLine,
			})
		}
		return columns, rows, nil

	case "courses":
		courses, err := s.courses.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"course_id", "course_name"}
		rows := make([][]string, 0, len(courses))
		for _, c := range courses {
			rows = append(rows, []string{strconv.FormatInt(c.ID, 10), c.CourseName})
		}
		return columns, rows, nil

	case "enrollments":
		enrollments, err := s.enrollments.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"enrollment_id", "student_id", "course_id"}
		rows := make([][]string, 0, len(enrollments))
		for _, e := range enrollments {
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10), strconv.FormatInt(e.StudentID, 10), strconv.FormatInt(e.CourseID, 10),
			})
		}
		return columns, rows, nil

	case "attendance":
		marks, err := s.attendance.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"attendance_id", "student_id", "course_id", "status", "attendance_date"}
		rows := make([][]string, 0, len(marks))
		for _, a := range marks {
			rows = append(rows, []string{
				strconv.FormatInt(a.ID, 10), strconv.FormatInt(a.StudentID, 10), strconv.FormatInt(a.CourseID, 10),
				string(a.Status), a.Date.Format(dateLayout),
			})
		}
		return columns, rows, nil

	case "exams":
		exams, err := s.exams.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"exam_id", "course_id", "exam_type", "exam_date"}
		rows := make([][]string, 0, len(exams))
		for _, e := range exams {
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10), strconv.FormatInt(e.CourseID, 10),
				string(e.ExamType), e.ExamDate.Format(dateLayout),
			})
		}
		return columns, rows, nil

	case "results":
		results, err := s.results.All(ctx)
		if err != nil {
			return nil, nil, err
		}
		columns := []string{"result_id", "student_id", "exam_id", "marks_obtained", "total_marks"}
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			rows = append(rows, []string{
				strconv.FormatInt(res.ID, 10), strconv.FormatInt(res.StudentID, 10), strconv.FormatInt(res.ExamID, 10),
				strconv.FormatFloat(res.MarksObtained, 'f', 2, 64), strconv.FormatFloat(res.TotalMarks, 'f', 2, 64),
			})
		}
		return columns, rows, nil
	}

	return nil, nil, ErrUnknownEntity
}
