package repository

import (
	"context"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnrollmentRepository handles enrollment data access.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// GetByID retrieves an enrollment by ID.
func (r *EnrollmentRepository) GetByID(ctx context.Context, id int64) (*model.Enrollment, error) {
	e := &model.Enrollment{}
	err := r.pool.QueryRow(ctx,
		`SELECT enrollment_id, student_id, course_id, created_at, updated_at
		 FROM enrollments WHERE enrollment_id = $1`, id,
	).Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListPaginated retrieves enrollments ordered by primary key, joined with
// student identity and optionally filtered by course and/or student. The
// join is LEFT because references are advisory: an enrollment may point at
// a deleted student, in which case the identity columns come back empty.
func (r *EnrollmentRepository) ListPaginated(ctx context.Context, courseID, studentID int64, limit, offset int) ([]model.EnrollmentRecord, int, error) {
	where := ``
	var args []interface{}
	if courseID > 0 {
		where = ` WHERE e.course_id = $1`
		args = append(args, courseID)
	}
	if studentID > 0 {
		if where == "" {
			where = ` WHERE e.student_id = $1`
		} else {
			where += ` AND e.student_id = $2`
		}
		args = append(args, studentID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM enrollments e`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query := `SELECT e.enrollment_id, e.student_id, e.course_id, e.created_at, e.updated_at,
		 COALESCE(s.roll_no, ''), COALESCE(s.first_name, ''), COALESCE(s.last_name, '')
		 FROM enrollments e LEFT JOIN students s ON s.student_id = e.student_id` + where +
		` ORDER BY e.enrollment_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []model.EnrollmentRecord
	for rows.Next() {
		var rec model.EnrollmentRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.CourseID, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.RollNo, &rec.FirstName, &rec.LastName); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// All retrieves every enrollment ordered by primary key. Used by CSV export.
func (r *EnrollmentRepository) All(ctx context.Context) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT enrollment_id, student_id, course_id, created_at, updated_at
		 FROM enrollments ORDER BY enrollment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// Create inserts a new enrollment. The student/course pair is unique; the
// referenced rows are not checked for existence (no foreign keys).
func (r *EnrollmentRepository) Create(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)
		 RETURNING enrollment_id, created_at, updated_at`,
		e.StudentID, e.CourseID,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if uniqueViolation(err, "uq_enrollments_student_course") {
		return ErrDuplicateEnrollment
	}
	return err
}

// Delete removes an enrollment by primary key and returns the affected-row
// count.
func (r *EnrollmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM enrollments WHERE enrollment_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
