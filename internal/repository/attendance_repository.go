package repository

import (
	"context"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttendanceRepository handles attendance data access.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// GetByID retrieves an attendance mark by ID.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*model.Attendance, error) {
	a := &model.Attendance{}
	err := r.pool.QueryRow(ctx,
		`SELECT attendance_id, student_id, course_id, status, attendance_date, created_at, updated_at
		 FROM attendance WHERE attendance_id = $1`, id,
	).Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Status, &a.Date, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListPaginated retrieves attendance marks ordered by primary key, joined
// with student identity, optionally narrowed by course, student and an
// inclusive date range.
func (r *AttendanceRepository) ListPaginated(ctx context.Context, f model.AttendanceFilter, limit, offset int) ([]model.AttendanceRecord, int, error) {
	where := ``
	var args []interface{}

	appendClause := func(clause string, arg interface{}) {
		if where == "" {
			where = ` WHERE ` + clause
		} else {
			where += ` AND ` + clause
		}
		args = append(args, arg)
	}

	if f.CourseID > 0 {
		appendClause(`a.course_id = $`+strconv.Itoa(len(args)+1), f.CourseID)
	}
	if f.StudentID > 0 {
		appendClause(`a.student_id = $`+strconv.Itoa(len(args)+1), f.StudentID)
	}
	if f.DateFrom != nil {
		appendClause(`a.attendance_date >= $`+strconv.Itoa(len(args)+1), *f.DateFrom)
	}
	if f.DateTo != nil {
		appendClause(`a.attendance_date <= $`+strconv.Itoa(len(args)+1), *f.DateTo)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM attendance a`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query := `SELECT a.attendance_id, a.student_id, a.course_id, a.status, a.attendance_date, a.created_at, a.updated_at,
		 COALESCE(s.roll_no, ''), COALESCE(s.first_name, ''), COALESCE(s.last_name, '')
		 FROM attendance a LEFT JOIN students s ON s.student_id = a.student_id` + where +
		` ORDER BY a.attendance_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []model.AttendanceRecord
	for rows.Next() {
		var rec model.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.CourseID, &rec.Status, &rec.Date, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.RollNo, &rec.FirstName, &rec.LastName); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// All retrieves every attendance mark ordered by primary key. Used by CSV
// export.
func (r *AttendanceRepository) All(ctx context.Context) ([]model.Attendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT attendance_id, student_id, course_id, status, attendance_date, created_at, updated_at
		 FROM attendance ORDER BY attendance_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var marks []model.Attendance
	for rows.Next() {
		var a model.Attendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.CourseID, &a.Status, &a.Date, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		marks = append(marks, a)
	}
	return marks, rows.Err()
}

// Create inserts a new attendance mark. Duplicate marks for the same
// student/course/date are allowed by design.
func (r *AttendanceRepository) Create(ctx context.Context, a *model.Attendance) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attendance (student_id, course_id, status, attendance_date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING attendance_id, created_at, updated_at`,
		a.StudentID, a.CourseID, a.Status, a.Date,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// Update modifies an attendance mark by primary key and returns the
// affected-row count.
func (r *AttendanceRepository) Update(ctx context.Context, a *model.Attendance) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE attendance SET student_id = $1, course_id = $2, status = $3, attendance_date = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE attendance_id = $5`,
		a.StudentID, a.CourseID, a.Status, a.Date, a.ID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes an attendance mark by primary key and returns the
// affected-row count.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendance WHERE attendance_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
