package repository

import (
	"context"
	"strconv"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

const studentColumns = `student_id, roll_no, first_name, last_name, gender, dob, phone, email, address_line, created_at, updated_at`

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE student_id = $1`, id,
	).Scan(&s.ID, &s.RollNo, &s.FirstName, &s.LastName, &s.Gender, &s.DOB, &s.Phone, &s.Email, &s.AddressLine, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ListPaginated retrieves students ordered by primary key with pagination
// and an optional search term matched against roll number, names, phone
// and email.
func (r *StudentRepository) ListPaginated(ctx context.Context, q string, limit, offset int) ([]model.Student, int, error) {
	where := ``
	var args []interface{}
	if q != "" {
		where = ` WHERE roll_no ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1 OR phone ILIKE $1 OR email ILIKE $1`
		args = append(args, "%"+q+"%")
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query := `SELECT ` + studentColumns + ` FROM students` + where +
		` ORDER BY student_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.RollNo, &s.FirstName, &s.LastName, &s.Gender, &s.DOB, &s.Phone, &s.Email, &s.AddressLine, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// All retrieves every student ordered by primary key. Used by CSV export.
func (r *StudentRepository) All(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.RollNo, &s.FirstName, &s.LastName, &s.Gender, &s.DOB, &s.Phone, &s.Email, &s.AddressLine, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// Create inserts a new student and fills in the generated identifier.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (roll_no, first_name, last_name, gender, dob, phone, email, address_line)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING student_id, created_at, updated_at`,
		s.RollNo, s.FirstName, s.LastName, s.Gender, s.DOB, s.Phone, s.Email, s.AddressLine,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	switch {
	case uniqueViolation(err, "uq_students_roll_no"):
		return ErrDuplicateRollNo
	case uniqueViolation(err, "uq_students_email"):
		return ErrDuplicateEmail
	}
	return err
}

// Update modifies a student by primary key and returns the affected-row
// count. Zero means the id did not exist; that is not an error here.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET roll_no = $1, first_name = $2, last_name = $3, gender = $4, dob = $5,
		 phone = $6, email = $7, address_line = $8, updated_at = CURRENT_TIMESTAMP
		 WHERE student_id = $9`,
		s.RollNo, s.FirstName, s.LastName, s.Gender, s.DOB, s.Phone, s.Email, s.AddressLine, s.ID,
	)
	switch {
	case uniqueViolation(err, "uq_students_roll_no"):
		return 0, ErrDuplicateRollNo
	case uniqueViolation(err, "uq_students_email"):
		return 0, ErrDuplicateEmail
	case err != nil:
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes a student by primary key and returns the affected-row
// count. Enrollments, attendance and results referencing the student are
// left in place (no cascade).
func (r *StudentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
