package repository

import (
	"context"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// GetByID retrieves a course by ID.
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*model.Course, error) {
	c := &model.Course{}
	err := r.pool.QueryRow(ctx,
		`SELECT course_id, course_name, created_at, updated_at
		 FROM courses WHERE course_id = $1`, id,
	).Scan(&c.ID, &c.CourseName, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListPaginated retrieves courses ordered by primary key with pagination.
func (r *CourseRepository) ListPaginated(ctx context.Context, limit, offset int) ([]model.Course, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT course_id, course_name, created_at, updated_at
		 FROM courses ORDER BY course_id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.CourseName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		courses = append(courses, c)
	}
	return courses, total, rows.Err()
}

// All retrieves every course ordered by primary key. Used by CSV export.
func (r *CourseRepository) All(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT course_id, course_name, created_at, updated_at
		 FROM courses ORDER BY course_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.CourseName, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Create inserts a new course and fills in the generated identifier.
func (r *CourseRepository) Create(ctx context.Context, c *model.Course) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO courses (course_name) VALUES ($1)
		 RETURNING course_id, created_at, updated_at`,
		c.CourseName,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if uniqueViolation(err, "uq_courses_course_name") {
		return ErrDuplicateCourseName
	}
	return err
}

// Update renames a course by primary key and returns the affected-row count.
func (r *CourseRepository) Update(ctx context.Context, c *model.Course) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE courses SET course_name = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE course_id = $2`,
		c.CourseName, c.ID,
	)
	if uniqueViolation(err, "uq_courses_course_name") {
		return 0, ErrDuplicateCourseName
	}
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes a course by primary key and returns the affected-row count.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
