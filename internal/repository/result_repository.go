package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/amowaisusmani/student-management-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository handles exam result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// GetByID retrieves a result by ID.
func (r *ResultRepository) GetByID(ctx context.Context, id int64) (*model.Result, error) {
	res := &model.Result{}
	err := r.pool.QueryRow(ctx,
		`SELECT result_id, student_id, exam_id, marks_obtained, total_marks, created_at, updated_at
		 FROM results WHERE result_id = $1`, id,
	).Scan(&res.ID, &res.StudentID, &res.ExamID, &res.MarksObtained, &res.TotalMarks, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ListPaginated retrieves results ordered by primary key, joined with the
// student identity and exam metadata (course name, type, date), optionally
// filtered by exam or student. Joins are LEFT: a result may reference rows
// that no longer exist, and still lists with empty identity columns.
func (r *ResultRepository) ListPaginated(ctx context.Context, examID, studentID int64, limit, offset int) ([]model.ResultRecord, int, error) {
	where := ``
	var args []interface{}
	if examID > 0 {
		where = ` WHERE g.exam_id = $1`
		args = append(args, examID)
	}
	if studentID > 0 {
		if where == "" {
			where = ` WHERE g.student_id = $1`
		} else {
			where += ` AND g.student_id = $2`
		}
		args = append(args, studentID)
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM results g`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	argIdx := len(args) + 1
	query := `SELECT g.result_id, g.student_id, g.exam_id, g.marks_obtained, g.total_marks, g.created_at, g.updated_at,
		 COALESCE(s.roll_no, ''), COALESCE(s.first_name, ''), COALESCE(s.last_name, ''),
		 COALESCE(c.course_name, ''), COALESCE(e.exam_type, ''), COALESCE(e.exam_date, '0001-01-01'::date)
		 FROM results g
		 LEFT JOIN students s ON s.student_id = g.student_id
		 LEFT JOIN exams e ON e.exam_id = g.exam_id
		 LEFT JOIN courses c ON c.course_id = e.course_id` + where +
		` ORDER BY g.result_id LIMIT $` + strconv.Itoa(argIdx) + ` OFFSET $` + strconv.Itoa(argIdx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []model.ResultRecord
	for rows.Next() {
		var rec model.ResultRecord
		var examDate time.Time
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.ExamID, &rec.MarksObtained, &rec.TotalMarks, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.RollNo, &rec.FirstName, &rec.LastName, &rec.CourseName, &rec.ExamType, &examDate); err != nil {
			return nil, 0, err
		}
		rec.ExamDate = examDate
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

// All retrieves every result ordered by primary key. Used by CSV export.
func (r *ResultRepository) All(ctx context.Context) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT result_id, student_id, exam_id, marks_obtained, total_marks, created_at, updated_at
		 FROM results ORDER BY result_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.StudentID, &res.ExamID, &res.MarksObtained, &res.TotalMarks, &res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}

// Create inserts a new result. Neither the student nor the exam reference
// is checked for existence, and marks_obtained may exceed total_marks;
// the store enforces neither (documented product decision).
func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (student_id, exam_id, marks_obtained, total_marks)
		 VALUES ($1, $2, $3, $4)
		 RETURNING result_id, created_at, updated_at`,
		res.StudentID, res.ExamID, res.MarksObtained, res.TotalMarks,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// Update modifies a result by primary key and returns the affected-row
// count.
func (r *ResultRepository) Update(ctx context.Context, res *model.Result) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE results SET student_id = $1, exam_id = $2, marks_obtained = $3, total_marks = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE result_id = $5`,
		res.StudentID, res.ExamID, res.MarksObtained, res.TotalMarks, res.ID,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Delete removes a result by primary key and returns the affected-row count.
func (r *ResultRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM results WHERE result_id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
