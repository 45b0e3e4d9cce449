package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luciafdez/clases_bot/internal/model"
)

type LessonRepository struct {
	pool *pgxpool.Pool
}

func NewLessonRepository(pool *pgxpool.Pool) *LessonRepository {
	return &LessonRepository{pool: pool}
}

const lessonColumns = `id, date, start_time, end_time, subject, student_name, level, notes, payment_status, created_at, updated_at`

// Create inserts a new lesson. The caller assigns the id.
func (r *LessonRepository) Create(ctx context.Context, lesson *model.Lesson) error {
	query := `
		INSERT INTO lessons (id, date, start_time, end_time, subject, student_name, level, notes, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		lesson.ID,
		lesson.Date,
		lesson.StartTime,
		lesson.EndTime,
		lesson.Subject,
		lesson.StudentName,
		lesson.Level,
		lesson.Notes,
		lesson.PaymentStatus,
	).Scan(&lesson.CreatedAt, &lesson.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create lesson: %w", err)
	}

	return nil
}

// GetByID fetches one lesson, or nil when it does not exist.
func (r *LessonRepository) GetByID(ctx context.Context, id string) (*model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

	lesson, err := scanLesson(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lesson by id: %w", err)
	}

	return lesson, nil
}

// GetByDate returns every lesson on the given day key, earliest first.
// The ordering makes conflict reporting deterministic: the first
// overlap found is always the earliest-starting one.
func (r *LessonRepository) GetByDate(ctx context.Context, date string) ([]model.Lesson, error) {
	query := `SELECT ` + lessonColumns + ` FROM lessons WHERE date = $1 ORDER BY start_time ASC`

	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("get lessons by date: %w", err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// GetByDateRange returns lessons with date in [from, to], inclusive.
func (r *LessonRepository) GetByDateRange(ctx context.Context, from, to string) ([]model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, start_time ASC
	`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("get lessons by range: %w", err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// GetByPaymentStatus returns lessons with the given status, oldest first.
func (r *LessonRepository) GetByPaymentStatus(ctx context.Context, status model.PaymentStatus) ([]model.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE payment_status = $1
		ORDER BY date ASC, start_time ASC
	`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("get lessons by payment status: %w", err)
	}
	defer rows.Close()

	return scanLessons(rows)
}

// Update rewrites all editable fields of a lesson.
func (r *LessonRepository) Update(ctx context.Context, lesson *model.Lesson) error {
	query := `
		UPDATE lessons
		SET date = $1, start_time = $2, end_time = $3, subject = $4,
		    student_name = $5, level = $6, notes = $7, payment_status = $8,
		    updated_at = now()
		WHERE id = $9
	`

	result, err := r.pool.Exec(
		ctx, query,
		lesson.Date,
		lesson.StartTime,
		lesson.EndTime,
		lesson.Subject,
		lesson.StudentName,
		lesson.Level,
		lesson.Notes,
		lesson.PaymentStatus,
		lesson.ID,
	)
	if err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// UpdatePaymentStatus flips a lesson between paid and unpaid.
func (r *LessonRepository) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	query := `UPDATE lessons SET payment_status = $1, updated_at = now() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

// Delete removes a lesson.
func (r *LessonRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM lessons WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lesson not found")
	}

	return nil
}

func scanLesson(row pgx.Row) (*model.Lesson, error) {
	var lesson model.Lesson
	err := row.Scan(
		&lesson.ID,
		&lesson.Date,
		&lesson.StartTime,
		&lesson.EndTime,
		&lesson.Subject,
		&lesson.StudentName,
		&lesson.Level,
		&lesson.Notes,
		&lesson.PaymentStatus,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func scanLessons(rows pgx.Rows) ([]model.Lesson, error) {
	var lessons []model.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}
	return lessons, rows.Err()
}
