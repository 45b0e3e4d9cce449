package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository/base"
)

type StudentRepository struct {
	*base.Repository
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{Repository: base.NewRepository(pool)}
}

// Create inserts a new student. The caller assigns the id.
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (id, name, phone, email, level, subjects, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.QueryRow(
		ctx, query,
		student.ID,
		student.Name,
		student.Phone,
		student.Email,
		student.Level,
		student.Subjects,
		student.Notes,
	).Scan(&student.CreatedAt)

	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// GetByID fetches one student, or nil when it does not exist.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*model.Student, error) {
	query := `
		SELECT id, name, phone, email, level, subjects, notes, created_at
		FROM students
		WHERE id = $1
	`

	var student model.Student
	err := r.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Phone,
		&student.Email,
		&student.Level,
		&student.Subjects,
		&student.Notes,
		&student.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}

	return &student, nil
}

// List returns every student ordered by name.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	query := `
		SELECT id, name, phone, email, level, subjects, notes, created_at
		FROM students
		ORDER BY name ASC
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var student model.Student
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Phone,
			&student.Email,
			&student.Level,
			&student.Subjects,
			&student.Notes,
			&student.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// Update rewrites all editable fields of a student.
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET name = $1, phone = $2, email = $3, level = $4, subjects = $5, notes = $6
		WHERE id = $7
	`

	affected, err := r.ExecAffected(
		ctx, query,
		student.Name,
		student.Phone,
		student.Email,
		student.Level,
		student.Subjects,
		student.Notes,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}

// Delete removes a student. Lessons keep their student_name.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	affected, err := r.ExecAffected(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("student not found")
	}

	return nil
}
