package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository"
	"go.uber.org/zap"
)

// StudentInput is what the tutor submits for an alumno.
type StudentInput struct {
	Name     string `validate:"required"`
	Phone    string
	Email    string `validate:"omitempty,email"`
	Level    string
	Subjects []string
	Notes    string
}

type StudentService struct {
	studentRepo *repository.StudentRepository
	validate    *validator.Validate
	logger      *zap.Logger
}

func NewStudentService(studentRepo *repository.StudentRepository, logger *zap.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		validate:    newValidate(),
		logger:      logger,
	}
}

// Create validates and saves a new student.
func (s *StudentService) Create(ctx context.Context, input StudentInput) (*model.Student, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid student input: %w", err)
	}

	student := &model.Student{
		ID:       uuid.NewString(),
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Level:    input.Level,
		Subjects: input.Subjects,
		Notes:    input.Notes,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("create student: %w", err)
	}

	s.logger.Info("Student created",
		zap.String("student_id", student.ID),
		zap.String("name", student.Name),
	)

	return student, nil
}

// Update rewrites an existing student.
func (s *StudentService) Update(ctx context.Context, id string, input StudentInput) (*model.Student, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid student input: %w", err)
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, fmt.Errorf("student not found")
	}

	student.Name = input.Name
	student.Phone = input.Phone
	student.Email = input.Email
	student.Level = input.Level
	student.Subjects = input.Subjects
	student.Notes = input.Notes

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}

	s.logger.Info("Student updated", zap.String("student_id", id))
	return student, nil
}

// Delete removes a student. Their past lessons keep the name.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}

	s.logger.Info("Student deleted", zap.String("student_id", id))
	return nil
}

// List returns every student ordered by name.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// GetByID returns one student, or nil when missing.
func (s *StudentService) GetByID(ctx context.Context, id string) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}
