package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/luciafdez/clases_bot/internal/model"
	"github.com/luciafdez/clases_bot/internal/repository"
	"github.com/luciafdez/clases_bot/internal/schedule"
	"go.uber.org/zap"
)

// ErrEndNotAfterStart signals end_time <= start_time. A validation
// outcome for the user, not a system failure.
var ErrEndNotAfterStart = errors.New("end time must be after start time")

// ConflictError reports that the candidate lesson overlaps an existing
// one. It carries the conflicting lesson so the bot can tell the tutor
// exactly what is in the way.
type ConflictError struct {
	Lesson model.Lesson
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("lesson overlaps %s (%s) %s-%s on %s",
		e.Lesson.Subject, e.Lesson.StudentName, e.Lesson.StartTime, e.Lesson.EndTime, e.Lesson.Date)
}

// LessonInput is what the tutor submits when creating or editing a
// lesson. Shape validation runs before the overlap check, so malformed
// times are rejected as bad input instead of slipping past the
// detector's fail-open path.
type LessonInput struct {
	Date          string `validate:"required,datekey"`
	StartTime     string `validate:"required,hhmm"`
	EndTime       string `validate:"required,hhmm"`
	Subject       string `validate:"required"`
	StudentName   string `validate:"required"`
	Level         string
	Notes         string
	PaymentStatus model.PaymentStatus
}

type LessonService struct {
	lessonRepo *repository.LessonRepository
	validate   *validator.Validate
	logger     *zap.Logger
}

func NewLessonService(lessonRepo *repository.LessonRepository, logger *zap.Logger) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		validate:   newValidate(),
		logger:     logger,
	}
}

// Create validates the input, checks for a same-day overlap and saves
// the lesson. Returns *ConflictError when another lesson is in the way.
func (s *LessonService) Create(ctx context.Context, input LessonInput) (*model.Lesson, error) {
	if err := s.checkInput(ctx, input, ""); err != nil {
		return nil, err
	}

	lesson := &model.Lesson{
		ID:            uuid.NewString(),
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Subject:       input.Subject,
		StudentName:   input.StudentName,
		Level:         input.Level,
		Notes:         input.Notes,
		PaymentStatus: paymentStatusOrDefault(input.PaymentStatus),
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, fmt.Errorf("create lesson: %w", err)
	}

	s.logger.Info("Lesson created",
		zap.String("lesson_id", lesson.ID),
		zap.String("date", lesson.Date),
		zap.String("time", lesson.StartTime+"-"+lesson.EndTime),
		zap.String("student", lesson.StudentName),
	)

	return lesson, nil
}

// Update rewrites an existing lesson after the same validation as
// Create, excluding the lesson itself from the overlap scan.
func (s *LessonService) Update(ctx context.Context, id string, input LessonInput) (*model.Lesson, error) {
	existing, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("lesson not found")
	}

	if err := s.checkInput(ctx, input, id); err != nil {
		return nil, err
	}

	existing.Date = input.Date
	existing.StartTime = input.StartTime
	existing.EndTime = input.EndTime
	existing.Subject = input.Subject
	existing.StudentName = input.StudentName
	existing.Level = input.Level
	existing.Notes = input.Notes
	existing.PaymentStatus = paymentStatusOrDefault(input.PaymentStatus)

	if err := s.lessonRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update lesson: %w", err)
	}

	s.logger.Info("Lesson updated",
		zap.String("lesson_id", existing.ID),
		zap.String("date", existing.Date),
	)

	return existing, nil
}

// checkInput runs shape validation, the time-order rule and the
// overlap detector against the candidate's day.
func (s *LessonService) checkInput(ctx context.Context, input LessonInput, excludeID string) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("invalid lesson input: %w", err)
	}

	if input.EndTime <= input.StartTime {
		return ErrEndNotAfterStart
	}

	sameDay, err := s.lessonRepo.GetByDate(ctx, input.Date)
	if err != nil {
		return fmt.Errorf("get lessons for date: %w", err)
	}

	candidate := schedule.Candidate{
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}
	if conflict := schedule.DetectOverlap(candidate, sameDay, excludeID); conflict != nil {
		return &ConflictError{Lesson: *conflict}
	}

	return nil
}

// SetPaymentStatus marks a lesson paid or unpaid.
func (s *LessonService) SetPaymentStatus(ctx context.Context, id string, status model.PaymentStatus) error {
	if err := s.lessonRepo.UpdatePaymentStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}

	s.logger.Info("Payment status changed",
		zap.String("lesson_id", id),
		zap.String("status", string(status)),
	)

	return nil
}

// TogglePaymentStatus flips a lesson's payment status and returns the
// updated lesson.
func (s *LessonService) TogglePaymentStatus(ctx context.Context, id string) (*model.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	if lesson == nil {
		return nil, fmt.Errorf("lesson not found")
	}

	status := model.PaymentStatusPaid
	if lesson.PaymentStatus == model.PaymentStatusPaid {
		status = model.PaymentStatusUnpaid
	}

	if err := s.SetPaymentStatus(ctx, id, status); err != nil {
		return nil, err
	}

	lesson.PaymentStatus = status
	return lesson, nil
}

// Delete removes a lesson.
func (s *LessonService) Delete(ctx context.Context, id string) error {
	if err := s.lessonRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}

	s.logger.Info("Lesson deleted", zap.String("lesson_id", id))
	return nil
}

// LessonsForDay returns the lessons of one day key, earliest first.
func (s *LessonService) LessonsForDay(ctx context.Context, date string) ([]model.Lesson, error) {
	return s.lessonRepo.GetByDate(ctx, date)
}

// LessonsForRange returns the lessons with date in [from, to].
func (s *LessonService) LessonsForRange(ctx context.Context, from, to string) ([]model.Lesson, error) {
	return s.lessonRepo.GetByDateRange(ctx, from, to)
}

// UnpaidLessons returns every unpaid lesson, oldest first.
func (s *LessonService) UnpaidLessons(ctx context.Context) ([]model.Lesson, error) {
	return s.lessonRepo.GetByPaymentStatus(ctx, model.PaymentStatusUnpaid)
}

func paymentStatusOrDefault(status model.PaymentStatus) model.PaymentStatus {
	if status == model.PaymentStatusPaid {
		return status
	}
	return model.PaymentStatusUnpaid
}
