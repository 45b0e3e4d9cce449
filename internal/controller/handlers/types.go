package handlers

import (
	"time"

	"github.com/luciafdez/clases_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers owns the command handlers. All "now"-based views are
// computed in the configured reference time zone so day keys never
// shift with the server clock's zone.
type Handlers struct {
	lessonService  *service.LessonService
	studentService *service.StudentService
	statsService   *service.StatsService
	profileService *service.ProfileService
	location       *time.Location
	logger         *zap.Logger
}

func NewHandlers(
	lessonService *service.LessonService,
	studentService *service.StudentService,
	statsService *service.StatsService,
	profileService *service.ProfileService,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		lessonService:  lessonService,
		studentService: studentService,
		statsService:   statsService,
		profileService: profileService,
		location:       location,
		logger:         logger,
	}
}

// Now returns the current instant in the reference zone.
func (h *Handlers) Now() time.Time {
	return time.Now().In(h.location)
}
