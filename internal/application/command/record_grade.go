package command

import (
	"context"

	"github.com/google/uuid"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECORD GRADE COMMAND
// A teacher grades a student against an achievement for a period.
// Authorship is attributed to the calling teacher.
// ══════════════════════════════════════════════════════════════════════════════

// RecordGradeCommand contains the data to record a grade.
type RecordGradeCommand struct {
	// Caller is the authenticated identity; must hold the teacher role.
	Caller person.Caller

	StudentID     string
	AchievementID string
	Value         float64
	Period        int
}

// RecordGradeHandler handles the RecordGradeCommand.
type RecordGradeHandler struct {
	gradeRepo       assessment.GradeRepository
	achievementRepo assessment.AchievementRepository
	studentRepo     student.Repository
	publisher       shared.EventPublisher
}

// NewRecordGradeHandler creates a new RecordGradeHandler.
func NewRecordGradeHandler(
	gradeRepo assessment.GradeRepository,
	achievementRepo assessment.AchievementRepository,
	studentRepo student.Repository,
	publisher shared.EventPublisher,
) *RecordGradeHandler {
	return &RecordGradeHandler{
		gradeRepo:       gradeRepo,
		achievementRepo: achievementRepo,
		studentRepo:     studentRepo,
		publisher:       publisher,
	}
}

// Handle executes the grade recording.
func (h *RecordGradeHandler) Handle(ctx context.Context, cmd RecordGradeCommand) (*assessment.Grade, error) {
	if !cmd.Caller.IsTeacher() {
		return nil, assessment.ErrOnlyTeachers
	}

	if _, err := h.achievementRepo.GetByID(ctx, cmd.AchievementID); err != nil {
		return nil, err
	}
	if _, err := h.studentRepo.GetByID(ctx, cmd.StudentID); err != nil {
		return nil, err
	}

	g, err := assessment.NewGrade(assessment.NewGradeParams{
		ID:            uuid.NewString(),
		Value:         cmd.Value,
		Period:        shared.Period(cmd.Period),
		AchievementID: cmd.AchievementID,
		StudentID:     cmd.StudentID,
		TeacherID:     cmd.Caller.PersonID,
	})
	if err != nil {
		return nil, err
	}

	if err := h.gradeRepo.Create(ctx, g); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(shared.NewGenericEvent(shared.EventGradeRecorded, g.ID, map[string]interface{}{
		"student_id": g.StudentID,
		"value":      g.Value,
		"period":     g.Period.Int(),
	}))

	return g, nil
}
