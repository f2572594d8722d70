package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

func seedStudent(t *testing.T, repo *fakeStudentRepo, id string) *student.Student {
	t.Helper()
	s, err := student.NewStudent(student.NewStudentParams{
		ID:         id,
		Name:       "Sofia",
		Surname:    "Lopez",
		GradeLevel: "jardin",
		GuardianID: "guardian1",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), s))
	return s
}

func seedGrade(t *testing.T, repo *fakeGradeRepo, id, studentID string, value float64, period int) {
	t.Helper()
	g, err := assessment.NewGrade(assessment.NewGradeParams{
		ID:            id,
		Value:         value,
		Period:        shared.Period(period),
		AchievementID: "ach1",
		StudentID:     studentID,
		TeacherID:     "t1",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), g))
}

func TestGetReportCard(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	gradeRepo := &fakeGradeRepo{}
	seedStudent(t, studentRepo, "s1")
	seedGrade(t, gradeRepo, "gr1", "s1", 4.0, 1)
	seedGrade(t, gradeRepo, "gr2", "s1", 3.0, 1)
	seedGrade(t, gradeRepo, "gr3", "s1", 2.0, 2)

	h := NewGetReportCardHandler(gradeRepo, studentRepo, nil)

	card, err := h.Handle(context.Background(), GetReportCardQuery{StudentID: "s1"})
	require.NoError(t, err)

	assert.Equal(t, "Sofia Lopez", card.StudentName)
	assert.Equal(t, 3, card.TotalGrades)
	assert.InDelta(t, 3.0, card.OverallAverage, 1e-9)
	assert.Equal(t, "approved", card.OverallClassification)

	require.Len(t, card.Periods, 2)
	assert.Equal(t, 1, card.Periods[0].Period)
	assert.InDelta(t, 3.5, card.Periods[0].Average, 1e-9)
	assert.Equal(t, "approved", card.Periods[0].Classification)
	assert.Len(t, card.Periods[0].Grades, 2)

	assert.Equal(t, 2, card.Periods[1].Period)
	assert.InDelta(t, 2.0, card.Periods[1].Average, 1e-9)
	assert.Equal(t, "rejected", card.Periods[1].Classification)
}

func TestGetReportCard_NoGrades(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	seedStudent(t, studentRepo, "s1")

	h := NewGetReportCardHandler(&fakeGradeRepo{}, studentRepo, nil)

	card, err := h.Handle(context.Background(), GetReportCardQuery{StudentID: "s1"})
	require.NoError(t, err)

	assert.Zero(t, card.TotalGrades)
	assert.Empty(t, card.Periods)
	assert.Zero(t, card.OverallAverage)
	assert.Equal(t, "rejected", card.OverallClassification)
}

func TestGetReportCard_UnknownStudent(t *testing.T) {
	h := NewGetReportCardHandler(&fakeGradeRepo{}, &fakeStudentRepo{}, nil)

	_, err := h.Handle(context.Background(), GetReportCardQuery{StudentID: "ghost"})
	assert.True(t, shared.IsNotFound(err))
}

func TestGetReportCard_RequiresStudentID(t *testing.T) {
	h := NewGetReportCardHandler(&fakeGradeRepo{}, &fakeStudentRepo{}, nil)

	_, err := h.Handle(context.Background(), GetReportCardQuery{})
	assert.True(t, shared.IsValidation(err))
}

func TestGetReportCard_UsesCache(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	gradeRepo := &fakeGradeRepo{}
	cache := newFakeReportCardCache()
	seedStudent(t, studentRepo, "s1")
	seedGrade(t, gradeRepo, "gr1", "s1", 4.0, 1)

	h := NewGetReportCardHandler(gradeRepo, studentRepo, cache)

	first, err := h.Handle(context.Background(), GetReportCardQuery{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	second, err := h.Handle(context.Background(), GetReportCardQuery{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Same(t, first, second)

	// An empty card is not cached; only built cards with grades are.
	cache.Invalidate(context.Background(), "s1")
	_, err = h.Handle(context.Background(), GetReportCardQuery{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)
}
