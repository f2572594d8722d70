package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

func TestListApplicants_FiltersByState(t *testing.T) {
	repo := &fakeApplicantRepo{}
	for i, state := range []admission.State{
		admission.StateUnreviewed, admission.StateReviewed, admission.StateReviewed,
	} {
		a, err := admission.NewApplicant(string(rune('a'+i))+"1", "p1")
		require.NoError(t, err)
		require.NoError(t, a.SetState(state))
		require.NoError(t, repo.Create(context.Background(), a))
	}

	h := NewListApplicantsHandler(repo)

	res, err := h.Handle(context.Background(), ListApplicantsQuery{State: "reviewed"})
	require.NoError(t, err)
	assert.Len(t, res.Applicants, 2)

	res, err = h.Handle(context.Background(), ListApplicantsQuery{})
	require.NoError(t, err)
	assert.Len(t, res.Applicants, 3)
}

func TestListApplicants_InvalidState(t *testing.T) {
	h := NewListApplicantsHandler(&fakeApplicantRepo{})

	_, err := h.Handle(context.Background(), ListApplicantsQuery{State: "limbo"})
	assert.True(t, shared.IsValidation(err))
}

func TestListApplicants_PaginationDefaults(t *testing.T) {
	q := ListApplicantsQuery{Limit: 0, Offset: -3}
	require.NoError(t, q.Validate())
	assert.Equal(t, 50, q.Limit)
	assert.Zero(t, q.Offset)

	q = ListApplicantsQuery{Limit: 999}
	require.NoError(t, q.Validate())
	assert.Equal(t, 200, q.Limit)
}

func TestListGrades_PeriodFilter(t *testing.T) {
	studentRepo := &fakeStudentRepo{}
	gradeRepo := &fakeGradeRepo{}
	seedStudent(t, studentRepo, "s1")
	seedGrade(t, gradeRepo, "gr1", "s1", 4.0, 1)
	seedGrade(t, gradeRepo, "gr2", "s1", 3.0, 2)
	seedGrade(t, gradeRepo, "gr3", "s1", 2.0, 2)

	h := NewListGradesHandler(gradeRepo, studentRepo)

	res, err := h.Handle(context.Background(), ListGradesQuery{StudentID: "s1", Period: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	for _, g := range res.Grades {
		assert.Equal(t, 2, g.Period)
	}

	res, err = h.Handle(context.Background(), ListGradesQuery{StudentID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
}

func TestListGrades_UnknownStudent(t *testing.T) {
	h := NewListGradesHandler(&fakeGradeRepo{}, &fakeStudentRepo{})

	_, err := h.Handle(context.Background(), ListGradesQuery{StudentID: "ghost"})
	assert.True(t, shared.IsNotFound(err))
}
