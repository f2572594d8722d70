package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradeParams() NewGradeParams {
	return NewGradeParams{
		ID:            "g1",
		Value:         4.5,
		Period:        1,
		AchievementID: "ach1",
		StudentID:     "s1",
		TeacherID:     "t1",
	}
}

func TestNewGrade(t *testing.T) {
	g, err := NewGrade(gradeParams())
	require.NoError(t, err)

	assert.Equal(t, 4.5, g.Value)
	assert.Equal(t, "t1", g.TeacherID)
}

func TestNewGrade_ValueBounds(t *testing.T) {
	p := gradeParams()

	p.Value = 0.9
	_, err := NewGrade(p)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	p.Value = 5.1
	_, err = NewGrade(p)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	p.Value = 1.0
	_, err = NewGrade(p)
	assert.NoError(t, err)

	p.Value = 5.0
	_, err = NewGrade(p)
	assert.NoError(t, err)
}

func TestNewGrade_Validation(t *testing.T) {
	p := gradeParams()
	p.Period = 0
	_, err := NewGrade(p)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	p = gradeParams()
	p.StudentID = ""
	_, err = NewGrade(p)
	assert.Error(t, err)
}

func TestGrade_Revise(t *testing.T) {
	g, _ := NewGrade(gradeParams())

	require.NoError(t, g.Revise("t1", 3.0, 2))
	assert.Equal(t, 3.0, g.Value)
	assert.Equal(t, 2, g.Period.Int())
}

func TestGrade_Revise_RejectsOtherTeacher(t *testing.T) {
	g, _ := NewGrade(gradeParams())

	assert.ErrorIs(t, g.Revise("t2", 3.0, 1), ErrNotAuthor)
	assert.Equal(t, 4.5, g.Value)
}

func TestGrade_Revise_ValidatesValue(t *testing.T) {
	g, _ := NewGrade(gradeParams())

	assert.ErrorIs(t, g.Revise("t1", 5.5, 1), ErrValueOutOfRange)
	assert.ErrorIs(t, g.Revise("t1", 3.0, 0), ErrInvalidPeriod)
}

func TestNewAchievement(t *testing.T) {
	a, err := NewAchievement("ach1", "  Recognizes colors  ", "Primary colors", CategoryCognitiveLanguage)
	require.NoError(t, err)

	assert.Equal(t, "Recognizes colors", a.Name)
	assert.Equal(t, AchievementActive, a.Status)
}

func TestNewAchievement_Validation(t *testing.T) {
	_, err := NewAchievement("ach1", "", "", CategoryMotorSkills)
	assert.Error(t, err)

	_, err = NewAchievement("ach1", "Runs", "", Category("athletics"))
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestAchievement_Disable(t *testing.T) {
	a, _ := NewAchievement("ach1", "Shares toys", "", CategoryPersonalSocial)

	a.Disable()
	assert.Equal(t, AchievementDisabled, a.Status)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Motor_Skills ")
	require.NoError(t, err)
	assert.Equal(t, CategoryMotorSkills, c)

	_, err = ParseCategory("athletics")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestNewObservation(t *testing.T) {
	date := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	o, err := NewObservation("o1", date, "Helped a classmate", ObservationOutstanding, "s1", "t1")
	require.NoError(t, err)

	assert.Equal(t, ObservationOutstanding, o.Type)
	assert.Equal(t, date, o.Date)
}

func TestNewObservation_Validation(t *testing.T) {
	date := time.Now()

	_, err := NewObservation("o1", date, "  ", ObservationAcademic, "s1", "t1")
	assert.Error(t, err)

	_, err = NewObservation("o1", date, "note", ObservationType("gossip"), "s1", "t1")
	assert.ErrorIs(t, err, ErrInvalidObservationType)

	_, err = NewObservation("o1", date, "note", ObservationAcademic, "", "t1")
	assert.Error(t, err)
}

func TestComputeAverage_Approved(t *testing.T) {
	grades := []*Grade{
		{Value: 4.0}, {Value: 3.0}, {Value: 2.0},
	}

	avg, err := ComputeAverage(grades)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, avg.Value, 1e-9)
	assert.Equal(t, ClassificationApproved, avg.Classification)
	assert.Equal(t, 3, avg.Count)
}

func TestComputeAverage_Rejected(t *testing.T) {
	grades := []*Grade{
		{Value: 1.0}, {Value: 2.0},
	}

	avg, err := ComputeAverage(grades)
	require.NoError(t, err)

	assert.InDelta(t, 1.5, avg.Value, 1e-9)
	assert.Equal(t, ClassificationRejected, avg.Classification)
}

func TestComputeAverage_ThresholdIsInclusive(t *testing.T) {
	avg, err := ComputeAverage([]*Grade{{Value: 3.0}})
	require.NoError(t, err)
	assert.Equal(t, ClassificationApproved, avg.Classification)
}

func TestComputeAverage_Empty(t *testing.T) {
	_, err := ComputeAverage(nil)
	assert.Error(t, err)
}
