// Package assessment contains grade recording, rubric achievements,
// teacher observations, and period/overall averaging with pass/fail
// classification.
package assessment

import (
	"errors"
	"strings"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// Numeric bounds and the pass threshold for grades. Values keep one
// decimal of precision at input time; no rounding happens here -
// rounding, if any, belongs to the reporting layer.
const (
	MinGradeValue = 1.0
	MaxGradeValue = 5.0

	// PassingAverage is the fixed domain constant separating approved
	// from rejected averages.
	PassingAverage = 3.0
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Category is the developmental area an achievement belongs to.
type Category string

const (
	// CategoryPersonalSocial - personal and social development.
	CategoryPersonalSocial Category = "personal_social"
	// CategoryCognitiveLanguage - cognitive and language development.
	CategoryCognitiveLanguage Category = "cognitive_language"
	// CategoryMotorSkills - motor development.
	CategoryMotorSkills Category = "motor_skills"
)

// IsValid checks that the category is one of the recognized values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPersonalSocial, CategoryCognitiveLanguage, CategoryMotorSkills:
		return true
	default:
		return false
	}
}

// ParseCategory parses a string into a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// AchievementStatus marks whether a rubric item is gradeable.
type AchievementStatus string

const (
	// AchievementActive - the item appears in grading.
	AchievementActive AchievementStatus = "active"
	// AchievementDisabled - the item is retired from grading.
	AchievementDisabled AchievementStatus = "disabled"
)

// IsValid checks that the status is one of the recognized values.
func (s AchievementStatus) IsValid() bool {
	return s == AchievementActive || s == AchievementDisabled
}

// ObservationType classifies a teacher's note about a student.
type ObservationType string

const (
	// ObservationAcademic - academic progress note.
	ObservationAcademic ObservationType = "academic"
	// ObservationDisciplinary - disciplinary incident.
	ObservationDisciplinary ObservationType = "disciplinary"
	// ObservationConduct - coexistence and conduct note.
	ObservationConduct ObservationType = "conduct"
	// ObservationOutstanding - outstanding achievement worth recording.
	ObservationOutstanding ObservationType = "outstanding"
)

// IsValid checks that the type is one of the recognized values.
func (t ObservationType) IsValid() bool {
	switch t {
	case ObservationAcademic, ObservationDisciplinary, ObservationConduct, ObservationOutstanding:
		return true
	default:
		return false
	}
}

// Classification is the pass/fail outcome of an average.
type Classification string

const (
	// ClassificationApproved - the average meets the passing threshold.
	ClassificationApproved Classification = "approved"
	// ClassificationRejected - the average is below the passing threshold.
	ClassificationRejected Classification = "rejected"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENTITIES
// ══════════════════════════════════════════════════════════════════════════════

// Achievement is a named rubric item within a developmental category,
// graded per period.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Status      AchievementStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Grade is a single assessment record. Only value and period may change
// after creation, and only through the authoring teacher.
type Grade struct {
	// ID is the internal unique identifier (UUID in string form).
	ID string

	// Value is the numeric grade within [MinGradeValue, MaxGradeValue].
	Value float64

	// Period is the academic sub-term the grade belongs to.
	Period shared.Period

	// AchievementID references the graded rubric item.
	AchievementID string

	// StudentID references the graded student.
	StudentID string

	// TeacherID references the authoring teacher.
	TeacherID string

	// CreatedAt is when the grade was recorded.
	CreatedAt time.Time

	// UpdatedAt is when the grade was last modified.
	UpdatedAt time.Time
}

// Observation is a dated free-text note about a student by a teacher.
type Observation struct {
	ID          string
	Date        time.Time
	Description string
	Type        ObservationType
	StudentID   string
	TeacherID   string
	CreatedAt   time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrGradeNotFound - no grade with the given id.
	ErrGradeNotFound = shared.NewDomainError("assessment", "Find", shared.ErrNotFound, "grade not found")

	// ErrAchievementNotFound - no achievement with the given id.
	ErrAchievementNotFound = shared.NewDomainError("assessment", "FindAchievement", shared.ErrNotFound, "achievement not found")

	// ErrValueOutOfRange - grade value outside [1.0, 5.0].
	ErrValueOutOfRange = shared.NewDomainError("assessment", "Validate", shared.ErrValueOutOfRange, "grade value must be between 1.0 and 5.0")

	// ErrInvalidPeriod - non-positive period number.
	ErrInvalidPeriod = shared.NewDomainError("assessment", "Validate", shared.ErrInvalidInput, "period must be positive")

	// ErrInvalidCategory - unrecognized achievement category.
	ErrInvalidCategory = shared.NewDomainError("assessment", "Validate", shared.ErrInvalidInput, "invalid achievement category")

	// ErrInvalidObservationType - unrecognized observation type.
	ErrInvalidObservationType = shared.NewDomainError("assessment", "Validate", shared.ErrInvalidInput, "invalid observation type")

	// ErrNotAuthor - only the authoring teacher may edit a grade.
	ErrNotAuthor = shared.NewDomainError("assessment", "Update", shared.ErrForbidden, "only the authoring teacher may modify a grade")

	// ErrOnlyTeachers - only teachers record grades.
	ErrOnlyTeachers = shared.NewDomainError("assessment", "Record", shared.ErrForbidden, "only teachers may record grades")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORIES & DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// NewAchievement creates an active achievement.
func NewAchievement(id, name, description string, category Category) (*Achievement, error) {
	if id == "" {
		return nil, errors.New("achievement id is required")
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 || len(name) > 200 {
		return nil, shared.NewDomainError("assessment", "Validate", shared.ErrEmptyValue, "achievement name must be 1-200 chars")
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	now := time.Now().UTC()
	return &Achievement{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(description),
		Category:    category,
		Status:      AchievementActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Disable retires the achievement from grading.
func (a *Achievement) Disable() {
	a.Status = AchievementDisabled
	a.UpdatedAt = time.Now().UTC()
}

// NewGradeParams contains parameters for recording a grade.
type NewGradeParams struct {
	ID            string
	Value         float64
	Period        shared.Period
	AchievementID string
	StudentID     string
	TeacherID     string
}

// NewGrade creates a grade with value and period validation.
func NewGrade(params NewGradeParams) (*Grade, error) {
	if params.ID == "" {
		return nil, errors.New("grade id is required")
	}
	if params.Value < MinGradeValue || params.Value > MaxGradeValue {
		return nil, ErrValueOutOfRange
	}
	if !params.Period.IsValid() {
		return nil, ErrInvalidPeriod
	}
	if params.AchievementID == "" || params.StudentID == "" || params.TeacherID == "" {
		return nil, shared.NewDomainError("assessment", "Record", shared.ErrEmptyValue, "achievement, student, and teacher ids are required")
	}

	now := time.Now().UTC()
	return &Grade{
		ID:            params.ID,
		Value:         params.Value,
		Period:        params.Period,
		AchievementID: params.AchievementID,
		StudentID:     params.StudentID,
		TeacherID:     params.TeacherID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Revise updates value and period on behalf of the given teacher. Any
// caller other than the original author is rejected.
func (g *Grade) Revise(teacherID string, value float64, period shared.Period) error {
	if teacherID != g.TeacherID {
		return ErrNotAuthor
	}
	if value < MinGradeValue || value > MaxGradeValue {
		return ErrValueOutOfRange
	}
	if !period.IsValid() {
		return ErrInvalidPeriod
	}
	g.Value = value
	g.Period = period
	g.UpdatedAt = time.Now().UTC()
	return nil
}

// NewObservation creates a teacher's note about a student.
func NewObservation(id string, date time.Time, description string, obsType ObservationType, studentID, teacherID string) (*Observation, error) {
	if id == "" {
		return nil, errors.New("observation id is required")
	}
	description = strings.TrimSpace(description)
	if len(description) == 0 || len(description) > 1000 {
		return nil, shared.NewDomainError("assessment", "Observe", shared.ErrEmptyValue, "observation description must be 1-1000 chars")
	}
	if !obsType.IsValid() {
		return nil, ErrInvalidObservationType
	}
	if studentID == "" || teacherID == "" {
		return nil, shared.NewDomainError("assessment", "Observe", shared.ErrEmptyValue, "student and teacher ids are required")
	}

	return &Observation{
		ID:          id,
		Date:        date,
		Description: description,
		Type:        obsType,
		StudentID:   studentID,
		TeacherID:   teacherID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// AVERAGING
// ══════════════════════════════════════════════════════════════════════════════

// Average is the outcome of averaging a set of grades.
type Average struct {
	// Value is the arithmetic mean, unrounded.
	Value float64

	// Classification is approved when Value >= PassingAverage.
	Classification Classification

	// Count is the number of grades averaged.
	Count int
}

// ComputeAverage returns the arithmetic mean of the grade values and its
// pass/fail classification. The same computation serves both a single
// period and the overall span; bucketing is the caller's concern.
func ComputeAverage(grades []*Grade) (Average, error) {
	if len(grades) == 0 {
		return Average{}, shared.NewDomainError("assessment", "Average", shared.ErrEmptyValue, "cannot average an empty grade set")
	}

	var sum float64
	for _, g := range grades {
		sum += g.Value
	}
	mean := sum / float64(len(grades))

	classification := ClassificationRejected
	if mean >= PassingAverage {
		classification = ClassificationApproved
	}

	return Average{
		Value:          mean,
		Classification: classification,
		Count:          len(grades),
	}, nil
}
