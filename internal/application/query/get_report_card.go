package query

import (
	"context"
	"sort"
	"time"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET REPORT CARD QUERY
// Builds the report card of a student: grades grouped by period with a
// per-period average, plus the overall average across every period and
// its pass/fail classification.
// ══════════════════════════════════════════════════════════════════════════════

// ReportCardCache caches fully built report cards. Implementations may be
// nil; the handler treats a missing cache as a pass-through.
type ReportCardCache interface {
	// Get returns the cached report card for a student, if present.
	Get(ctx context.Context, studentID string) (*GetReportCardResult, bool)

	// Set stores a report card.
	Set(ctx context.Context, studentID string, card *GetReportCardResult)

	// Invalidate drops the cached card of a student.
	Invalidate(ctx context.Context, studentID string)
}

// GetReportCardQuery contains the report card parameters.
type GetReportCardQuery struct {
	// StudentID - the student whose report card to build.
	StudentID string
}

// Validate checks the query parameters.
func (q *GetReportCardQuery) Validate() error {
	if q.StudentID == "" {
		return shared.NewDomainError("query", "GetReportCard", shared.ErrEmptyValue, "student id is required")
	}
	return nil
}

// PeriodSummaryDTO is one period's block on the report card.
type PeriodSummaryDTO struct {
	// Period - the academic period number.
	Period int `json:"period"`

	// Grades - the grades recorded within the period, insertion order.
	Grades []GradeDTO `json:"grades"`

	// Average - arithmetic mean of the period's grades, unrounded.
	Average float64 `json:"average"`

	// Classification - "approved" or "rejected" for the period.
	Classification string `json:"classification"`
}

// GetReportCardResult contains the assembled report card.
type GetReportCardResult struct {
	// StudentID - the student the card belongs to.
	StudentID string `json:"student_id"`

	// StudentName - full display name at build time.
	StudentName string `json:"student_name"`

	// GradeLevel - the student's grade label.
	GradeLevel string `json:"grade_level"`

	// Periods - per-period blocks, ascending by period number.
	Periods []PeriodSummaryDTO `json:"periods"`

	// OverallAverage - mean across every grade on the card.
	OverallAverage float64 `json:"overall_average"`

	// OverallClassification - pass/fail outcome for the whole card.
	OverallClassification string `json:"overall_classification"`

	// TotalGrades - number of grades on the card.
	TotalGrades int `json:"total_grades"`

	// GeneratedAt - build timestamp.
	GeneratedAt time.Time `json:"generated_at"`
}

// GetReportCardHandler handles report card requests.
type GetReportCardHandler struct {
	gradeRepo   assessment.GradeRepository
	studentRepo student.Repository
	cache       ReportCardCache
}

// NewGetReportCardHandler creates a new GetReportCardHandler. The cache
// may be nil.
func NewGetReportCardHandler(
	gradeRepo assessment.GradeRepository,
	studentRepo student.Repository,
	cache ReportCardCache,
) *GetReportCardHandler {
	return &GetReportCardHandler{
		gradeRepo:   gradeRepo,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

// Handle executes the query.
func (h *GetReportCardHandler) Handle(ctx context.Context, q GetReportCardQuery) (*GetReportCardResult, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if card, ok := h.cache.Get(ctx, q.StudentID); ok {
			return card, nil
		}
	}

	stud, err := h.studentRepo.GetByID(ctx, q.StudentID)
	if err != nil {
		return nil, err
	}

	grades, err := h.gradeRepo.ListByStudent(ctx, q.StudentID)
	if err != nil {
		return nil, err
	}

	result := &GetReportCardResult{
		StudentID:   stud.ID,
		StudentName: stud.Name + " " + stud.Surname,
		GradeLevel:  stud.GradeLevel.String(),
		TotalGrades: len(grades),
		GeneratedAt: time.Now().UTC(),
	}

	if len(grades) == 0 {
		// A student with no grades gets an empty card, not an error.
		result.OverallClassification = string(assessment.ClassificationRejected)
		return result, nil
	}

	result.Periods = buildPeriodSummaries(grades)

	overall, err := assessment.ComputeAverage(grades)
	if err != nil {
		return nil, err
	}
	result.OverallAverage = overall.Value
	result.OverallClassification = string(overall.Classification)

	if h.cache != nil {
		h.cache.Set(ctx, q.StudentID, result)
	}
	return result, nil
}

// buildPeriodSummaries buckets grades by period and averages each bucket.
func buildPeriodSummaries(grades []*assessment.Grade) []PeriodSummaryDTO {
	byPeriod := make(map[int][]*assessment.Grade)
	for _, g := range grades {
		p := g.Period.Int()
		byPeriod[p] = append(byPeriod[p], g)
	}

	periods := make([]int, 0, len(byPeriod))
	for p := range byPeriod {
		periods = append(periods, p)
	}
	sort.Ints(periods)

	summaries := make([]PeriodSummaryDTO, 0, len(periods))
	for _, p := range periods {
		bucket := byPeriod[p]
		avg, err := assessment.ComputeAverage(bucket)
		if err != nil {
			continue
		}

		dto := PeriodSummaryDTO{
			Period:         p,
			Grades:         make([]GradeDTO, len(bucket)),
			Average:        avg.Value,
			Classification: string(avg.Classification),
		}
		for i, g := range bucket {
			dto.Grades[i] = toGradeDTO(g)
		}
		summaries = append(summaries, dto)
	}
	return summaries
}
