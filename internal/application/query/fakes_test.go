package query

import (
	"context"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// Minimal in-memory fakes for the repositories the queries read from.

type fakeStudentRepo struct {
	students []*student.Student
}

func (r *fakeStudentRepo) Create(_ context.Context, s *student.Student) error {
	r.students = append(r.students, s)
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id string) (*student.Student, error) {
	for _, s := range r.students {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, student.ErrStudentNotFound
}

func (r *fakeStudentRepo) GetByIDs(ctx context.Context, ids []string) ([]*student.Student, error) {
	out := make([]*student.Student, 0, len(ids))
	for _, id := range ids {
		s, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, s *student.Student) error {
	for i, existing := range r.students {
		if existing.ID == s.ID {
			r.students[i] = s
			return nil
		}
	}
	return student.ErrStudentNotFound
}

func (r *fakeStudentRepo) ListByGroup(_ context.Context, groupID string) ([]*student.Student, error) {
	var out []*student.Student
	for _, s := range r.students {
		if s.GroupID == groupID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) ListByApplicant(_ context.Context, applicantID string) ([]*student.Student, error) {
	var out []*student.Student
	for _, s := range r.students {
		if s.ApplicantID == applicantID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) ListByGuardian(_ context.Context, guardianID string) ([]*student.Student, error) {
	var out []*student.Student
	for _, s := range r.students {
		if s.GuardianID == guardianID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStudentRepo) CountByGroup(ctx context.Context, groupID string) (int, error) {
	list, _ := r.ListByGroup(ctx, groupID)
	return len(list), nil
}

type fakeGradeRepo struct {
	grades []*assessment.Grade
}

func (r *fakeGradeRepo) Create(_ context.Context, g *assessment.Grade) error {
	r.grades = append(r.grades, g)
	return nil
}

func (r *fakeGradeRepo) GetByID(_ context.Context, id string) (*assessment.Grade, error) {
	for _, g := range r.grades {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, assessment.ErrGradeNotFound
}

func (r *fakeGradeRepo) Update(_ context.Context, g *assessment.Grade) error {
	for i, existing := range r.grades {
		if existing.ID == g.ID {
			r.grades[i] = g
			return nil
		}
	}
	return assessment.ErrGradeNotFound
}

func (r *fakeGradeRepo) ListByStudent(_ context.Context, studentID string) ([]*assessment.Grade, error) {
	var out []*assessment.Grade
	for _, g := range r.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGradeRepo) ListByStudentAndPeriod(_ context.Context, studentID string, period shared.Period) ([]*assessment.Grade, error) {
	var out []*assessment.Grade
	for _, g := range r.grades {
		if g.StudentID == studentID && g.Period == period {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeGroupRepo struct {
	groups []*group.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *group.Group) error {
	r.groups = append(r.groups, g)
	return nil
}

func (r *fakeGroupRepo) GetByID(_ context.Context, id string) (*group.Group, error) {
	for _, g := range r.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, group.ErrGroupNotFound
}

func (r *fakeGroupRepo) GetByIDForUpdate(ctx context.Context, id string) (*group.Group, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeGroupRepo) Update(_ context.Context, g *group.Group) error {
	for i, existing := range r.groups {
		if existing.ID == g.ID {
			r.groups[i] = g
			return nil
		}
	}
	return group.ErrGroupNotFound
}

func (r *fakeGroupRepo) List(_ context.Context, lifecycle group.Lifecycle, teacherID string, limit, offset int) ([]*group.Group, error) {
	var out []*group.Group
	for _, g := range r.groups {
		if lifecycle != "" && g.Lifecycle != lifecycle {
			continue
		}
		if teacherID != "" && g.TeacherID != teacherID {
			continue
		}
		out = append(out, g)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeApplicantRepo struct {
	applicants []*admission.Applicant
}

func (r *fakeApplicantRepo) Create(_ context.Context, a *admission.Applicant) error {
	r.applicants = append(r.applicants, a)
	return nil
}

func (r *fakeApplicantRepo) GetByID(_ context.Context, id string) (*admission.Applicant, error) {
	for _, a := range r.applicants {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, admission.ErrApplicantNotFound
}

func (r *fakeApplicantRepo) GetByPersonID(_ context.Context, personID string) (*admission.Applicant, error) {
	for _, a := range r.applicants {
		if a.PersonID == personID {
			return a, nil
		}
	}
	return nil, admission.ErrApplicantNotFound
}

func (r *fakeApplicantRepo) Update(_ context.Context, a *admission.Applicant) error {
	for i, existing := range r.applicants {
		if existing.ID == a.ID {
			r.applicants[i] = a
			return nil
		}
	}
	return admission.ErrApplicantNotFound
}

func (r *fakeApplicantRepo) List(_ context.Context, state admission.State, limit, offset int) ([]*admission.Applicant, error) {
	var out []*admission.Applicant
	for _, a := range r.applicants {
		if state != "" && a.State != state {
			continue
		}
		out = append(out, a)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// fakeReportCardCache records cache traffic for assertions.
type fakeReportCardCache struct {
	cards map[string]*GetReportCardResult
	hits  int
	sets  int
}

func newFakeReportCardCache() *fakeReportCardCache {
	return &fakeReportCardCache{cards: make(map[string]*GetReportCardResult)}
}

func (c *fakeReportCardCache) Get(_ context.Context, studentID string) (*GetReportCardResult, bool) {
	card, ok := c.cards[studentID]
	if ok {
		c.hits++
	}
	return card, ok
}

func (c *fakeReportCardCache) Set(_ context.Context, studentID string, card *GetReportCardResult) {
	c.sets++
	c.cards[studentID] = card
}

func (c *fakeReportCardCache) Invalidate(_ context.Context, studentID string) {
	delete(c.cards, studentID)
}

// fakeGroupRosterCache records cache traffic for assertions.
type fakeGroupRosterCache struct {
	rosters map[string]*GetGroupRosterResult
	hits    int
	sets    int
}

func newFakeGroupRosterCache() *fakeGroupRosterCache {
	return &fakeGroupRosterCache{rosters: make(map[string]*GetGroupRosterResult)}
}

func (c *fakeGroupRosterCache) Get(_ context.Context, groupID string) (*GetGroupRosterResult, bool) {
	roster, ok := c.rosters[groupID]
	if ok {
		c.hits++
	}
	return roster, ok
}

func (c *fakeGroupRosterCache) Set(_ context.Context, groupID string, roster *GetGroupRosterResult) {
	c.sets++
	c.rosters[groupID] = roster
}

func (c *fakeGroupRosterCache) Invalidate(_ context.Context, groupID string) {
	delete(c.rosters, groupID)
}
