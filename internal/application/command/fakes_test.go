package command

import (
	"context"
	"fmt"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

// In-memory repository fakes. Each keeps insertion order in a slice so
// list operations are deterministic.

// ─────────────────────────────────────────────────────────────────────────────
// Person
// ─────────────────────────────────────────────────────────────────────────────

type fakePersonRepo struct {
	people []*person.Person
}

func (r *fakePersonRepo) Create(_ context.Context, p *person.Person) error {
	for _, existing := range r.people {
		if existing.Email == p.Email {
			return person.ErrEmailTaken
		}
	}
	r.people = append(r.people, p)
	return nil
}

func (r *fakePersonRepo) GetByID(_ context.Context, id string) (*person.Person, error) {
	for _, p := range r.people {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, person.ErrPersonNotFound
}

func (r *fakePersonRepo) GetByEmail(_ context.Context, email shared.Email) (*person.Person, error) {
	for _, p := range r.people {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, person.ErrPersonNotFound
}

func (r *fakePersonRepo) Update(_ context.Context, p *person.Person) error {
	for i, existing := range r.people {
		if existing.ID == p.ID {
			r.people[i] = p
			return nil
		}
	}
	return person.ErrPersonNotFound
}

func (r *fakePersonRepo) List(_ context.Context, role person.Role, limit, offset int) ([]*person.Person, error) {
	var out []*person.Person
	for _, p := range r.people {
		if role != "" && p.Role != role {
			continue
		}
		out = append(out, p)
	}
	return paginate(out, limit, offset), nil
}

func (r *fakePersonRepo) ExistsByEmail(_ context.Context, email shared.Email) (bool, error) {
	for _, p := range r.people {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Admission
// ─────────────────────────────────────────────────────────────────────────────

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
	return paginate(out, limit, offset), nil
}

type fakeFormRepo struct {
	forms map[string]*admission.Form
}

func newFakeFormRepo() *fakeFormRepo {
	return &fakeFormRepo{forms: make(map[string]*admission.Form)}
}

func (r *fakeFormRepo) GetByApplicantID(_ context.Context, applicantID string) (*admission.Form, error) {
	f, ok := r.forms[applicantID]
	if !ok {
		return nil, admission.ErrFormNotFound
	}
	return f, nil
}

func (r *fakeFormRepo) Save(_ context.Context, f *admission.Form) error {
	r.forms[f.ApplicantID] = f
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Student
// ─────────────────────────────────────────────────────────────────────────────

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

// ─────────────────────────────────────────────────────────────────────────────
// Group
// ─────────────────────────────────────────────────────────────────────────────

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
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Assessment
// ─────────────────────────────────────────────────────────────────────────────

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

type fakeAchievementRepo struct {
	achievements []*assessment.Achievement
}

func (r *fakeAchievementRepo) Create(_ context.Context, a *assessment.Achievement) error {
	r.achievements = append(r.achievements, a)
	return nil
}

func (r *fakeAchievementRepo) GetByID(_ context.Context, id string) (*assessment.Achievement, error) {
	for _, a := range r.achievements {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, assessment.ErrAchievementNotFound
}

func (r *fakeAchievementRepo) Update(_ context.Context, a *assessment.Achievement) error {
	for i, existing := range r.achievements {
		if existing.ID == a.ID {
			r.achievements[i] = a
			return nil
		}
	}
	return assessment.ErrAchievementNotFound
}

func (r *fakeAchievementRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.achievements {
		if a.ID == id {
			r.achievements = append(r.achievements[:i], r.achievements[i+1:]...)
			return nil
		}
	}
	return assessment.ErrAchievementNotFound
}

func (r *fakeAchievementRepo) List(_ context.Context, category assessment.Category) ([]*assessment.Achievement, error) {
	var out []*assessment.Achievement
	for _, a := range r.achievements {
		if category != "" && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type fakeObservationRepo struct {
	observations []*assessment.Observation
}

func (r *fakeObservationRepo) Create(_ context.Context, o *assessment.Observation) error {
	r.observations = append(r.observations, o)
	return nil
}

func (r *fakeObservationRepo) ListByStudent(_ context.Context, studentID string) ([]*assessment.Observation, error) {
	var out []*assessment.Observation
	for i := len(r.observations) - 1; i >= 0; i-- {
		if r.observations[i].StudentID == studentID {
			out = append(out, r.observations[i])
		}
	}
	return out, nil
}

func (r *fakeObservationRepo) ListByTeacher(_ context.Context, teacherID string) ([]*assessment.Observation, error) {
	var out []*assessment.Observation
	for i := len(r.observations) - 1; i >= 0; i-- {
		if r.observations[i].TeacherID == teacherID {
			out = append(out, r.observations[i])
		}
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Summons
// ─────────────────────────────────────────────────────────────────────────────

type fakeSummonsRepo struct {
	summonses []*summons.Summons
}

func (r *fakeSummonsRepo) Create(_ context.Context, s *summons.Summons) error {
	r.summonses = append(r.summonses, s)
	return nil
}

func (r *fakeSummonsRepo) GetByID(_ context.Context, id string) (*summons.Summons, error) {
	for _, s := range r.summonses {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, summons.ErrSummonsNotFound
}

func (r *fakeSummonsRepo) Update(_ context.Context, s *summons.Summons) error {
	for i, existing := range r.summonses {
		if existing.ID == s.ID {
			r.summonses[i] = s
			return nil
		}
	}
	return summons.ErrSummonsNotFound
}

func (r *fakeSummonsRepo) List(_ context.Context, filter summons.Filter, limit, offset int) ([]*summons.Summons, error) {
	var out []*summons.Summons
	for _, s := range r.summonses {
		if filter.Type != "" && s.Type != filter.Type {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.TeacherID != "" && !contains(s.TeacherIDs, filter.TeacherID) {
			continue
		}
		if filter.GuardianID != "" && !contains(s.GuardianIDs, filter.GuardianID) {
			continue
		}
		out = append(out, s)
	}
	return paginate(out, limit, offset), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Credentials
// ─────────────────────────────────────────────────────────────────────────────

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hash:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

type fakeGenerator struct {
	next string
}

func (g fakeGenerator) Generate(int) (string, error) {
	if g.next != "" {
		return g.next, nil
	}
	return "temp-credential", nil
}

// fakePublisher records every published event for inspection.
type fakePublisher struct {
	events []shared.Event
}

func (p *fakePublisher) Publish(event shared.Event) error {
	p.events = append(p.events, event)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
