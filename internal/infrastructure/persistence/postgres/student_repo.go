package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
	"github.com/academia-hub/academia-records-hub/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository for PostgreSQL.
// Nullable UUID references map to empty strings on the entity.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

const studentColumns = `id, name, surname, grade_level, civil_registry, status,
	guardian_id, group_id, applicant_id, created_at, updated_at`

// Create creates a new student.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	query := `
		INSERT INTO students (
			id, name, surname, grade_level, civil_registry, status,
			guardian_id, group_id, applicant_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		s.ID,
		s.Name,
		s.Surname,
		s.GradeLevel.String(),
		s.CivilRegistry,
		string(s.Status),
		nullableID(s.GuardianID),
		nullableID(s.GroupID),
		nullableID(s.ApplicantID),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// GetByID returns a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id string) (*student.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)

	s, err := scanStudentFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, student.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to scan student: %w", err)
	}
	return s, nil
}

// GetByIDs returns the students for the given ids, in input order. Any
// unresolved id fails the whole lookup.
func (r *StudentRepository) GetByIDs(ctx context.Context, ids []string) ([]*student.Student, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = ANY($1)`

	rows, err := r.conn.querier(ctx).Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]*student.Student, len(ids))
	for rows.Next() {
		s, err := scanStudentFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		byID[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	students := make([]*student.Student, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			return nil, student.ErrStudentNotFound
		}
		students = append(students, s)
	}
	return students, nil
}

// Update updates a student.
func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	query := `
		UPDATE students SET
			name = $1,
			surname = $2,
			grade_level = $3,
			civil_registry = $4,
			status = $5,
			guardian_id = $6,
			group_id = $7,
			applicant_id = $8,
			updated_at = $9
		WHERE id = $10
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		s.Name,
		s.Surname,
		s.GradeLevel.String(),
		s.CivilRegistry,
		string(s.Status),
		nullableID(s.GuardianID),
		nullableID(s.GroupID),
		nullableID(s.ApplicantID),
		time.Now().UTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}

	if result.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// ListByGroup returns the students assigned to a group.
func (r *StudentRepository) ListByGroup(ctx context.Context, groupID string) ([]*student.Student, error) {
	return r.listWhere(ctx, "group_id = $1", groupID)
}

// ListByApplicant returns the prospect students of an application.
func (r *StudentRepository) ListByApplicant(ctx context.Context, applicantID string) ([]*student.Student, error) {
	return r.listWhere(ctx, "applicant_id = $1", applicantID)
}

// ListByGuardian returns the students in a guardian's care.
func (r *StudentRepository) ListByGuardian(ctx context.Context, guardianID string) ([]*student.Student, error) {
	return r.listWhere(ctx, "guardian_id = $1", guardianID)
}

// CountByGroup returns the number of students assigned to a group.
func (r *StudentRepository) CountByGroup(ctx context.Context, groupID string) (int, error) {
	query := `SELECT COUNT(*) FROM students WHERE group_id = $1`

	var count int
	err := r.conn.querier(ctx).QueryRow(ctx, query, groupID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}

	return count, nil
}

func (r *StudentRepository) listWhere(ctx context.Context, cond string, arg interface{}) ([]*student.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE ` + cond + ` ORDER BY created_at`

	rows, err := r.conn.querier(ctx).Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []*student.Student
	for rows.Next() {
		s, err := scanStudentFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student row: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// ─────────────────────────────────────────────────────────────────────────────
// Scanning
// ─────────────────────────────────────────────────────────────────────────────

func scanStudentFrom(row pgx.Row) (*student.Student, error) {
	var s student.Student
	var gradeLevel, status string
	var guardianID, groupID, applicantID *string

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Surname,
		&gradeLevel,
		&s.CivilRegistry,
		&status,
		&guardianID,
		&groupID,
		&applicantID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.GradeLevel = shared.GradeLevel(gradeLevel)
	s.Status = student.Status(status)
	s.GuardianID = stringOrEmpty(guardianID)
	s.GroupID = stringOrEmpty(groupID)
	s.ApplicantID = stringOrEmpty(applicantID)
	return &s, nil
}

// nullableID maps an empty string to NULL for UUID columns.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
