package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/assessment"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GRADE REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// GradeRepository implements assessment.GradeRepository for PostgreSQL.
type GradeRepository struct {
	conn *Connection
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(conn *Connection) *GradeRepository {
	return &GradeRepository{conn: conn}
}

const gradeColumns = `id, value, period, achievement_id, student_id, teacher_id, created_at, updated_at`

// Create creates a new grade.
func (r *GradeRepository) Create(ctx context.Context, g *assessment.Grade) error {
	query := `
		INSERT INTO grades (id, value, period, achievement_id, student_id, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		g.ID,
		g.Value,
		g.Period.Int(),
		g.AchievementID,
		g.StudentID,
		g.TeacherID,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create grade: %w", err)
	}

	return nil
}

// GetByID returns a grade by ID.
func (r *GradeRepository) GetByID(ctx context.Context, id string) (*assessment.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)

	g, err := scanGradeFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, assessment.ErrGradeNotFound
		}
		return nil, fmt.Errorf("failed to scan grade: %w", err)
	}
	return g, nil
}

// Update updates a grade.
func (r *GradeRepository) Update(ctx context.Context, g *assessment.Grade) error {
	query := `
		UPDATE grades SET
			value = $1,
			period = $2,
			updated_at = $3
		WHERE id = $4
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		g.Value,
		g.Period.Int(),
		time.Now().UTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update grade: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assessment.ErrGradeNotFound
	}

	return nil
}

// ListByStudent returns all grades of a student in insertion order.
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]*assessment.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 ORDER BY created_at`
	return r.queryGrades(ctx, query, studentID)
}

// ListByStudentAndPeriod returns the grades of a student for one period.
func (r *GradeRepository) ListByStudentAndPeriod(ctx context.Context, studentID string, period shared.Period) ([]*assessment.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE student_id = $1 AND period = $2 ORDER BY created_at`
	return r.queryGrades(ctx, query, studentID, period.Int())
}

func (r *GradeRepository) queryGrades(ctx context.Context, query string, args ...interface{}) ([]*assessment.Grade, error) {
	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	defer rows.Close()

	var grades []*assessment.Grade
	for rows.Next() {
		g, err := scanGradeFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade row: %w", err)
		}
		grades = append(grades, g)
	}

	return grades, rows.Err()
}

func scanGradeFrom(row pgx.Row) (*assessment.Grade, error) {
	var g assessment.Grade
	var period int

	err := row.Scan(
		&g.ID,
		&g.Value,
		&period,
		&g.AchievementID,
		&g.StudentID,
		&g.TeacherID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.Period = shared.Period(period)
	return &g, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ACHIEVEMENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// AchievementRepository implements assessment.AchievementRepository for PostgreSQL.
type AchievementRepository struct {
	conn *Connection
}

// NewAchievementRepository creates a new AchievementRepository.
func NewAchievementRepository(conn *Connection) *AchievementRepository {
	return &AchievementRepository{conn: conn}
}

const achievementColumns = `id, name, description, category, status, created_at, updated_at`

// Create creates a new achievement.
func (r *AchievementRepository) Create(ctx context.Context, a *assessment.Achievement) error {
	query := `
		INSERT INTO achievements (id, name, description, category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		a.ID,
		a.Name,
		a.Description,
		string(a.Category),
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create achievement: %w", err)
	}

	return nil
}

// GetByID returns an achievement by ID.
func (r *AchievementRepository) GetByID(ctx context.Context, id string) (*assessment.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)

	a, err := scanAchievementFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, assessment.ErrAchievementNotFound
		}
		return nil, fmt.Errorf("failed to scan achievement: %w", err)
	}
	return a, nil
}

// Update updates an achievement.
func (r *AchievementRepository) Update(ctx context.Context, a *assessment.Achievement) error {
	query := `
		UPDATE achievements SET
			name = $1,
			description = $2,
			category = $3,
			status = $4,
			updated_at = $5
		WHERE id = $6
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		a.Name,
		a.Description,
		string(a.Category),
		string(a.Status),
		time.Now().UTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update achievement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assessment.ErrAchievementNotFound
	}

	return nil
}

// Delete removes an achievement.
func (r *AchievementRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM achievements WHERE id = $1`

	result, err := r.conn.querier(ctx).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete achievement: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assessment.ErrAchievementNotFound
	}

	return nil
}

// List returns achievements, optionally filtered by category.
func (r *AchievementRepository) List(ctx context.Context, category assessment.Category) ([]*assessment.Achievement, error) {
	query := `SELECT ` + achievementColumns + ` FROM achievements`
	args := []interface{}{}

	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, string(category))
	}
	query += ` ORDER BY created_at`

	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	defer rows.Close()

	var achievements []*assessment.Achievement
	for rows.Next() {
		a, err := scanAchievementFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan achievement row: %w", err)
		}
		achievements = append(achievements, a)
	}

	return achievements, rows.Err()
}

func scanAchievementFrom(row pgx.Row) (*assessment.Achievement, error) {
	var a assessment.Achievement
	var category, status string

	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&category,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Category = assessment.Category(category)
	a.Status = assessment.AchievementStatus(status)
	return &a, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// OBSERVATION REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// ObservationRepository implements assessment.ObservationRepository for PostgreSQL.
type ObservationRepository struct {
	conn *Connection
}

// NewObservationRepository creates a new ObservationRepository.
func NewObservationRepository(conn *Connection) *ObservationRepository {
	return &ObservationRepository{conn: conn}
}

const observationColumns = `id, date, description, type, student_id, teacher_id, created_at`

// Create creates a new observation.
func (r *ObservationRepository) Create(ctx context.Context, o *assessment.Observation) error {
	query := `
		INSERT INTO observations (id, date, description, type, student_id, teacher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		o.ID,
		o.Date,
		o.Description,
		string(o.Type),
		o.StudentID,
		o.TeacherID,
		o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}

	return nil
}

// ListByStudent returns a student's observations, newest first.
func (r *ObservationRepository) ListByStudent(ctx context.Context, studentID string) ([]*assessment.Observation, error) {
	query := `SELECT ` + observationColumns + ` FROM observations WHERE student_id = $1 ORDER BY created_at DESC`
	return r.queryObservations(ctx, query, studentID)
}

// ListByTeacher returns a teacher's observations, newest first.
func (r *ObservationRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*assessment.Observation, error) {
	query := `SELECT ` + observationColumns + ` FROM observations WHERE teacher_id = $1 ORDER BY created_at DESC`
	return r.queryObservations(ctx, query, teacherID)
}

func (r *ObservationRepository) queryObservations(ctx context.Context, query string, args ...interface{}) ([]*assessment.Observation, error) {
	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	defer rows.Close()

	var observations []*assessment.Observation
	for rows.Next() {
		var o assessment.Observation
		var obsType string

		err := rows.Scan(
			&o.ID,
			&o.Date,
			&o.Description,
			&obsType,
			&o.StudentID,
			&o.TeacherID,
			&o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan observation row: %w", err)
		}

		o.Type = assessment.ObservationType(obsType)
		observations = append(observations, &o)
	}

	return observations, rows.Err()
}
