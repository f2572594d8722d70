package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/admission"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPLICANT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// ApplicantRepository implements admission.Repository for PostgreSQL.
type ApplicantRepository struct {
	conn *Connection
}

// NewApplicantRepository creates a new ApplicantRepository.
func NewApplicantRepository(conn *Connection) *ApplicantRepository {
	return &ApplicantRepository{conn: conn}
}

const applicantColumns = `id, person_id, state, interview_date, created_at, updated_at`

// Create creates a new applicant.
func (r *ApplicantRepository) Create(ctx context.Context, a *admission.Applicant) error {
	query := `
		INSERT INTO applicants (id, person_id, state, interview_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		a.ID,
		a.PersonID,
		string(a.State),
		a.InterviewDate,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create applicant: %w", err)
	}

	return nil
}

// GetByID returns an applicant by ID.
func (r *ApplicantRepository) GetByID(ctx context.Context, id string) (*admission.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)
	return scanApplicant(row)
}

// GetByPersonID returns the applicant attached to a person account.
func (r *ApplicantRepository) GetByPersonID(ctx context.Context, personID string) (*admission.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE person_id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, personID)
	return scanApplicant(row)
}

// Update updates an applicant.
func (r *ApplicantRepository) Update(ctx context.Context, a *admission.Applicant) error {
	query := `
		UPDATE applicants SET
			state = $1,
			interview_date = $2,
			updated_at = $3
		WHERE id = $4
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		string(a.State),
		a.InterviewDate,
		time.Now().UTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update applicant: %w", err)
	}

	if result.RowsAffected() == 0 {
		return admission.ErrApplicantNotFound
	}

	return nil
}

// List returns applicants with pagination, optionally filtered by state.
func (r *ApplicantRepository) List(ctx context.Context, state admission.State, limit, offset int) ([]*admission.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants`
	args := []interface{}{}

	if state != "" {
		query += ` WHERE state = $1`
		args = append(args, string(state))
	}
	query += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*admission.Applicant
	for rows.Next() {
		a, err := scanApplicantFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan applicant row: %w", err)
		}
		applicants = append(applicants, a)
	}

	return applicants, rows.Err()
}

func scanApplicant(row pgx.Row) (*admission.Applicant, error) {
	a, err := scanApplicantFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, admission.ErrApplicantNotFound
		}
		return nil, fmt.Errorf("failed to scan applicant: %w", err)
	}
	return a, nil
}

func scanApplicantFrom(row pgx.Row) (*admission.Applicant, error) {
	var a admission.Applicant
	var state string

	err := row.Scan(
		&a.ID,
		&a.PersonID,
		&state,
		&a.InterviewDate,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.State = admission.State(state)
	return &a, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PRE-REGISTRATION FORM REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// FormRepository implements admission.FormRepository for PostgreSQL.
type FormRepository struct {
	conn *Connection
}

// NewFormRepository creates a new FormRepository.
func NewFormRepository(conn *Connection) *FormRepository {
	return &FormRepository{conn: conn}
}

// GetByApplicantID returns the form for an applicant.
func (r *FormRepository) GetByApplicantID(ctx context.Context, applicantID string) (*admission.Form, error) {
	query := `
		SELECT id, applicant_id, guardian_name, guardian_surname, guardian_phone,
			   guardian_email, child_name, child_surname, desired_grade, birth_date,
			   civil_registry, allergies, medical_conditions, medications,
			   created_at, updated_at
		FROM preregistration_forms
		WHERE applicant_id = $1
	`

	var f admission.Form
	var guardianEmail, desiredGrade string
	var birthDate *time.Time

	err := r.conn.querier(ctx).QueryRow(ctx, query, applicantID).Scan(
		&f.ID,
		&f.ApplicantID,
		&f.GuardianName,
		&f.GuardianSurname,
		&f.GuardianPhone,
		&guardianEmail,
		&f.ChildName,
		&f.ChildSurname,
		&desiredGrade,
		&birthDate,
		&f.CivilRegistry,
		&f.Allergies,
		&f.MedicalConditions,
		&f.Medications,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		if IsNoRows(err) {
			return nil, admission.ErrFormNotFound
		}
		return nil, fmt.Errorf("failed to scan form: %w", err)
	}

	f.GuardianEmail = shared.Email(guardianEmail)
	f.DesiredGrade = shared.GradeLevel(desiredGrade)
	if birthDate != nil {
		f.BirthDate = *birthDate
	}
	return &f, nil
}

// Save creates or updates the form for its applicant. One form exists
// per applicant, so the upsert keys on applicant_id.
func (r *FormRepository) Save(ctx context.Context, f *admission.Form) error {
	query := `
		INSERT INTO preregistration_forms (
			id, applicant_id, guardian_name, guardian_surname, guardian_phone,
			guardian_email, child_name, child_surname, desired_grade, birth_date,
			civil_registry, allergies, medical_conditions, medications,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (applicant_id) DO UPDATE SET
			guardian_name = EXCLUDED.guardian_name,
			guardian_surname = EXCLUDED.guardian_surname,
			guardian_phone = EXCLUDED.guardian_phone,
			guardian_email = EXCLUDED.guardian_email,
			child_name = EXCLUDED.child_name,
			child_surname = EXCLUDED.child_surname,
			desired_grade = EXCLUDED.desired_grade,
			birth_date = EXCLUDED.birth_date,
			civil_registry = EXCLUDED.civil_registry,
			allergies = EXCLUDED.allergies,
			medical_conditions = EXCLUDED.medical_conditions,
			medications = EXCLUDED.medications,
			updated_at = EXCLUDED.updated_at
	`

	var birthDate *time.Time
	if !f.BirthDate.IsZero() {
		birthDate = &f.BirthDate
	}

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		f.ID,
		f.ApplicantID,
		f.GuardianName,
		f.GuardianSurname,
		f.GuardianPhone,
		f.GuardianEmail.Normalize().String(),
		f.ChildName,
		f.ChildSurname,
		f.DesiredGrade.String(),
		birthDate,
		f.CivilRegistry,
		f.Allergies,
		f.MedicalConditions,
		f.Medications,
		f.CreatedAt,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}

	return nil
}
