package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/summons"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUMMONS REPOSITORY IMPLEMENTATION
// Participant sets live in join tables keyed by position so the original
// ordering survives a round trip.
// ══════════════════════════════════════════════════════════════════════════════

// SummonsRepository implements summons.Repository for PostgreSQL.
type SummonsRepository struct {
	conn *Connection
}

// NewSummonsRepository creates a new SummonsRepository.
func NewSummonsRepository(conn *Connection) *SummonsRepository {
	return &SummonsRepository{conn: conn}
}

const summonsColumns = `id, type, scheduled_at, reason, status, created_at, updated_at`

// Create stores a new summons with its participant sets.
func (r *SummonsRepository) Create(ctx context.Context, s *summons.Summons) error {
	q := r.conn.querier(ctx)

	query := `
		INSERT INTO summonses (id, type, scheduled_at, reason, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := q.Exec(ctx, query,
		s.ID,
		string(s.Type),
		s.ScheduledAt,
		s.Reason,
		string(s.Status),
		s.CreatedAt,
		s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create summons: %w", err)
	}

	if err := insertParticipants(ctx, q, "summons_guardians", "guardian_id", s.ID, s.GuardianIDs); err != nil {
		return err
	}
	if err := insertParticipants(ctx, q, "summons_teachers", "teacher_id", s.ID, s.TeacherIDs); err != nil {
		return err
	}
	if err := insertParticipants(ctx, q, "summons_applicants", "applicant_id", s.ID, s.ApplicantIDs); err != nil {
		return err
	}

	return nil
}

// GetByID returns a summons by ID with its participant sets.
func (r *SummonsRepository) GetByID(ctx context.Context, id string) (*summons.Summons, error) {
	query := `SELECT ` + summonsColumns + ` FROM summonses WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)

	s, err := scanSummonsFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, summons.ErrSummonsNotFound
		}
		return nil, fmt.Errorf("failed to scan summons: %w", err)
	}

	if err := r.loadParticipants(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Update persists changes to an existing summons. Participant sets are
// immutable after creation; only the mutable columns are written.
func (r *SummonsRepository) Update(ctx context.Context, s *summons.Summons) error {
	query := `
		UPDATE summonses SET
			scheduled_at = $1,
			reason = $2,
			status = $3,
			updated_at = $4
		WHERE id = $5
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		s.ScheduledAt,
		s.Reason,
		string(s.Status),
		time.Now().UTC(),
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update summons: %w", err)
	}

	if result.RowsAffected() == 0 {
		return summons.ErrSummonsNotFound
	}

	return nil
}

// List returns summonses matching the filter with pagination.
func (r *SummonsRepository) List(ctx context.Context, filter summons.Filter, limit, offset int) ([]*summons.Summons, error) {
	query := `SELECT DISTINCT s.id, s.type, s.scheduled_at, s.reason, s.status, s.created_at, s.updated_at
		FROM summonses s`
	args := []interface{}{}
	conds := []string{}

	if filter.GuardianID != "" {
		query += ` JOIN summons_guardians sg ON sg.summons_id = s.id`
		conds = append(conds, fmt.Sprintf("sg.guardian_id = $%d", len(args)+1))
		args = append(args, filter.GuardianID)
	}
	if filter.TeacherID != "" {
		query += ` JOIN summons_teachers st ON st.summons_id = s.id`
		conds = append(conds, fmt.Sprintf("st.teacher_id = $%d", len(args)+1))
		args = append(args, filter.TeacherID)
	}
	if filter.Type != "" {
		conds = append(conds, fmt.Sprintf("s.type = $%d", len(args)+1))
		args = append(args, string(filter.Type))
	}
	if filter.Status != "" {
		conds = append(conds, fmt.Sprintf("s.status = $%d", len(args)+1))
		args = append(args, string(filter.Status))
	}

	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += fmt.Sprintf(` ORDER BY s.scheduled_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list summonses: %w", err)
	}
	defer rows.Close()

	var summonses []*summons.Summons
	for rows.Next() {
		s, err := scanSummonsFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summons row: %w", err)
		}
		summonses = append(summonses, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range summonses {
		if err := r.loadParticipants(ctx, s); err != nil {
			return nil, err
		}
	}
	return summonses, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Participants
// ─────────────────────────────────────────────────────────────────────────────

func insertParticipants(ctx context.Context, q Querier, table, column, summonsID string, ids []string) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (summons_id, %s, position) VALUES ($1, $2, $3)",
		table, column,
	)
	for i, id := range ids {
		if _, err := q.Exec(ctx, query, summonsID, id, i); err != nil {
			return fmt.Errorf("failed to insert %s participant: %w", column, err)
		}
	}
	return nil
}

func (r *SummonsRepository) loadParticipants(ctx context.Context, s *summons.Summons) error {
	var err error
	if s.GuardianIDs, err = r.participantIDs(ctx, "summons_guardians", "guardian_id", s.ID); err != nil {
		return err
	}
	if s.TeacherIDs, err = r.participantIDs(ctx, "summons_teachers", "teacher_id", s.ID); err != nil {
		return err
	}
	if s.ApplicantIDs, err = r.participantIDs(ctx, "summons_applicants", "applicant_id", s.ID); err != nil {
		return err
	}
	return nil
}

func (r *SummonsRepository) participantIDs(ctx context.Context, table, column, summonsID string) ([]string, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE summons_id = $1 ORDER BY position",
		column, table,
	)

	rows, err := r.conn.querier(ctx).Query(ctx, query, summonsID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s participants: %w", column, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanSummonsFrom(row pgx.Row) (*summons.Summons, error) {
	var s summons.Summons
	var sType, status string

	err := row.Scan(
		&s.ID,
		&sType,
		&s.ScheduledAt,
		&s.Reason,
		&status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Type = summons.Type(sType)
	s.Status = summons.Status(status)
	return &s, nil
}
