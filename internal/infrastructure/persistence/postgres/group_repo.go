package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/group"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// GROUP REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// GroupRepository implements group.Repository for PostgreSQL.
type GroupRepository struct {
	conn *Connection
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(conn *Connection) *GroupRepository {
	return &GroupRepository{conn: conn}
}

const groupColumns = `id, name, grade_level, capacity, lifecycle, teacher_id, created_at, updated_at`

// Create creates a new group.
func (r *GroupRepository) Create(ctx context.Context, g *group.Group) error {
	query := `
		INSERT INTO groups (id, name, grade_level, capacity, lifecycle, teacher_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		g.ID,
		g.Name,
		g.GradeLevel.String(),
		g.Capacity,
		string(g.Lifecycle),
		g.TeacherID,
		g.CreatedAt,
		g.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	return nil
}

// GetByID returns a group by ID.
func (r *GroupRepository) GetByID(ctx context.Context, id string) (*group.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)
	return scanGroup(row)
}

// GetByIDForUpdate returns a group by ID holding a row lock until the
// context-bound transaction ends. Outside a transaction the lock would
// be released immediately, which defeats the capacity check, so callers
// must wrap this in InTx.
func (r *GroupRepository) GetByIDForUpdate(ctx context.Context, id string) (*group.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups WHERE id = $1 FOR UPDATE`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)
	return scanGroup(row)
}

// Update updates a group.
func (r *GroupRepository) Update(ctx context.Context, g *group.Group) error {
	query := `
		UPDATE groups SET
			name = $1,
			grade_level = $2,
			capacity = $3,
			lifecycle = $4,
			teacher_id = $5,
			updated_at = $6
		WHERE id = $7
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		g.Name,
		g.GradeLevel.String(),
		g.Capacity,
		string(g.Lifecycle),
		g.TeacherID,
		time.Now().UTC(),
		g.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}

	if result.RowsAffected() == 0 {
		return group.ErrGroupNotFound
	}

	return nil
}

// List returns groups with pagination, optionally filtered by lifecycle
// state and teacher.
func (r *GroupRepository) List(ctx context.Context, lifecycle group.Lifecycle, teacherID string, limit, offset int) ([]*group.Group, error) {
	query := `SELECT ` + groupColumns + ` FROM groups`
	args := []interface{}{}
	cond := ""

	if lifecycle != "" {
		cond = fmt.Sprintf(" WHERE lifecycle = $%d", len(args)+1)
		args = append(args, string(lifecycle))
	}
	if teacherID != "" {
		if cond == "" {
			cond = fmt.Sprintf(" WHERE teacher_id = $%d", len(args)+1)
		} else {
			cond += fmt.Sprintf(" AND teacher_id = $%d", len(args)+1)
		}
		args = append(args, teacherID)
	}

	query += cond + fmt.Sprintf(" ORDER BY created_at LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*group.Group
	for rows.Next() {
		g, err := scanGroupFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group row: %w", err)
		}
		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func scanGroup(row pgx.Row) (*group.Group, error) {
	g, err := scanGroupFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, group.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to scan group: %w", err)
	}
	return g, nil
}

func scanGroupFrom(row pgx.Row) (*group.Group, error) {
	var g group.Group
	var gradeLevel, lifecycle string

	err := row.Scan(
		&g.ID,
		&g.Name,
		&gradeLevel,
		&g.Capacity,
		&lifecycle,
		&g.TeacherID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.GradeLevel = shared.GradeLevel(gradeLevel)
	g.Lifecycle = group.Lifecycle(lifecycle)
	return &g, nil
}
