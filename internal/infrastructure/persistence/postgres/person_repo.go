package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/academia-hub/academia-records-hub/internal/domain/person"
	"github.com/academia-hub/academia-records-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// PERSON REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// PersonRepository implements person.Repository for PostgreSQL.
type PersonRepository struct {
	conn *Connection
}

// NewPersonRepository creates a new PersonRepository.
func NewPersonRepository(conn *Connection) *PersonRepository {
	return &PersonRepository{conn: conn}
}

const personColumns = `id, name, email, password_hash, role, active,
	must_change_password, temporary_hash, created_at, updated_at`

// Create creates a new person.
func (r *PersonRepository) Create(ctx context.Context, p *person.Person) error {
	query := `
		INSERT INTO people (
			id, name, email, password_hash, role, active,
			must_change_password, temporary_hash, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.conn.querier(ctx).Exec(ctx, query,
		p.ID,
		p.Name,
		p.Email.String(),
		p.PasswordHash,
		string(p.Role),
		p.Active,
		p.MustChangePassword,
		p.TemporaryHash,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return person.ErrEmailTaken
		}
		return fmt.Errorf("failed to create person: %w", err)
	}

	return nil
}

// GetByID returns a person by internal ID.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, id)
	return r.scanPerson(row)
}

// GetByEmail returns a person by normalized email.
func (r *PersonRepository) GetByEmail(ctx context.Context, email shared.Email) (*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE email = $1`
	row := r.conn.querier(ctx).QueryRow(ctx, query, email.Normalize().String())
	return r.scanPerson(row)
}

// Update updates a person.
func (r *PersonRepository) Update(ctx context.Context, p *person.Person) error {
	query := `
		UPDATE people SET
			name = $1,
			email = $2,
			password_hash = $3,
			role = $4,
			active = $5,
			must_change_password = $6,
			temporary_hash = $7,
			updated_at = $8
		WHERE id = $9
	`

	result, err := r.conn.querier(ctx).Exec(ctx, query,
		p.Name,
		p.Email.String(),
		p.PasswordHash,
		string(p.Role),
		p.Active,
		p.MustChangePassword,
		p.TemporaryHash,
		time.Now().UTC(),
		p.ID,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return person.ErrEmailTaken
		}
		return fmt.Errorf("failed to update person: %w", err)
	}

	if result.RowsAffected() == 0 {
		return person.ErrPersonNotFound
	}

	return nil
}

// List returns people with pagination, optionally filtered by role.
func (r *PersonRepository) List(ctx context.Context, role person.Role, limit, offset int) ([]*person.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people`
	args := []interface{}{}

	if role != "" {
		query += ` WHERE role = $1`
		args = append(args, string(role))
	}
	query += fmt.Sprintf(` ORDER BY created_at LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.conn.querier(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []*person.Person
	for rows.Next() {
		p, err := r.scanPersonRow(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// ExistsByEmail reports whether a person record holds the email.
func (r *PersonRepository) ExistsByEmail(ctx context.Context, email shared.Email) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM people WHERE email = $1)`

	var exists bool
	err := r.conn.querier(ctx).QueryRow(ctx, query, email.Normalize().String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}

	return exists, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Scanning
// ─────────────────────────────────────────────────────────────────────────────

func (r *PersonRepository) scanPerson(row pgx.Row) (*person.Person, error) {
	p, err := scanPersonFrom(row)
	if err != nil {
		if IsNoRows(err) {
			return nil, person.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to scan person: %w", err)
	}
	return p, nil
}

func (r *PersonRepository) scanPersonRow(rows pgx.Rows) (*person.Person, error) {
	p, err := scanPersonFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan person row: %w", err)
	}
	return p, nil
}

func scanPersonFrom(row pgx.Row) (*person.Person, error) {
	var p person.Person
	var email, role string

	err := row.Scan(
		&p.ID,
		&p.Name,
		&email,
		&p.PasswordHash,
		&role,
		&p.Active,
		&p.MustChangePassword,
		&p.TemporaryHash,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Email = shared.Email(email)
	p.Role = person.Role(role)
	return &p, nil
}
