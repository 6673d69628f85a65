package repositories

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bayms/backend/internal/app/models"
	"github.com/bayms/backend/internal/pkg/apperrors"
	"github.com/bayms/backend/internal/pkg/dberrors"
)

// Collection selects which member table a profile operation targets.
// Members and applicants share the same record shape.
type Collection string

const (
	CollectionMembers    Collection = "members"
	CollectionApplicants Collection = "applicants"
)

// memberColumns is the set of columns a partial update may touch. The
// email key column is deliberately absent.
var memberColumns = map[string]bool{
	"uid": true, "name": true, "phone": true, "birthday": true,
	"street": true, "city": true, "state": true, "zip": true,
	"school": true, "grade": true,
	"picture": true, "instruments": true, "bio": true,
	"parent1name": true, "parent1email": true, "parent1phone": true,
	"parent2name": true, "parent2email": true, "parent2phone": true,
	"graduated": true, "rejected": true,
}

const memberSelectColumns = `uid, name, email, phone, birthday, street, city, state, zip,
	school, grade, picture, instruments, bio,
	parent1name, parent1email, parent1phone, parent2name, parent2email, parent2phone,
	graduated, rejected`

// MemberRepository handles member and applicant database operations
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a new record with the identity fields only; the rest of
// the profile is filled in section by section afterwards.
func (r *MemberRepository) Create(ctx context.Context, col Collection, member *models.Member) error {
	if err := validCollection(col); err != nil {
		return err
	}

	_, err := r.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (uid, email, name, phone)
		VALUES ($1, $2, $3, $4)`, col),
		member.UserID, member.Email, member.Name, member.Phone)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating %s record: %w", col, err)
	}

	return nil
}

// GetByEmail retrieves a record by its email key
func (r *MemberRepository) GetByEmail(ctx context.Context, col Collection, email string) (*models.Member, error) {
	if err := validCollection(col); err != nil {
		return nil, err
	}

	member := &models.Member{}
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE email = $1`, memberSelectColumns, col),
		email).Scan(
		&member.UserID, &member.Name, &member.Email, &member.Phone, &member.Birthday,
		&member.Street, &member.City, &member.State, &member.Zip,
		&member.School, &member.Grade, &member.Picture, &member.Instruments, &member.Bio,
		&member.Parent1Name, &member.Parent1Email, &member.Parent1Phone,
		&member.Parent2Name, &member.Parent2Email, &member.Parent2Phone,
		&member.Graduated, &member.Rejected)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("error finding %s record: %w", col, err)
	}

	return member, nil
}

// List retrieves every record in the collection. Ordering is
// caller-defined via orderBy, which must be a known column; an empty
// orderBy leaves the order unspecified.
func (r *MemberRepository) List(ctx context.Context, col Collection, orderBy string) ([]models.Member, error) {
	if err := validCollection(col); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT %s FROM %s`, memberSelectColumns, col)
	if orderBy != "" {
		if !memberColumns[orderBy] && orderBy != "email" {
			return nil, fmt.Errorf("unknown order column: %s", orderBy)
		}
		query += ` ORDER BY ` + orderBy + ` ASC`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", col, err)
	}
	defer rows.Close()

	var result []models.Member
	for rows.Next() {
		var member models.Member
		err := rows.Scan(
			&member.UserID, &member.Name, &member.Email, &member.Phone, &member.Birthday,
			&member.Street, &member.City, &member.State, &member.Zip,
			&member.School, &member.Grade, &member.Picture, &member.Instruments, &member.Bio,
			&member.Parent1Name, &member.Parent1Email, &member.Parent1Phone,
			&member.Parent2Name, &member.Parent2Email, &member.Parent2Phone,
			&member.Graduated, &member.Rejected)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", col, err)
		}
		result = append(result, member)
	}

	return result, rows.Err()
}

// ListPendingApplicants retrieves applicants whose application has not
// been rejected, ordered by name. Rejected applicants keep their record
// so they can check their status, but they leave the review roster.
func (r *MemberRepository) ListPendingApplicants(ctx context.Context) ([]models.Member, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`
		SELECT %s
		FROM applicants
		WHERE rejected = FALSE
		ORDER BY name ASC`, memberSelectColumns))
	if err != nil {
		return nil, fmt.Errorf("error listing pending applicants: %w", err)
	}
	defer rows.Close()

	var result []models.Member
	for rows.Next() {
		var member models.Member
		err := rows.Scan(
			&member.UserID, &member.Name, &member.Email, &member.Phone, &member.Birthday,
			&member.Street, &member.City, &member.State, &member.Zip,
			&member.School, &member.Grade, &member.Picture, &member.Instruments, &member.Bio,
			&member.Parent1Name, &member.Parent1Email, &member.Parent1Phone,
			&member.Parent2Name, &member.Parent2Email, &member.Parent2Phone,
			&member.Graduated, &member.Rejected)
		if err != nil {
			return nil, fmt.Errorf("error scanning applicant row: %w", err)
		}
		result = append(result, member)
	}

	return result, rows.Err()
}

// ListMusicians retrieves the public musician projection of the members
// table, ordered by name.
func (r *MemberRepository) ListMusicians(ctx context.Context) ([]models.MusicianProfile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, picture, bio, grade, graduated, instruments
		FROM members
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing musicians: %w", err)
	}
	defer rows.Close()

	var result []models.MusicianProfile
	for rows.Next() {
		var profile models.MusicianProfile
		if err := rows.Scan(&profile.Name, &profile.Picture, &profile.Bio,
			&profile.Grade, &profile.Graduated, &profile.Instruments); err != nil {
			return nil, fmt.Errorf("error scanning musician row: %w", err)
		}
		result = append(result, profile)
	}

	return result, rows.Err()
}

// UpdateFields issues one partial update touching only the given
// columns, keyed by email. Columns outside the member schema are
// rejected before any SQL is built.
func (r *MemberRepository) UpdateFields(ctx context.Context, col Collection, email string, fields map[string]interface{}) error {
	if err := validCollection(col); err != nil {
		return err
	}
	if len(fields) == 0 {
		return nil
	}

	// Deterministic column order keeps the statement stable
	names := make([]string, 0, len(fields))
	for name := range fields {
		if !memberColumns[name] {
			return fmt.Errorf("unknown member column: %s", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	assignments := make([]string, 0, len(names))
	args := make([]interface{}, 0, len(names)+1)
	for i, name := range names {
		assignments = append(assignments, fmt.Sprintf("%s = $%d", name, i+1))
		args = append(args, fields[name])
	}
	args = append(args, email)

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE email = $%d`,
		col, strings.Join(assignments, ", "), len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating %s record: %w", col, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}

	return nil
}

// EmailExists checks if an email already exists in the collection
func (r *MemberRepository) EmailExists(ctx context.Context, col Collection, email string) (bool, error) {
	if err := validCollection(col); err != nil {
		return false, err
	}

	var exists bool
	err := r.db.QueryRow(ctx, fmt.Sprintf(`
		SELECT EXISTS(SELECT 1 FROM %s WHERE email = $1)`, col),
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

func validCollection(col Collection) error {
	switch col {
	case CollectionMembers, CollectionApplicants:
		return nil
	}
	return fmt.Errorf("unknown collection: %s", col)
}
