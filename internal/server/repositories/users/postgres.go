package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/dbx"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, city, country,
	gender, date_of_birth, bio, interests, skills, is_active, created_at, last_login_at`

// sortColumns whitelists the sortable fields; anything else falls back to
// created_at.
var sortColumns = map[string]string{
	"firstName":   "first_name",
	"lastName":    "last_name",
	"createdAt":   "created_at",
	"lastLoginAt": "last_login_at",
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	interests, skills, err := marshalLists(user)
	if err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (id, email, password_hash, first_name, last_name, city, country,
		        gender, date_of_birth, bio, interests, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING created_at
		 `

	err = r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.City, user.Country, user.Gender, user.DateOfBirth, user.Bio,
		interests, skills).Scan(&user.CreatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.IsActive = true
	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

// Update replaces the editable profile attributes of the row and returns the
// stored record.
func (r *PostgresRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {

	interests, skills, err := marshalLists(user)
	if err != nil {
		return nil, err
	}

	query :=
		`UPDATE users
		 SET first_name = $2, last_name = $3, city = $4, country = $5, gender = $6,
		     date_of_birth = $7, bio = $8, interests = $9, skills = $10
		 WHERE id = $1
		 RETURNING ` + userColumns

	return r.scanUser(r.db.QueryRowContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.City, user.Country,
		user.Gender, user.DateOfBirth, user.Bio, interests, skills))
}

func (r *PostgresRepository) StampLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, at); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Search runs the filtered directory query twice: once for the total count
// and once for the requested page. Both use the same WHERE clause so the
// count always matches the rows.
func (r *PostgresRepository) Search(ctx context.Context, q SearchQuery) ([]*models.User, int, error) {

	where, args := buildWhere(q)

	var total int
	countQuery := `SELECT COUNT(*) FROM users ` + where
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	orderBy := sortColumns[q.SortBy]
	if orderBy == "" {
		orderBy = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(q.SortOrder, "ASC") {
		direction = "ASC"
	}

	offset := (q.Page - 1) * q.Limit
	pageQuery := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY %s %s NULLS LAST LIMIT %d OFFSET %d`,
		userColumns, where, orderBy, direction, q.Limit, offset)

	rows, err := r.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		user, err := scanUserRow(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("db error: %w", err)
	}

	return result, total, nil
}

// buildWhere assembles the WHERE clause for Search. Only active users are
// visible in the directory. Age filters translate to birth date cutoffs
// relative to today.
func buildWhere(q SearchQuery) (string, []any) {
	conds := []string{"is_active"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Search != "" {
		p := arg("%" + q.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(first_name ILIKE %[1]s OR last_name ILIKE %[1]s OR email ILIKE %[1]s)", p))
	}
	if q.City != "" {
		conds = append(conds, fmt.Sprintf("lower(city) = lower(%s)", arg(q.City)))
	}
	if q.Country != "" {
		conds = append(conds, fmt.Sprintf("lower(country) = lower(%s)", arg(q.Country)))
	}
	if q.Gender != "" {
		conds = append(conds, fmt.Sprintf("gender = %s", arg(q.Gender)))
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if q.MinAge > 0 {
		// at least MinAge years old: born on or before today minus MinAge years
		conds = append(conds, fmt.Sprintf("date_of_birth <= %s", arg(today.AddDate(-q.MinAge, 0, 0))))
	}
	if q.MaxAge > 0 {
		// at most MaxAge years old: born after today minus MaxAge+1 years
		conds = append(conds, fmt.Sprintf("date_of_birth > %s", arg(today.AddDate(-q.MaxAge-1, 0, 0))))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*models.User, error) {
	user, err := scanUserRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return user, nil
}

func scanUserRow(scan func(dest ...any) error) (*models.User, error) {
	user := &models.User{}

	var (
		dateOfBirth sql.NullTime
		lastLoginAt sql.NullTime
		interests   []byte
		skills      []byte
	)

	err := scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName,
		&user.LastName, &user.City, &user.Country, &user.Gender, &dateOfBirth,
		&user.Bio, &interests, &skills, &user.IsActive, &user.CreatedAt, &lastLoginAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if dateOfBirth.Valid {
		user.DateOfBirth = &dateOfBirth.Time
	}
	if lastLoginAt.Valid {
		user.LastLoginAt = &lastLoginAt.Time
	}
	if err := json.Unmarshal(interests, &user.Interests); err != nil {
		return nil, fmt.Errorf("failed to decode interests: %w", err)
	}
	if err := json.Unmarshal(skills, &user.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}

	return user, nil
}

func marshalLists(user *models.User) ([]byte, []byte, error) {
	interests, err := json.Marshal(orEmpty(user.Interests))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode interests: %w", err)
	}
	skills, err := json.Marshal(orEmpty(user.Skills))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode skills: %w", err)
	}
	return interests, skills, nil
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
