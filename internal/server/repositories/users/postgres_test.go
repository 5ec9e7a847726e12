package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func userRowColumns() []string {
	return []string{"id", "email", "password_hash", "first_name", "last_name",
		"city", "country", "gender", "date_of_birth", "bio", "interests",
		"skills", "is_active", "created_at", "last_login_at"}
}

func addUserRow(rows *sqlmock.Rows, id, email string) *sqlmock.Rows {
	return rows.AddRow(id, email, []byte("hash"), "Alice", "Smith",
		"Paris", "France", "female", nil, "", []byte(`["Photography"]`),
		[]byte(`[]`), true, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), nil)
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(.*\)\s*VALUES\s*\(.*\)\s*RETURNING\s+created_at\s*$`

	rows := sqlmock.NewRows([]string{"created_at"}).
		AddRow(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	mock.ExpectQuery(q).WillReturnRows(rows)

	u := &models.User{
		ID:           "u-1",
		Email:        "alice@example.org",
		PasswordHash: []byte("hash"),
		FirstName:    "Alice",
		LastName:     "Smith",
	}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.CreatedAt.IsZero() || !got.IsActive {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

	_, err := repo.Create(context.Background(), &models.User{ID: "u-1", Email: "alice@example.org"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`

	rows := addUserRow(sqlmock.NewRows(userRowColumns()), "u-1", "alice@example.org")
	mock.ExpectQuery(q).WithArgs("alice@example.org").WillReturnRows(rows)

	got, err := repo.GetByEmail(context.Background(), "alice@example.org")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.ID != "u-1" || got.FirstName != "Alice" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if len(got.Interests) != 1 || got.Interests[0] != "Photography" {
		t.Fatalf("interests not decoded: %+v", got.Interests)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT`).WithArgs("nobody@example.org").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.org")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestStampLastLogin(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+last_login_at\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	at := time.Now()
	mock.ExpectExec(q).WithArgs("u-1", at).WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.StampLastLogin(context.Background(), "u-1", at); err != nil {
		t.Fatalf("StampLastLogin error: %v", err)
	}
}

func TestSearch_CountAndPage(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users\s+WHERE\s+is_active`).
		WithArgs("%smith%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := addUserRow(sqlmock.NewRows(userRowColumns()), "u-1", "alice@example.org")
	addUserRow(rows, "u-2", "bob@example.org")
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+users\s+WHERE\s+is_active.*ORDER\s+BY\s+created_at\s+DESC.*LIMIT\s+10\s+OFFSET\s+10`).
		WithArgs("%smith%").
		WillReturnRows(rows)

	got, total, err := repo.Search(context.Background(), SearchQuery{
		Search: "smith", SortBy: "createdAt", SortOrder: "DESC", Page: 2, Limit: 10,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if total != 12 || len(got) != 2 {
		t.Fatalf("unexpected result: total=%d users=%d", total, len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearch_SortWhitelist(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT\s+COUNT`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	// unknown sort field falls back to created_at
	mock.ExpectQuery(`ORDER\s+BY\s+created_at\s+DESC`).
		WillReturnRows(sqlmock.NewRows(userRowColumns()))

	_, _, err := repo.Search(context.Background(), SearchQuery{
		SortBy: "passwordHash; DROP TABLE users", SortOrder: "DESC", Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearch_AgeFilterArgs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	countQ := regexp.MustCompile(`date_of_birth`)

	mock.ExpectQuery(countQ.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(countQ.String()).
		WillReturnRows(sqlmock.NewRows(userRowColumns()))

	_, _, err := repo.Search(context.Background(), SearchQuery{
		MinAge: 25, MaxAge: 35, Page: 1, Limit: 10,
	})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
}
