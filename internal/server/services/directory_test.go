package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	usersrepo "github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newDirectoryService(t *testing.T, repo usersrepo.Repository) *DirectoryService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewDirectoryService(repo, cfg)
}

type fakeUsersRepo struct {
	createIn  *models.User
	createErr error

	getByEmailOut *models.User
	getByEmailErr error

	getByIDOut *models.User
	getByIDErr error

	updateIn  *models.User
	updateErr error

	stampID  string
	stampAt  time.Time
	stampErr error

	searchIn  usersrepo.SearchQuery
	searchOut []*models.User
	searchN   int
	searchErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.createIn = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.CreatedAt = time.Now()
	u.IsActive = true
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailErr != nil {
		return nil, f.getByEmailErr
	}
	return f.getByEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getByIDErr != nil {
		return nil, f.getByIDErr
	}
	return f.getByIDOut, nil
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) (*models.User, error) {
	f.updateIn = u
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return u, nil
}

func (f *fakeUsersRepo) StampLastLogin(ctx context.Context, id string, at time.Time) error {
	f.stampID, f.stampAt = id, at
	return f.stampErr
}

func (f *fakeUsersRepo) Search(ctx context.Context, q usersrepo.SearchQuery) ([]*models.User, int, error) {
	f.searchIn = q
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.searchOut, f.searchN, nil
}

func hashOf(t *testing.T, password string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return h
}

// --- Register ---

func TestRegister_HashesPasswordAndIssuesToken(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newDirectoryService(t, repo)

	res, err := s.Register(context.Background(), "Alice", "Smith", " Alice@Example.ORG ", []byte("secret"))
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	if repo.createIn.Email != "alice@example.org" {
		t.Fatalf("email not normalized: %q", repo.createIn.Email)
	}
	if repo.createIn.ID == "" {
		t.Fatalf("no ID assigned")
	}
	if err := bcrypt.CompareHashAndPassword(repo.createIn.PasswordHash, []byte("secret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	userID, err := auth.GetUserIDFromToken(res.Token, []byte("k"))
	if err != nil || userID != repo.createIn.ID {
		t.Fatalf("token does not identify the new user: id=%q err=%v", userID, err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorAlreadyExists}
	s := newDirectoryService(t, repo)

	_, err := s.Register(context.Background(), "Alice", "Smith", "alice@example.org", []byte("secret"))
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("expected ErrorAlreadyExists, got %v", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := newDirectoryService(t, &fakeUsersRepo{})

	_, err := s.Register(context.Background(), "", "Smith", "alice@example.org", []byte("secret"))
	if err == nil {
		t.Fatalf("expected error for missing first name")
	}
}

// --- Login ---

func TestLogin_Success_StampsLastLogin(t *testing.T) {
	user := &models.User{
		ID:           "u-1",
		Email:        "alice@example.org",
		PasswordHash: hashOf(t, "secret"),
		IsActive:     true,
	}
	repo := &fakeUsersRepo{getByEmailOut: user}
	s := newDirectoryService(t, repo)

	res, err := s.Login(context.Background(), "alice@example.org", []byte("secret"))
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if repo.stampID != "u-1" {
		t.Fatalf("last login not stamped")
	}
	if res.User.LastLoginAt == nil {
		t.Fatalf("LastLoginAt not set on result")
	}
	if res.Token == "" {
		t.Fatalf("no token issued")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeUsersRepo{getByEmailOut: &models.User{
		ID: "u-1", PasswordHash: hashOf(t, "secret"), IsActive: true,
	}}
	s := newDirectoryService(t, repo)

	_, err := s.Login(context.Background(), "alice@example.org", []byte("wrong"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail_SameError(t *testing.T) {
	repo := &fakeUsersRepo{getByEmailErr: common.ErrorNotFound}
	s := newDirectoryService(t, repo)

	_, err := s.Login(context.Background(), "nobody@example.org", []byte("secret"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

func TestLogin_InactiveUser(t *testing.T) {
	repo := &fakeUsersRepo{getByEmailOut: &models.User{
		ID: "u-1", PasswordHash: hashOf(t, "secret"), IsActive: false,
	}}
	s := newDirectoryService(t, repo)

	_, err := s.Login(context.Background(), "alice@example.org", []byte("secret"))
	if !errors.Is(err, common.ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
}

// --- Search ---

func TestSearch_DerivesPagination(t *testing.T) {
	repo := &fakeUsersRepo{
		searchOut: []*models.User{{ID: "u-1"}, {ID: "u-2"}},
		searchN:   31,
	}
	s := newDirectoryService(t, repo)

	page, err := s.Search(context.Background(), usersrepo.SearchQuery{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	if page.Total != 31 || page.TotalPages != 4 {
		t.Fatalf("unexpected totals: %+v", page)
	}
	if !page.HasNext || !page.HasPrev {
		t.Fatalf("expected both page links on page 2 of 4: %+v", page)
	}
}

func TestSearch_EmptyResult(t *testing.T) {
	s := newDirectoryService(t, &fakeUsersRepo{searchN: 0})

	page, err := s.Search(context.Background(), usersrepo.SearchQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if page.TotalPages != 0 || page.HasNext || page.HasPrev {
		t.Fatalf("unexpected pagination for empty result: %+v", page)
	}
}

func TestSearch_AppliesLimits(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newDirectoryService(t, repo)

	if _, err := s.Search(context.Background(), usersrepo.SearchQuery{Page: 0, Limit: 1000}); err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if repo.searchIn.Page != 1 || repo.searchIn.Limit != maxPageLimit {
		t.Fatalf("limits not applied: %+v", repo.searchIn)
	}
}

// --- UpdateProfile ---

func TestUpdateProfile_ParsesDateAndSaves(t *testing.T) {
	repo := &fakeUsersRepo{getByIDOut: &models.User{ID: "u-1", Email: "alice@example.org"}}
	s := newDirectoryService(t, repo)

	got, err := s.UpdateProfile(context.Background(), "u-1", ProfileUpdate{
		FirstName:   "Alice",
		LastName:    "Smith",
		DateOfBirth: "1990-12-25",
		Interests:   []string{"Photography"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if got.DateOfBirth == nil || !got.DateOfBirth.Equal(time.Date(1990, 12, 25, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date not parsed: %v", got.DateOfBirth)
	}
	if repo.updateIn.FirstName != "Alice" {
		t.Fatalf("update not forwarded: %+v", repo.updateIn)
	}
}

func TestUpdateProfile_InvalidDate(t *testing.T) {
	repo := &fakeUsersRepo{getByIDOut: &models.User{ID: "u-1"}}
	s := newDirectoryService(t, repo)

	_, err := s.UpdateProfile(context.Background(), "u-1", ProfileUpdate{DateOfBirth: "25/12/1990"})
	if err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestUpdateProfile_UnknownUser(t *testing.T) {
	repo := &fakeUsersRepo{getByIDErr: common.ErrorNotFound}
	s := newDirectoryService(t, repo)

	_, err := s.UpdateProfile(context.Background(), "ghost", ProfileUpdate{})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
