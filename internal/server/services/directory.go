// Package services contains server-side business logic. This file implements
// DirectoryService, which handles registration, login, directory search and
// profile updates.
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/repositories/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthResult bundles the authenticated user with a freshly minted access
// token.
type AuthResult struct {
	User  *models.User
	Token string
}

// SearchPage is one page of directory results together with the derived
// pagination values. The server computes all of them; clients render them
// as-is.
type SearchPage struct {
	Users      []*models.User
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// ProfileUpdate carries the editable profile attributes. The whole set is
// applied at once; empty values clear the corresponding column.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	City        string
	Country     string
	Gender      string
	DateOfBirth string
	Bio         string
	Interests   []string
	Skills      []string
}

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// DirectoryService provides the directory operations:
// - Register: create users
// - Login: verify credentials and mint tokens
// - Search: filtered, paginated member listing
// - UpdateProfile: replace a member's profile attributes
type DirectoryService struct {
	users                       users.Repository
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewDirectoryService constructs a DirectoryService using the repository and
// server config.
func NewDirectoryService(repo users.Repository, cfg *config.Config) *DirectoryService {
	return &DirectoryService{
		users:                       repo,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// record with an access token. A taken email yields ErrorAlreadyExists.
func (s *DirectoryService) Register(ctx context.Context, firstName, lastName, email string, password []byte) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if firstName == "" || lastName == "" || email == "" || len(password) == 0 {
		return nil, fmt.Errorf("%w: all registration fields are required", common.ErrorInternal)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.authResult(created)
}

// Login verifies the credentials and, on success, stamps the login time and
// returns the user with a new access token. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *DirectoryService) Login(ctx context.Context, email string, password []byte) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, password); err != nil {
		return nil, common.ErrorUnauthorized
	}
	if !user.IsActive {
		return nil, common.ErrorUnauthorized
	}

	now := time.Now().UTC()
	if err := s.users.StampLastLogin(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("error stamping login: %w", err)
	}
	user.LastLoginAt = &now

	return s.authResult(user)
}

// Search runs the directory query and derives the pagination block from the
// total row count.
func (s *DirectoryService) Search(ctx context.Context, q users.SearchQuery) (*SearchPage, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}

	rows, total, err := s.users.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(q.Limit)))
	}

	return &SearchPage{
		Users:      rows,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    q.Page < totalPages,
		HasPrev:    q.Page > 1,
	}, nil
}

// UpdateProfile replaces the editable attributes of the user's record and
// returns the stored result.
func (s *DirectoryService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	dateOfBirth, err := parseDate(upd.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid date of birth: %w", err)
	}

	user.FirstName = strings.TrimSpace(upd.FirstName)
	user.LastName = strings.TrimSpace(upd.LastName)
	user.City = strings.TrimSpace(upd.City)
	user.Country = strings.TrimSpace(upd.Country)
	user.Gender = upd.Gender
	user.DateOfBirth = dateOfBirth
	user.Bio = upd.Bio
	user.Interests = upd.Interests
	user.Skills = upd.Skills

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

// GetUser returns one member record by ID.
func (s *DirectoryService) GetUser(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

func (s *DirectoryService) authResult(user *models.User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
