package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/userdir/internal/server/models"
)

// SearchQuery carries the directory filters as received from the client.
// Zero values mean "no filter". Page is 1-based.
type SearchQuery struct {
	Search  string
	City    string
	Country string
	Gender  string
	MinAge  int
	MaxAge  int

	SortBy    string
	SortOrder string

	Page  int
	Limit int
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	StampLastLogin(ctx context.Context, id string, at time.Time) error
	Search(ctx context.Context, q SearchQuery) ([]*models.User, int, error)
}
