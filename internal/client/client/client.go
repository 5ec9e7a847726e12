package client

import (
	"context"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// AuthClient is the authentication collaborator. Both calls return the
// authenticated profile together with the opaque access token issued by the
// server. Password confirmation never reaches this layer; the prompt/form
// code strips it before calling.
type AuthClient interface {
	Login(ctx context.Context, email string, password []byte) (*models.UserProfile, string, error)
	Register(ctx context.Context, firstName, lastName, email string, password []byte) (*models.UserProfile, string, error)
}

// DirectoryClient executes directory searches. Criteria must already be
// normalized; the result order and the pagination values are authoritative.
type DirectoryClient interface {
	Search(ctx context.Context, criteria models.SearchCriteria) (*models.SearchResult, error)
}

// ProfileClient commits profile edits and returns the server's authoritative
// record.
type ProfileClient interface {
	UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (*models.UserProfile, error)
}

// Client is the full collaborator surface used by the application.
type Client interface {
	AuthClient
	DirectoryClient
	ProfileClient

	// SetAccessToken installs a previously issued token, e.g. one rehydrated
	// from local storage at startup.
	SetAccessToken(token string)
	Ping(ctx context.Context) error
	Close() error
}
