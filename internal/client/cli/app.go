package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/client/profile"
	"github.com/dmitrijs2005/userdir/internal/client/search"
	"github.com/dmitrijs2005/userdir/internal/client/session"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	api     client.Client
	session *session.Store
	search  *search.Controller
	profile *profile.Editor
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient, err := client.NewDirectoryClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	store := session.NewStore(db)

	return &App{
		config:  c,
		api:     apiClient,
		session: store,
		search:  search.NewController(apiClient, c.RequestTimeout),
		profile: profile.NewEditor(apiClient, store, c.RequestTimeout),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the saved session, installs its token on the API client and
// enters the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.api.Close() }()

	snap, err := a.session.Bootstrap(ctx)
	if err != nil {
		log.Printf("error restoring session: %s", err.Error())
	}
	if snap.IsAuthenticated {
		a.api.SetAccessToken(snap.Token)
		log.Printf("Welcome back, %s", snap.User.FullName())
	}

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().IsAuthenticated
}
