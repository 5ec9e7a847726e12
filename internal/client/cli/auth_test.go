package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/session"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func stubInputs(t *testing.T, answers []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", nil
		}
		v := answers[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeClient struct {
	// Login
	loginEmail string
	loginPass  []byte
	loginUser  *models.UserProfile
	loginToken string
	loginErr   error

	// Register
	regFirst, regLast, regEmail string
	regPass                     []byte
	regUser                     *models.UserProfile
	regToken                    string
	regErr                      error

	token string
}

func (f *fakeClient) Login(_ context.Context, email string, pass []byte) (*models.UserProfile, string, error) {
	f.loginEmail, f.loginPass = email, append([]byte(nil), pass...)
	return f.loginUser, f.loginToken, f.loginErr
}

func (f *fakeClient) Register(_ context.Context, first, last, email string, pass []byte) (*models.UserProfile, string, error) {
	f.regFirst, f.regLast, f.regEmail = first, last, email
	f.regPass = append([]byte(nil), pass...)
	return f.regUser, f.regToken, f.regErr
}

func (f *fakeClient) Search(context.Context, models.SearchCriteria) (*models.SearchResult, error) {
	return nil, nil
}

func (f *fakeClient) UpdateProfile(context.Context, models.ProfileUpdateRequest) (*models.UserProfile, error) {
	return nil, nil
}

func (f *fakeClient) SetAccessToken(token string) { f.token = token }
func (f *fakeClient) Ping(context.Context) error  { return nil }
func (f *fakeClient) Close() error                { return nil }

func newTestApp(t *testing.T, api *fakeClient) *App {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE session (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)

	store := session.NewStore(db)
	_, err = store.Bootstrap(context.Background())
	require.NoError(t, err)

	return &App{api: api, session: store}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeClient{
		loginUser:  &models.UserProfile{ID: "u-1", Email: "alice@example.org", FirstName: "Alice"},
		loginToken: "tok-1",
	}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, "alice@example.org", f.loginEmail)
	require.Equal(t, "secret", string(f.loginPass))

	// session persisted and token installed on the client
	require.True(t, a.isLoggedIn())
	require.Equal(t, "tok-1", f.token)
}

func TestLogin_Failure_StaysAnonymous(t *testing.T) {
	f := &fakeClient{loginErr: errors.New("invalid credentials")}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("wrong"))
	defer restore()

	require.Error(t, a.Login(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Empty(t, f.token)
}

func TestRegister_Success(t *testing.T) {
	f := &fakeClient{
		regUser:  &models.UserProfile{ID: "u-2", Email: "bob@example.org", FirstName: "Bob"},
		regToken: "tok-2",
	}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"Bob", "Jones", "bob@example.org"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, "Bob", f.regFirst)
	require.Equal(t, "Jones", f.regLast)
	require.Equal(t, "bob@example.org", f.regEmail)
	require.Equal(t, "secret", string(f.regPass))
	require.True(t, a.isLoggedIn())
}

func TestRegister_PasswordMismatch(t *testing.T) {
	f := &fakeClient{}
	a := newTestApp(t, f)

	origST, origGP := getSimpleText, getPassword
	defer func() { getSimpleText, getPassword = origST, origGP }()

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return "x", nil }
	calls := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		calls++
		if calls == 1 {
			return []byte("one"), nil
		}
		return []byte("two"), nil
	}

	require.Error(t, a.Register(context.Background()))
	// nothing reached the API
	require.Empty(t, f.regEmail)
	require.False(t, a.isLoggedIn())
}

func TestLogout_ClearsSessionAndToken(t *testing.T) {
	f := &fakeClient{
		loginUser:  &models.UserProfile{ID: "u-1", Email: "alice@example.org"},
		loginToken: "tok-1",
	}
	a := newTestApp(t, f)

	restore := stubInputs(t, []string{"alice@example.org"}, []byte("secret"))
	defer restore()
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Empty(t, f.token)
}

func TestLogout_WhenAnonymous_IsNoop(t *testing.T) {
	a := newTestApp(t, &fakeClient{})
	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
}
