package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getOptionalText = GetOptionalText
var getPassword = GetPassword

// Register prompts for name, email and password (typed twice) and creates
// a new account. The confirmation copy never leaves this function; only the
// password itself is sent. On success the returned session is persisted and
// the user is logged in immediately.
//
// Both password byte slices are securely wiped before returning.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(os.Stdout, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		fmt.Println("Passwords do not match.")
		return errors.New("passwords do not match")
	}

	user, token, err := a.api.Register(ctx, firstName, lastName, email, password)
	if err != nil {
		fmt.Println(authMessage(err))
		return err
	}

	if err := a.finishLogin(ctx, user, token); err != nil {
		return err
	}

	fmt.Printf("Welcome, %s!\n", user.FullName())
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
//
// On success the profile and access token are persisted so the session
// survives a restart, and the token is installed on the API client for
// subsequent calls. The password is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, token, err := a.api.Login(ctx, email, password)
	if err != nil {
		fmt.Println(authMessage(err))
		return err
	}

	if err := a.finishLogin(ctx, user, token); err != nil {
		return err
	}

	fmt.Println("Login successful.")
	return nil
}

func (a *App) finishLogin(ctx context.Context, user *models.UserProfile, token string) error {
	if err := a.session.Login(ctx, user, token); err != nil {
		fmt.Println("Could not save your session. Please try again.")
		return err
	}
	a.api.SetAccessToken(token)
	return nil
}

// Logout clears the saved session and removes the token from the API client.
// Logging out when not logged in is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	a.api.SetAccessToken("")
	fmt.Println("Logged out.")
	return nil
}
