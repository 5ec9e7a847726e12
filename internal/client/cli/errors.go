package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdir/internal/client/client"
)

// authMessage converts a login or registration failure into text fit for
// the screen. Raw collaborator errors are never shown to the user.
func authMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Invalid email or password."
	case errors.Is(err, client.ErrAlreadyExists):
		return "An account with this email already exists."
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "Server is unavailable. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
