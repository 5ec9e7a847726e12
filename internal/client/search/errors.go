package search

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdir/internal/client/client"
)

// displayMessage converts a collaborator error into text fit for the
// screen. The raw error never crosses the controller boundary.
func displayMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Session expired. Please log in again."
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		return "Directory service is unavailable. Please try again later."
	default:
		return "Search failed. Please try again."
	}
}
