package cli

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/stretchr/testify/require"
)

func TestAuthMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", client.ErrUnauthorized, "Invalid email or password."},
		{"duplicate account", client.ErrAlreadyExists, "An account with this email already exists."},
		{"unavailable", client.ErrUnavailable, "Server is unavailable. Please try again later."},
		{"generic hides details", errors.New("rpc error: code = Internal desc = boom"), "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := authMessage(tt.err)
			require.Equal(t, tt.want, got)
			require.NotContains(t, got, "rpc error")
		})
	}
}
