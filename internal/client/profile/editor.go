// Package profile implements the profile edit flow: it turns the stored
// profile into an editable form, cleans up the typed values, and commits
// the result through the profile service.
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/userdir/internal/client/client"
	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/client/session"
)

// Form holds the editable profile fields in their on-screen shape: dates
// as text, list fields as one comma-separated line.
type Form struct {
	FirstName   string
	LastName    string
	City        string
	Country     string
	Gender      string
	DateOfBirth string
	Bio         string
	Interests   string
	Skills      string
}

// Editor prepares and saves profile edits. A successful save replaces the
// session's user with the record the server returned.
type Editor struct {
	api     client.ProfileClient
	store   *session.Store
	timeout time.Duration
}

func NewEditor(api client.ProfileClient, store *session.Store, timeout time.Duration) *Editor {
	return &Editor{api: api, store: store, timeout: timeout}
}

// Initialize builds a form prefilled from the given profile. The date is
// brought to ISO form and list fields are joined for editing.
func (e *Editor) Initialize(user *models.UserProfile) Form {
	if user == nil {
		return Form{}
	}
	return Form{
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		City:        user.City,
		Country:     user.Country,
		Gender:      string(user.Gender),
		DateOfBirth: NormalizeDate(user.DateOfBirth),
		Bio:         user.Bio,
		Interests:   strings.Join(user.Interests, ", "),
		Skills:      strings.Join(user.Skills, ", "),
	}
}

// Result is the outcome of a save: the authoritative profile on success,
// or a displayable message on failure. Collaborator errors never leave
// this package.
type Result struct {
	User       *models.UserProfile
	ErrMessage string
}

// Save submits the form and, on success, stores the server's authoritative
// profile in the session. On failure the session is left untouched and the
// failure is reported as screen text.
func (e *Editor) Save(ctx context.Context, form Form) Result {
	req := models.ProfileUpdateRequest{
		FirstName:   strings.TrimSpace(form.FirstName),
		LastName:    strings.TrimSpace(form.LastName),
		City:        strings.TrimSpace(form.City),
		Country:     strings.TrimSpace(form.Country),
		Gender:      models.Gender(strings.ToLower(strings.TrimSpace(form.Gender))),
		DateOfBirth: NormalizeDate(form.DateOfBirth),
		Bio:         strings.TrimSpace(form.Bio),
		Interests:   SplitList(form.Interests),
		Skills:      SplitList(form.Skills),
	}

	reqCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	updated, err := e.api.UpdateProfile(reqCtx, req)
	if err != nil {
		return Result{ErrMessage: displayMessage(err)}
	}

	if err := e.store.UpdateUser(ctx, updated); err != nil {
		return Result{ErrMessage: displayMessage(err)}
	}
	return Result{User: updated}
}

// dateLayouts are the fallback input formats tried in order when the value
// is neither ISO nor DD/MM/YYYY.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"02.01.2006",
	"January 2, 2006",
	"Jan 2, 2006",
}

// NormalizeDate brings a date value to YYYY-MM-DD. Empty input stays empty,
// ISO input passes through unchanged, DD/MM/YYYY is reordered, and a value
// no layout can parse normalizes to empty rather than being sent as-is.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	if len(value) == 10 && value[4] == '-' && value[7] == '-' {
		return value
	}

	if day, month, year, ok := splitSlashDate(value); ok {
		if t, err := time.Parse("2006-01-02", isoDate(year, month, day)); err == nil {
			return t.Format("2006-01-02")
		}
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

func splitSlashDate(value string) (day, month, year string, ok bool) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return "", "", "", false
	}
	if len(parts[2]) != 4 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}

func isoDate(year, month, day string) string {
	if len(month) == 1 {
		month = "0" + month
	}
	if len(day) == 1 {
		day = "0" + day
	}
	return year + "-" + month + "-" + day
}

// SplitList turns a comma-separated line into a list: items are trimmed,
// empties dropped, order and duplicates preserved.
func SplitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
