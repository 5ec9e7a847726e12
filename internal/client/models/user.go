// Package models contains the client-side value types of the user directory:
// profiles, search criteria, and search results. All of them are plain value
// snapshots; an update replaces the whole record rather than mutating fields
// in place, so renderers never observe a torn read.
package models

import "strings"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// UserProfile is a directory member as returned by the server. The JSON tags
// match the wire/localstore representation ("userData" key).
type UserProfile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	City        string   `json:"city,omitempty"`
	Country     string   `json:"country,omitempty"`
	Gender      Gender   `json:"gender,omitempty"`
	DateOfBirth string   `json:"dateOfBirth,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	IsActive    bool     `json:"isActive"`
	CreatedAt   string   `json:"createdAt"`
	LastLoginAt string   `json:"lastLoginAt,omitempty"`
}

func (u *UserProfile) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Location renders "city, country" omitting whichever part is absent.
func (u *UserProfile) Location() string {
	switch {
	case u.City != "" && u.Country != "":
		return u.City + ", " + u.Country
	case u.City != "":
		return u.City
	default:
		return u.Country
	}
}

// ProfileUpdateRequest carries the editable subset of a profile. Zero-valued
// fields are treated as "clear" by the server, matching save-the-whole-form
// semantics of the edit flow.
type ProfileUpdateRequest struct {
	FirstName   string
	LastName    string
	City        string
	Country     string
	Gender      Gender
	DateOfBirth string
	Bio         string
	Interests   []string
	Skills      []string
}
