// Package models contains the server-side domain records.
package models

import "time"

// User is a directory member row. Optional profile attributes are pointers;
// a nil pointer maps to SQL NULL.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	FirstName    string
	LastName     string
	City         string
	Country      string
	Gender       string
	DateOfBirth  *time.Time
	Bio          string
	Interests    []string
	Skills       []string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
