// Package models defines client-side data models used by the catcli client:
// the account record kept in the session, authentication inputs and outcomes,
// and the cat-data API payloads.
package models

import (
	"strings"
	"time"
	"unicode"
)

// User is the normalized account record held by the session.
// It never carries a password. Username is always set once a record exists.
type User struct {
	ID        *int64     `json:"id,omitempty"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Clone returns a deep copy of u. A nil receiver yields nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.ID != nil {
		id := *u.ID
		c.ID = &id
	}
	if u.CreatedAt != nil {
		ts := *u.CreatedAt
		c.CreatedAt = &ts
	}
	return &c
}

// DisplayName returns "First Last" when both names are known and falls back
// to the username otherwise.
func (u *User) DisplayName() string {
	if u == nil {
		return "Unknown User"
	}
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Username != "" {
		return u.Username
	}
	return "Unknown User"
}

// Initials returns two upper-case letters built from the names, or the first
// letter of the username, or "U".
func (u *User) Initials() string {
	if u == nil {
		return "U"
	}
	if u.FirstName != "" && u.LastName != "" {
		return strings.ToUpper(firstRune(u.FirstName) + firstRune(u.LastName))
	}
	if u.Username != "" {
		return strings.ToUpper(firstRune(u.Username))
	}
	return "U"
}

func firstRune(s string) string {
	for _, r := range s {
		return string(unicode.ToUpper(r))
	}
	return ""
}

// Credentials is the login input. It is never persisted.
type Credentials struct {
	Username string
	Password string
}

// Registration is the sign-up input.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// FullName joins first and last name with a single space. The backend has no
// first/last split, so this is what gets transmitted.
func (r Registration) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// AuthOutcome is the result of a login or registration. A nil User means the
// backend answered without a usable account record.
type AuthOutcome struct {
	User    *User
	Message string
}
