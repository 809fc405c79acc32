package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistration_FullName(t *testing.T) {
	tests := []struct {
		name string
		in   Registration
		want string
	}{
		{"both names", Registration{FirstName: "Jane", LastName: "Doe"}, "Jane Doe"},
		{"first only", Registration{FirstName: "Jane", LastName: ""}, "Jane"},
		{"last only", Registration{LastName: "Doe"}, "Doe"},
		{"none", Registration{}, ""},
		{"padded", Registration{FirstName: "  Jane", LastName: "Doe  "}, "Jane Doe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.FullName())
		})
	}
}

func TestUser_DisplayNameAndInitials(t *testing.T) {
	full := &User{Username: "jdoe", FirstName: "jane", LastName: "doe"}
	assert.Equal(t, "jane doe", full.DisplayName())
	assert.Equal(t, "JD", full.Initials())

	bare := &User{Username: "whiskers"}
	assert.Equal(t, "whiskers", bare.DisplayName())
	assert.Equal(t, "W", bare.Initials())

	var none *User
	assert.Equal(t, "Unknown User", none.DisplayName())
	assert.Equal(t, "U", none.Initials())
}

func TestUser_CloneIsDeep(t *testing.T) {
	id := int64(7)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	u := &User{ID: &id, Username: "u", CreatedAt: &ts}

	c := u.Clone()
	require.Equal(t, u, c)

	*c.ID = 8
	*c.CreatedAt = ts.Add(time.Hour)
	assert.Equal(t, int64(7), *u.ID)
	assert.Equal(t, ts, *u.CreatedAt)

	var nilUser *User
	assert.Nil(t, nilUser.Clone())
}

func TestBreed_TemperamentList(t *testing.T) {
	b := Breed{Temperament: "Active, Energetic,Independent , "}
	assert.Equal(t, []string{"Active", "Energetic", "Independent"}, b.TemperamentList())
	assert.Nil(t, Breed{}.TemperamentList())
}
