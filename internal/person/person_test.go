package person

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, in := range []string{"staff", "STAFF", "Staff"} {
		got, err := ParseRole(in)
		require.NoError(t, err)
		assert.Equal(t, Staff, got)
	}

	got, err := ParseRole("fellow")
	require.NoError(t, err)
	assert.Equal(t, Fellow, got)

	_, err = ParseRole("intern")
	assert.True(t, errors.Is(err, ErrInvalidRole))
}

func TestParseAccommodation(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"Y", true, false},
		{"y", true, false},
		{"N", false, false},
		{"n", false, false},
		{"yes", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := ParseAccommodation(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrInvalidAccommodation), "input %q: %v", tt.in, err)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestNewStaff(t *testing.T) {
	p := NewStaff("Ama Johnson")
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, Staff, p.Role)
	assert.False(t, p.WantsAccommodation)
	assert.False(t, p.NeedsLiving())
	assert.False(t, p.HasOffice())
}

func TestNewFellow_UniqueIDs(t *testing.T) {
	a := NewFellow("Kofi Mensah", true)
	b := NewFellow("Kofi Mensah", true)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.NeedsLiving())

	a.LivingRoom = "Oak"
	assert.False(t, a.NeedsLiving())
	assert.True(t, a.HasLiving())
}

func TestPerson_String(t *testing.T) {
	p := &Person{ID: "42", Name: "Ama Johnson", Role: Fellow}
	assert.Equal(t, "42 Ama Johnson FELLOW", p.String())
}
