package room

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"office", Office, false},
		{"OFFICE", Office, false},
		{"Living", Living, false},
		{" living ", Living, false},
		{"kitchen", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_Capacity(t *testing.T) {
	office := New("blue", Office)
	assert.Equal(t, 6, office.Capacity)
	assert.Equal(t, "Blue", office.Name)
	assert.Empty(t, office.Occupants)

	living := New("  red   ROOM ", Living)
	assert.Equal(t, 4, living.Capacity)
	assert.Equal(t, "Red Room", living.Name)
}

func TestRoom_AddOccupantUntilFull(t *testing.T) {
	r := New("Oak", Living)

	for _, name := range []string{"a", "b", "c", "d"} {
		require.False(t, r.IsFull())
		require.True(t, r.AddOccupant(name))
	}

	assert.True(t, r.IsFull())
	assert.Equal(t, 0, r.Vacancies())
	assert.False(t, r.AddOccupant("e"), "full room must refuse")
	assert.Len(t, r.Occupants, LivingCapacity)
}

func TestRoom_AddOccupantDuplicate(t *testing.T) {
	r := New("Oak", Office)
	require.True(t, r.AddOccupant("Ama Johnson"))
	assert.False(t, r.AddOccupant("Ama Johnson"))
	assert.Equal(t, []string{"Ama Johnson"}, r.Occupants)
}

func TestRoom_RemoveOccupantKeepsOrder(t *testing.T) {
	r := New("Oak", Office)
	r.AddOccupant("a")
	r.AddOccupant("b")
	r.AddOccupant("c")

	assert.True(t, r.RemoveOccupant("b"))
	assert.Equal(t, []string{"a", "c"}, r.Occupants)
	assert.False(t, r.RemoveOccupant("b"))
	assert.Equal(t, OfficeCapacity-2, r.Vacancies())
}

func TestRoom_CloneIsDetached(t *testing.T) {
	r := New("Oak", Office)
	r.AddOccupant("a")

	c := r.Clone()
	c.Occupants[0] = "z"
	c.AddOccupant("b")

	assert.Equal(t, []string{"a"}, r.Occupants)
}

func TestKind_Label(t *testing.T) {
	assert.Equal(t, "office", Office.Label())
	assert.Equal(t, "living space", Living.Label())
	assert.Equal(t, 0, Kind("attic").Capacity())
}
