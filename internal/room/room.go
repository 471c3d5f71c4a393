// Package room defines the Room entity: an office or living space with a
// fixed capacity and an ordered list of occupant names.
package room

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the category of a room.
type Kind string

const (
	// Office is a workspace shared by staff and fellows.
	Office Kind = "OFFICE"

	// Living is accommodation, available to fellows only.
	Living Kind = "LIVING"
)

// Fixed capacities per kind.
const (
	OfficeCapacity = 6
	LivingCapacity = 4
)

// ErrInvalidKind indicates a room type outside office/living.
var ErrInvalidKind = errors.New("invalid room type, should be office or living")

// ParseKind parses a case-insensitive room type ("office" or "living").
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Office):
		return Office, nil
	case string(Living):
		return Living, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Capacity returns the fixed number of occupants a room of this kind holds.
func (k Kind) Capacity() int {
	switch k {
	case Office:
		return OfficeCapacity
	case Living:
		return LivingCapacity
	}
	return 0
}

// Label is the lower-case human name of the kind ("office", "living space").
func (k Kind) Label() string {
	if k == Living {
		return "living space"
	}
	return strings.ToLower(string(k))
}

// NormalizeName collapses whitespace and converts the name to title case.
// Room names are stored, compared and looked up in this form.
func NormalizeName(name string) string {
	// A Caser keeps state between calls, so one is built per call.
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}

// Room is a physical space people are allocated to.
type Room struct {
	Name      string   `json:"name"`
	Kind      Kind     `json:"kind"`
	Capacity  int      `json:"capacity"`
	Occupants []string `json:"occupants"`
}

// New creates an empty room of the given kind. The name is normalized.
func New(name string, kind Kind) *Room {
	return &Room{
		Name:      NormalizeName(name),
		Kind:      kind,
		Capacity:  kind.Capacity(),
		Occupants: []string{},
	}
}

// IsFull reports whether the room has reached its capacity.
func (r *Room) IsFull() bool {
	return len(r.Occupants) >= r.Capacity
}

// Vacancies returns the number of free places.
func (r *Room) Vacancies() int {
	if n := r.Capacity - len(r.Occupants); n > 0 {
		return n
	}
	return 0
}

// Has reports whether the named person occupies the room.
func (r *Room) Has(name string) bool {
	return slices.Contains(r.Occupants, name)
}

// AddOccupant appends a person to the room.
// Returns false if the room is full or the person is already in it.
func (r *Room) AddOccupant(name string) bool {
	if r.IsFull() || r.Has(name) {
		return false
	}
	r.Occupants = append(r.Occupants, name)
	return true
}

// RemoveOccupant removes a person from the room, keeping the order of the
// remaining occupants. Returns false if the person was not in the room.
func (r *Room) RemoveOccupant(name string) bool {
	i := slices.Index(r.Occupants, name)
	if i < 0 {
		return false
	}
	r.Occupants = slices.Delete(r.Occupants, i, i+1)
	return true
}

// Clone returns a deep copy safe to hand out of the registry.
func (r *Room) Clone() *Room {
	c := *r
	c.Occupants = slices.Clone(r.Occupants)
	return &c
}
