// Package person defines the Person entity: a staff member or fellow and the
// rooms they are currently allocated to.
package person

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role is the kind of person.
type Role string

const (
	// Staff members get an office only.
	Staff Role = "STAFF"

	// Fellow members get an office and, on request, a living space.
	Fellow Role = "FELLOW"
)

var (
	// ErrInvalidRole indicates a person type outside staff/fellow.
	ErrInvalidRole = errors.New("person type can either be STAFF or FELLOW")

	// ErrInvalidAccommodation indicates an accommodation flag outside Y/N.
	ErrInvalidAccommodation = errors.New("accommodation can either be 'Y' or 'N'")
)

// ParseRole parses a case-insensitive person type ("staff" or "fellow").
func ParseRole(s string) (Role, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(Staff):
		return Staff, nil
	case string(Fellow):
		return Fellow, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

// ParseAccommodation parses the wants-accommodation flag.
// Only "Y", "y", "N" and "n" are accepted.
func ParseAccommodation(s string) (bool, error) {
	switch s {
	case "Y", "y":
		return true, nil
	case "N", "n":
		return false, nil
	}
	return false, fmt.Errorf("%w: %q", ErrInvalidAccommodation, s)
}

// Person is someone registered in Amity.
type Person struct {
	// ID is the unique identifier used for reallocation.
	ID string `json:"id"`

	// Name is the unique full name.
	Name string `json:"name"`

	Role Role `json:"role"`

	// WantsAccommodation is always false for staff.
	WantsAccommodation bool `json:"wants_accommodation"`

	// OfficeRoom is the allocated office name, empty when unallocated.
	OfficeRoom string `json:"office_room,omitempty"`

	// LivingRoom is the allocated living space name, empty when unallocated.
	// Always empty for staff.
	LivingRoom string `json:"living_room,omitempty"`
}

// NewStaff creates a staff member with a fresh ID.
func NewStaff(name string) *Person {
	return &Person{
		ID:   uuid.NewString(),
		Name: name,
		Role: Staff,
	}
}

// NewFellow creates a fellow with a fresh ID.
func NewFellow(name string, wantsAccommodation bool) *Person {
	return &Person{
		ID:                 uuid.NewString(),
		Name:               name,
		Role:               Fellow,
		WantsAccommodation: wantsAccommodation,
	}
}

// HasOffice reports whether the person holds an office.
func (p *Person) HasOffice() bool {
	return p.OfficeRoom != ""
}

// HasLiving reports whether the person holds a living space.
func (p *Person) HasLiving() bool {
	return p.LivingRoom != ""
}

// NeedsLiving reports whether the person asked for accommodation but has none.
func (p *Person) NeedsLiving() bool {
	return p.Role == Fellow && p.WantsAccommodation && !p.HasLiving()
}

// String renders "ID Name ROLE".
func (p *Person) String() string {
	return fmt.Sprintf("%s %s %s", p.ID, p.Name, p.Role)
}

// Clone returns a copy safe to hand out of the registry.
func (p *Person) Clone() *Person {
	c := *p
	return &c
}
