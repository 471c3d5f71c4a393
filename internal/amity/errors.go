package amity

import (
	"errors"
	"fmt"
)

// Kind tags an error with the category callers branch on.
type Kind int

const (
	// KindValidation is bad input shape or domain (room type, person type,
	// accommodation flag, blank names).
	KindValidation Kind = iota + 1

	// KindConflict is a duplicate name.
	KindConflict

	// KindPermission is a forbidden request (staff asking for accommodation).
	KindPermission

	// KindNotFound is an unknown room or person.
	KindNotFound

	// KindIneligible is an operation the person or room does not qualify for.
	KindIneligible
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindPermission:
		return "permission"
	case KindNotFound:
		return "not found"
	case KindIneligible:
		return "ineligible"
	}
	return "unknown"
}

var (
	// ErrNoRoomNames indicates create_room was called without names.
	ErrNoRoomNames = errors.New("provide a list of room name(s)")

	// ErrInvalidRoomName indicates a blank room name.
	ErrInvalidRoomName = errors.New("invalid room name")

	// ErrInvalidPersonName indicates a blank person name.
	ErrInvalidPersonName = errors.New("invalid person name")

	// ErrPersonExists indicates a person with that name is already registered.
	ErrPersonExists = errors.New("person already exists")

	// ErrStaffAccommodation indicates a staff member asked for a living space.
	ErrStaffAccommodation = errors.New("staff cannot request for accommodation")

	// ErrRoomNotFound indicates no room with that name exists.
	ErrRoomNotFound = errors.New("no such room")

	// ErrPersonNotFound indicates no person with that id exists.
	ErrPersonNotFound = errors.New("no such person")

	// ErrStaffToLiving indicates a staff member was moved towards a living space.
	ErrStaffToLiving = errors.New("cannot reallocate staff to living space")

	// ErrNoOfficeAllocation indicates an office reallocation for someone
	// without an office.
	ErrNoOfficeAllocation = errors.New("allocate office space before reallocating")

	// ErrNoLivingAllocation indicates a living reallocation for someone
	// without a living space.
	ErrNoLivingAllocation = errors.New("allocate living space before reallocating")

	// ErrSameRoom indicates the person already occupies the target room.
	ErrSameRoom = errors.New("person already allocated to room")

	// ErrRoomFull indicates the target room has no vacancy.
	ErrRoomFull = errors.New("room is full")

	// ErrNoVacancy indicates no other eligible room of the kind exists.
	ErrNoVacancy = errors.New("no other room with vacancy")
)

// Error is returned by every Registry operation that fails.
type Error struct {
	// Op is the operation name, e.g. "add_person".
	Op string

	Kind Kind

	// Err is the underlying sentinel, possibly wrapped with detail.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// detail wraps a sentinel with the offending value.
func detail(sentinel error, value string) error {
	return fmt.Errorf("%w: %s", sentinel, value)
}
