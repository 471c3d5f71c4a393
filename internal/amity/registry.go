// Package amity is the allocation engine. A Registry owns every room and
// person and exposes the operations a command surface or importer calls:
// creating rooms, adding people (which allocates them), reallocating and
// reporting allocation state.
//
// The Registry performs no I/O. Every operation returns a value or an
// *Error tagged with a Kind; state is only changed after validation passes.
package amity

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/amity-space/amity/internal/allocator"
	"github.com/amity-space/amity/internal/person"
	"github.com/amity-space/amity/internal/room"
)

// Registry holds all rooms and people.
type Registry struct {
	mu sync.Mutex

	offices map[string]*room.Room
	living  map[string]*room.Room

	staff   map[string]*person.Person
	fellows map[string]*person.Person

	alloc *allocator.Allocator
	log   *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithAllocator sets the allocator used for random room choice.
func WithAllocator(a *allocator.Allocator) Option {
	return func(r *Registry) {
		if a != nil {
			r.alloc = a
		}
	}
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		offices: make(map[string]*room.Room),
		living:  make(map[string]*room.Room),
		staff:   make(map[string]*person.Person),
		fellows: make(map[string]*person.Person),
		alloc:   allocator.New(nil),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// roomsOf returns the map holding rooms of the given kind.
func (r *Registry) roomsOf(kind room.Kind) map[string]*room.Room {
	if kind == room.Living {
		return r.living
	}
	return r.offices
}

// peopleOf returns the map holding people of the given role.
func (r *Registry) peopleOf(role person.Role) map[string]*person.Person {
	if role == person.Staff {
		return r.staff
	}
	return r.fellows
}

// findRoomLocked looks a room up by name, offices first (caller must hold the lock).
func (r *Registry) findRoomLocked(name string) *room.Room {
	key := room.NormalizeName(name)
	if rm, ok := r.offices[key]; ok {
		return rm
	}
	if rm, ok := r.living[key]; ok {
		return rm
	}
	return nil
}

// findPersonLocked looks a person up by name, staff first (caller must hold the lock).
func (r *Registry) findPersonLocked(name string) *person.Person {
	name = strings.TrimSpace(name)
	if p, ok := r.staff[name]; ok {
		return p
	}
	if p, ok := r.fellows[name]; ok {
		return p
	}
	return nil
}

// findPersonByIDLocked resolves a person by ID, falling back to the exact
// name (caller must hold the lock).
func (r *Registry) findPersonByIDLocked(id string) *person.Person {
	id = strings.TrimSpace(id)
	for _, group := range []map[string]*person.Person{r.staff, r.fellows} {
		for _, p := range group {
			if p.ID == id {
				return p
			}
		}
	}
	return r.findPersonLocked(id)
}

// sortedRooms returns the rooms of a kind ordered by name.
func sortedRooms(m map[string]*room.Room) []*room.Room {
	out := make([]*room.Room, 0, len(m))
	for _, rm := range m {
		out = append(out, rm)
	}
	slices.SortFunc(out, func(a, b *room.Room) int { return strings.Compare(a.Name, b.Name) })
	return out
}

// sortedPeopleLocked returns every person ordered by name (caller must hold the lock).
func (r *Registry) sortedPeopleLocked() []*person.Person {
	out := make([]*person.Person, 0, len(r.staff)+len(r.fellows))
	for _, p := range r.staff {
		out = append(out, p)
	}
	for _, p := range r.fellows {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b *person.Person) int { return strings.Compare(a.Name, b.Name) })
	return out
}
