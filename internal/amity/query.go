package amity

import (
	"slices"

	"github.com/amity-space/amity/internal/person"
	"github.com/amity-space/amity/internal/room"
)

// RoomAllocation is one occupied room in the allocations report.
type RoomAllocation struct {
	Room      string
	Kind      room.Kind
	Occupants []string
}

// Unallocated lists people missing an assignment.
type Unallocated struct {
	// Office holds everyone, staff or fellow, without an office.
	Office []*person.Person

	// Living holds fellows without a living space. Staff never appear.
	Living []*person.Person
}

// Empty reports whether everyone is allocated.
func (u *Unallocated) Empty() bool {
	return len(u.Office) == 0 && len(u.Living) == 0
}

// Vacancy is a room and its remaining free places.
type Vacancy struct {
	Room      string
	Kind      room.Kind
	Capacity  int
	Available int
}

// Allocations returns every room with at least one occupant: offices first,
// then living spaces, each ordered by name.
func (r *Registry) Allocations() []RoomAllocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []RoomAllocation
	for _, kind := range []room.Kind{room.Office, room.Living} {
		for _, rm := range sortedRooms(r.roomsOf(kind)) {
			if len(rm.Occupants) == 0 {
				continue
			}
			out = append(out, RoomAllocation{
				Room:      rm.Name,
				Kind:      rm.Kind,
				Occupants: slices.Clone(rm.Occupants),
			})
		}
	}
	return out
}

// Unallocated returns people without an office and fellows without a
// living space, ordered by name.
func (r *Registry) Unallocated() *Unallocated {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &Unallocated{}
	for _, p := range r.sortedPeopleLocked() {
		if !p.HasOffice() {
			u.Office = append(u.Office, p.Clone())
		}
		if p.Role == person.Fellow && !p.HasLiving() {
			u.Living = append(u.Living, p.Clone())
		}
	}
	return u
}

// RoomOccupants returns the occupants of the named room in allocation order.
func (r *Registry) RoomOccupants(name string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm := r.findRoomLocked(name)
	if rm == nil {
		return nil, newError("print_room", KindNotFound, detail(ErrRoomNotFound, name))
	}
	return slices.Clone(rm.Occupants), nil
}

// AvailableSpace returns every room with its free places: offices first,
// then living spaces, each ordered by name.
func (r *Registry) AvailableSpace() []Vacancy {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Vacancy
	for _, kind := range []room.Kind{room.Office, room.Living} {
		for _, rm := range sortedRooms(r.roomsOf(kind)) {
			out = append(out, Vacancy{
				Room:      rm.Name,
				Kind:      rm.Kind,
				Capacity:  rm.Capacity,
				Available: rm.Vacancies(),
			})
		}
	}
	return out
}

// Room returns a snapshot of the named room.
func (r *Registry) Room(name string) (*room.Room, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rm := r.findRoomLocked(name)
	if rm == nil {
		return nil, newError("room", KindNotFound, detail(ErrRoomNotFound, name))
	}
	return rm.Clone(), nil
}

// Rooms returns snapshots of every room: offices first, then living spaces.
func (r *Registry) Rooms() []*room.Room {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*room.Room
	for _, kind := range []room.Kind{room.Office, room.Living} {
		for _, rm := range sortedRooms(r.roomsOf(kind)) {
			out = append(out, rm.Clone())
		}
	}
	return out
}

// Person returns a snapshot of the person with the given ID (or exact name).
func (r *Registry) Person(id string) (*person.Person, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPersonByIDLocked(id)
	if p == nil {
		return nil, newError("person", KindNotFound, detail(ErrPersonNotFound, id))
	}
	return p.Clone(), nil
}

// People returns snapshots of everyone, ordered by name.
func (r *Registry) People() []*person.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	people := r.sortedPeopleLocked()
	out := make([]*person.Person, len(people))
	for i, p := range people {
		out[i] = p.Clone()
	}
	return out
}
