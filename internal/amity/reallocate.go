package amity

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/amity-space/amity/internal/person"
	"github.com/amity-space/amity/internal/room"
)

// Reallocation is the outcome of moving a person between rooms.
type Reallocation struct {
	Person *person.Person
	Kind   room.Kind
	From   string
	To     string
}

// Message renders the outcome for display.
func (m *Reallocation) Message() string {
	return fmt.Sprintf("Reallocation of %s successful: %s moved from %s to %s",
		m.Kind.Label(), m.Person.Name, m.From, m.To)
}

// ReallocatePerson moves a person into the named room. The room's kind
// decides whether the office or the living assignment changes. The person
// must already hold an assignment of that kind and the room must have a
// vacancy. personID is the person's ID; an exact name is also accepted.
func (r *Registry) ReallocatePerson(personID, roomName string) (*Reallocation, error) {
	const op = "reallocate_person"

	r.mu.Lock()
	defer r.mu.Unlock()

	target := r.findRoomLocked(roomName)
	if target == nil {
		return nil, newError(op, KindNotFound, detail(ErrRoomNotFound, roomName))
	}
	p := r.findPersonByIDLocked(personID)
	if p == nil {
		return nil, newError(op, KindNotFound, detail(ErrPersonNotFound, personID))
	}
	if err := r.checkMoveLocked(p, target.Kind); err != nil {
		return nil, newError(op, KindIneligible, err)
	}
	if current(p, target.Kind) == target.Name {
		return nil, newError(op, KindIneligible, detail(ErrSameRoom, target.Name))
	}
	if target.IsFull() {
		return nil, newError(op, KindIneligible, detail(ErrRoomFull, target.Name))
	}

	return r.moveLocked(p, target), nil
}

// ReallocateRandom moves an allocated person to a different random room of
// the given kind ("office" or "living") that has a vacancy.
func (r *Registry) ReallocateRandom(personID, kind string) (*Reallocation, error) {
	const op = "reallocate_person"

	k, err := room.ParseKind(kind)
	if err != nil {
		return nil, newError(op, KindValidation, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPersonByIDLocked(personID)
	if p == nil {
		return nil, newError(op, KindNotFound, detail(ErrPersonNotFound, personID))
	}
	if err := r.checkMoveLocked(p, k); err != nil {
		return nil, newError(op, KindIneligible, err)
	}
	target := r.alloc.Pick(sortedRooms(r.roomsOf(k)), current(p, k))
	if target == nil {
		return nil, newError(op, KindIneligible, detail(ErrNoVacancy, k.Label()))
	}

	return r.moveLocked(p, target), nil
}

// checkMoveLocked verifies p may be moved between rooms of kind k.
func (r *Registry) checkMoveLocked(p *person.Person, k room.Kind) error {
	switch {
	case k == room.Living && p.Role == person.Staff:
		return detail(ErrStaffToLiving, p.Name)
	case k == room.Office && !p.HasOffice():
		return detail(ErrNoOfficeAllocation, p.Name)
	case k == room.Living && !p.HasLiving():
		return detail(ErrNoLivingAllocation, p.Name)
	}
	return nil
}

// moveLocked performs the move; all checks must have passed.
func (r *Registry) moveLocked(p *person.Person, target *room.Room) *Reallocation {
	from := current(p, target.Kind)
	if old := r.roomsOf(target.Kind)[from]; old != nil {
		old.RemoveOccupant(p.Name)
	}
	target.AddOccupant(p.Name)
	if target.Kind == room.Living {
		p.LivingRoom = target.Name
	} else {
		p.OfficeRoom = target.Name
	}

	r.log.Debug("person reallocated",
		zap.String("person", p.Name),
		zap.String("kind", string(target.Kind)),
		zap.String("from", from),
		zap.String("to", target.Name))

	return &Reallocation{Person: p.Clone(), Kind: target.Kind, From: from, To: target.Name}
}

// current returns the person's room of kind k.
func current(p *person.Person, k room.Kind) string {
	if k == room.Living {
		return p.LivingRoom
	}
	return p.OfficeRoom
}
