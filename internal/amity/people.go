package amity

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amity-space/amity/internal/person"
	"github.com/amity-space/amity/internal/room"
)

// AllocationStatus distinguishes the possible results of allocating a person.
type AllocationStatus int

const (
	// StaffAllocated means a staff member got an office.
	StaffAllocated AllocationStatus = iota + 1

	// StaffUnallocated means no office was available for a staff member.
	StaffUnallocated

	// FellowAllocated means a fellow got an office and a living space.
	FellowAllocated

	// FellowOfficeOnly means a fellow got an office but no living space,
	// either because none was requested or none was available.
	FellowOfficeOnly

	// FellowLivingOnly means a fellow got a living space but no office.
	FellowLivingOnly

	// FellowUnallocated means a fellow got neither.
	FellowUnallocated
)

// Allocation is the outcome of allocating one person.
type Allocation struct {
	// Person is a snapshot taken after allocation.
	Person *person.Person
	Status AllocationStatus
}

// Message renders the outcome for display.
func (a *Allocation) Message() string {
	switch a.Status {
	case StaffAllocated:
		return fmt.Sprintf("%s: office space allocated successfully (%s)", a.Person.Name, a.Person.OfficeRoom)
	case StaffUnallocated:
		return fmt.Sprintf("%s: could not allocate office space", a.Person.Name)
	case FellowAllocated:
		return fmt.Sprintf("%s: office (%s) and living space (%s) allocated successfully",
			a.Person.Name, a.Person.OfficeRoom, a.Person.LivingRoom)
	case FellowOfficeOnly:
		if a.Person.WantsAccommodation {
			return fmt.Sprintf("%s: only office space allocated (%s), no living space available",
				a.Person.Name, a.Person.OfficeRoom)
		}
		return fmt.Sprintf("%s: only office space allocated (%s)", a.Person.Name, a.Person.OfficeRoom)
	case FellowLivingOnly:
		return fmt.Sprintf("%s: assigned living space only (%s), no office space available",
			a.Person.Name, a.Person.LivingRoom)
	case FellowUnallocated:
		return fmt.Sprintf("%s: added but no rooms to allocate office or living space", a.Person.Name)
	}
	return a.Person.Name
}

// Allocated reports whether the person got everything they are eligible for.
func (a *Allocation) Allocated() bool {
	return a.Status == StaffAllocated || a.Status == FellowAllocated ||
		(a.Status == FellowOfficeOnly && !a.Person.WantsAccommodation)
}

// AddPerson registers a person and immediately allocates them.
//
// role is "staff" or "fellow" (case-insensitive); accommodation is one of
// Y, N, y, n. Staff requesting accommodation is a KindPermission error. Room
// shortages are not errors: they are reflected in the returned Allocation.
func (r *Registry) AddPerson(name, role, accommodation string) (*Allocation, error) {
	const op = "add_person"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newError(op, KindValidation, ErrInvalidPersonName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findPersonLocked(name) != nil {
		return nil, newError(op, KindConflict, detail(ErrPersonExists, name))
	}
	ro, err := person.ParseRole(role)
	if err != nil {
		return nil, newError(op, KindValidation, err)
	}
	wants, err := person.ParseAccommodation(accommodation)
	if err != nil {
		return nil, newError(op, KindValidation, err)
	}
	if ro == person.Staff && wants {
		return nil, newError(op, KindPermission, detail(ErrStaffAccommodation, name))
	}

	var p *person.Person
	if ro == person.Staff {
		p = person.NewStaff(name)
	} else {
		p = person.NewFellow(name, wants)
	}
	r.peopleOf(ro)[p.Name] = p
	r.log.Debug("person added",
		zap.String("person", p.Name),
		zap.String("id", p.ID),
		zap.String("role", string(p.Role)),
		zap.Bool("wants_accommodation", p.WantsAccommodation))

	return r.allocateLocked(p), nil
}

// AllocatePending retries allocation for everyone without an office, and for
// fellows who asked for accommodation but have no living space. People are
// visited in name order. Returns one Allocation per person retried.
func (r *Registry) AllocatePending() []*Allocation {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Allocation
	for _, p := range r.sortedPeopleLocked() {
		if p.HasOffice() && !p.NeedsLiving() {
			continue
		}
		out = append(out, r.allocateLocked(p))
	}
	return out
}

// allocateLocked gives p an office and, for fellows wanting one, a living
// space, where they lack them and a room is free (caller must hold the lock).
func (r *Registry) allocateLocked(p *person.Person) *Allocation {
	if !p.HasOffice() {
		if rm := r.alloc.Pick(sortedRooms(r.offices), ""); rm != nil && rm.AddOccupant(p.Name) {
			p.OfficeRoom = rm.Name
			r.logAssign(p, rm)
		}
	}
	if p.NeedsLiving() {
		if rm := r.alloc.Pick(sortedRooms(r.living), ""); rm != nil && rm.AddOccupant(p.Name) {
			p.LivingRoom = rm.Name
			r.logAssign(p, rm)
		}
	}

	a := &Allocation{Person: p.Clone()}
	switch {
	case p.Role == person.Staff && p.HasOffice():
		a.Status = StaffAllocated
	case p.Role == person.Staff:
		a.Status = StaffUnallocated
	case p.HasOffice() && p.HasLiving():
		a.Status = FellowAllocated
	case p.HasOffice():
		a.Status = FellowOfficeOnly
	case p.HasLiving():
		a.Status = FellowLivingOnly
	default:
		a.Status = FellowUnallocated
	}
	return a
}

func (r *Registry) logAssign(p *person.Person, rm *room.Room) {
	r.log.Debug("person allocated",
		zap.String("person", p.Name),
		zap.String("room", rm.Name),
		zap.String("kind", string(rm.Kind)),
		zap.Int("vacancies", rm.Vacancies()))
}
