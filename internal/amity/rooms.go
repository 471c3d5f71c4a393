package amity

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/amity-space/amity/internal/room"
)

// RoomCreation is the outcome of CreateRoom.
type RoomCreation struct {
	Kind room.Kind

	// Created lists the normalized names of rooms added.
	Created []string

	// Existing lists the normalized names that were skipped because a room
	// with that name already exists.
	Existing []string
}

// Message renders the outcome: the created rooms when nothing collided,
// otherwise the colliding names.
func (c *RoomCreation) Message() string {
	if len(c.Existing) == 0 {
		return fmt.Sprintf("Room(s) %s created successfully", strings.Join(c.Created, ", "))
	}
	return fmt.Sprintf("Room(s) %s already exist", strings.Join(c.Existing, ", "))
}

// CreateRoom creates rooms of the given kind ("office" or "living",
// case-insensitive). Names already in use by a room of either kind are
// skipped and reported in RoomCreation.Existing.
func (r *Registry) CreateRoom(kind string, names []string) (*RoomCreation, error) {
	const op = "create_room"

	k, err := room.ParseKind(kind)
	if err != nil {
		return nil, newError(op, KindValidation, err)
	}
	if len(names) == 0 {
		return nil, newError(op, KindValidation, ErrNoRoomNames)
	}
	for _, name := range names {
		if room.NormalizeName(name) == "" {
			return nil, newError(op, KindValidation, detail(ErrInvalidRoomName, fmt.Sprintf("%q", name)))
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	result := &RoomCreation{Kind: k}
	target := r.roomsOf(k)
	for _, name := range names {
		rm := room.New(name, k)
		if r.findRoomLocked(rm.Name) != nil {
			result.Existing = append(result.Existing, rm.Name)
			continue
		}
		target[rm.Name] = rm
		result.Created = append(result.Created, rm.Name)
		r.log.Debug("room created",
			zap.String("room", rm.Name),
			zap.String("kind", string(k)),
			zap.Int("capacity", rm.Capacity))
	}

	return result, nil
}
