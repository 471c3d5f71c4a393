// Package allocator picks a room for a person.
//
// The Allocator holds no room state. It receives the rooms of one kind and
// returns one of the eligible rooms, chosen uniformly at random. A room is
// eligible when it is not full and is not the excluded room (the person's
// current room during reallocation).
//
// Candidates are ordered by name before the random draw, so an Allocator
// built with a seeded Source makes the same choices for the same inputs.
package allocator

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/amity-space/amity/internal/room"
)

// Source is the random capability the Allocator draws from.
// IntN returns a value in [0, n).
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Allocator chooses eligible rooms.
type Allocator struct {
	src Source
}

// New creates an Allocator drawing from src. A nil src uses the process-wide
// random generator.
func New(src Source) *Allocator {
	if src == nil {
		src = globalSource{}
	}
	return &Allocator{src: src}
}

// NewSeeded creates an Allocator with a deterministic PCG stream.
func NewSeeded(seed uint64) *Allocator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Eligible returns the rooms that can take one more person, excluding the
// named room, ordered by name.
func Eligible(rooms []*room.Room, exclude string) []*room.Room {
	out := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if r == nil || r.IsFull() || (exclude != "" && r.Name == exclude) {
			continue
		}
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *room.Room) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out
}

// Pick returns a random eligible room, or nil when there is none.
func (a *Allocator) Pick(rooms []*room.Room, exclude string) *room.Room {
	candidates := Eligible(rooms, exclude)
	if len(candidates) == 0 {
		return nil
	}
	return candidates[a.src.IntN(len(candidates))]
}
