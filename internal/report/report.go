// Package report renders allocation state as text for terminals and files.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/amity-space/amity/internal/amity"
	"github.com/amity-space/amity/internal/person"
	"github.com/amity-space/amity/internal/style"
)

const rule = "--------------------------------"

// Printer writes reports, styled when its palette has color on.
type Printer struct {
	style.Palette
}

// Plain is a Printer without styling, used for files.
var Plain = Printer{}

// Allocations writes each occupied room followed by its occupants.
func (p Printer) Allocations(w io.Writer, rooms []amity.RoomAllocation) error {
	if len(rooms) == 0 {
		_, err := fmt.Fprintln(w, p.Dim("No allocations"))
		return err
	}

	var b strings.Builder
	fmt.Fprintln(&b, p.Header("ALLOCATIONS"))
	for _, ra := range rooms {
		fmt.Fprintf(&b, "\n%s %s\n", p.Info(ra.Room), p.Dim("("+ra.Kind.Label()+")"))
		fmt.Fprintln(&b, p.Dim(rule))
		fmt.Fprintln(&b, strings.Join(ra.Occupants, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Unallocated writes people without an office, then fellows without a
// living space.
func (p Printer) Unallocated(w io.Writer, u *amity.Unallocated) error {
	var b strings.Builder
	section := func(title string, people []string) {
		fmt.Fprintln(&b, p.Header(title))
		fmt.Fprintln(&b, p.Dim(rule))
		if len(people) == 0 {
			fmt.Fprintln(&b, p.Dim("None"))
		}
		for _, line := range people {
			fmt.Fprintln(&b, line)
		}
	}

	section("UNALLOCATED OFFICE SPACE", p.people(u.Office))
	fmt.Fprintln(&b)
	section("UNALLOCATED LIVING SPACE", p.people(u.Living))

	_, err := io.WriteString(w, b.String())
	return err
}

// Room writes the occupants of one room.
func (p Printer) Room(w io.Writer, name string, occupants []string) error {
	var b strings.Builder
	fmt.Fprintln(&b, p.Info(name))
	fmt.Fprintln(&b, p.Dim(rule))
	if len(occupants) == 0 {
		fmt.Fprintln(&b, p.Dim("No occupants"))
	} else {
		fmt.Fprintln(&b, strings.Join(occupants, ", "))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Available writes every room with its free places.
func (p Printer) Available(w io.Writer, vacancies []amity.Vacancy) error {
	if len(vacancies) == 0 {
		_, err := fmt.Fprintln(w, p.Dim("No rooms"))
		return err
	}

	var b strings.Builder
	fmt.Fprintln(&b, p.Header("AVAILABLE ROOMS"))
	for _, v := range vacancies {
		free := fmt.Sprintf("%d/%d free", v.Available, v.Capacity)
		if v.Available == 0 {
			free = p.Warning("full")
		}
		fmt.Fprintf(&b, "%-20s %-13s %s\n", v.Room, v.Kind.Label(), free)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p Printer) people(people []*person.Person) []string {
	out := make([]string, len(people))
	for i, pe := range people {
		out[i] = fmt.Sprintf("%s %s %s", p.Dim(pe.ID), pe.Name, pe.Role)
	}
	return out
}

// WriteFile creates path and fills it with fn, holding an exclusive lock on
// path+".lock" for the duration.
func WriteFile(path string, fn func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.Create(path) //nolint:gosec // G304: path supplied by the operator
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	return f.Close()
}
