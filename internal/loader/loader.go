// Package loader imports people in bulk from a text file.
//
// Each line holds one person:
//
//	FIRSTNAME LASTNAME FELLOW|STAFF [Y|N]
//
// The accommodation flag defaults to N. Blank lines and lines starting with
// '#' are ignored. A bad line is recorded and the import continues.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amity-space/amity/internal/amity"
)

// ErrEmptyFile indicates the people file has no content.
var ErrEmptyFile = errors.New("file is empty")

// ErrMalformedLine indicates a line without name and role.
var ErrMalformedLine = errors.New("expected: FIRSTNAME LASTNAME FELLOW|STAFF [Y|N]")

// PersonAdder is the part of the registry the loader needs.
type PersonAdder interface {
	AddPerson(name, role, accommodation string) (*amity.Allocation, error)
}

// LineError records a line that could not be imported.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Summary is the outcome of an import.
type Summary struct {
	Added  []*amity.Allocation
	Failed []*LineError
}

// Entry is one parsed line.
type Entry struct {
	Name          string
	Role          string
	Accommodation string
}

// ParseLine splits a line into an Entry. ok is false for blank and comment
// lines.
func ParseLine(line string) (entry Entry, ok bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return Entry{}, false, nil
	}
	if len(fields) < 3 || len(fields) > 4 {
		return Entry{}, true, ErrMalformedLine
	}

	entry = Entry{
		Name:          fields[0] + " " + fields[1],
		Role:          fields[2],
		Accommodation: "N",
	}
	if len(fields) == 4 {
		entry.Accommodation = fields[3]
	}
	return entry, true, nil
}

// Load reads people from r and adds each to reg.
// Only read errors abort the import.
func Load(r io.Reader, reg PersonAdder) (*Summary, error) {
	summary := &Summary{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		entry, ok, err := ParseLine(text)
		if !ok {
			continue
		}
		if err != nil {
			summary.Failed = append(summary.Failed, &LineError{Line: lineNo, Text: text, Err: err})
			continue
		}

		a, err := reg.AddPerson(entry.Name, entry.Role, entry.Accommodation)
		if err != nil {
			summary.Failed = append(summary.Failed, &LineError{Line: lineNo, Text: text, Err: err})
			continue
		}
		summary.Added = append(summary.Added, a)
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("reading people: %w", err)
	}

	return summary, nil
}

// LoadFile imports people from the file at path.
func LoadFile(path string, reg PersonAdder) (*Summary, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path supplied by the operator
	if err != nil {
		return nil, fmt.Errorf("opening people file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading people file: %w", err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return Load(f, reg)
}
