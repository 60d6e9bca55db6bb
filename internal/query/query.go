// Package query holds the sort and projection descriptors that services hand
// to repositories. Repositories translate them into their own query language.
package query

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when a sort or projection names a field the
// repository does not expose.
var ErrUnknownField = errors.New("unknown field")

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Sort orders results by a single field.
type Sort struct {
	Field     string
	Direction Direction
}

func Asc(field string) Sort  { return Sort{Field: field, Direction: Ascending} }
func Desc(field string) Sort { return Sort{Field: field, Direction: Descending} }

func (s Sort) String() string {
	return s.Field + " " + s.Direction.String()
}

// Projection restricts which fields of a record are returned.
// An empty projection means every field.
type Projection []string

// Select parses a space separated field list such as "imprint status".
func Select(fields string) Projection {
	return Projection(strings.Fields(fields))
}

func (p Projection) Empty() bool { return len(p) == 0 }

// Has reports whether field is part of the projection. Every field is part
// of an empty projection.
func (p Projection) Has(field string) bool {
	if p.Empty() {
		return true
	}
	for _, f := range p {
		if f == field {
			return true
		}
	}
	return false
}

// Columns maps the projected fields to storage columns using known.
// An empty projection yields every column in order.
func (p Projection) Columns(known map[string]string, order []string) ([]string, error) {
	fields := []string(p)
	if p.Empty() {
		fields = order
	}
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		col, ok := known[f]
		if !ok {
			return nil, fmt.Errorf("projection %q: %w", f, ErrUnknownField)
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func (p Projection) String() string {
	return strings.Join(p, " ")
}
