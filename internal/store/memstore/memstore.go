// Package memstore keeps the catalog in memory. It backs STORE=memory and
// the router tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"locallibrary/internal/author"
	"locallibrary/internal/book"
	"locallibrary/internal/query"
)

// Catalog holds authors, books and book copies.
type Catalog struct {
	mu      sync.RWMutex
	authors []author.Author
	books   []book.Book
	copies  []book.Copy
}

func NewCatalog() *Catalog {
	return &Catalog{}
}

func (c *Catalog) AddAuthor(a author.Author) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.authors = append(c.authors, a)
}

// AddBook stores b. Only the ID of b.Author is kept; the name is resolved on read.
func (c *Catalog) AddBook(b book.Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b.Author != nil {
		b.Author = &book.AuthorRef{ID: b.Author.ID}
	}
	c.books = append(c.books, b)
}

func (c *Catalog) AddCopy(cp book.Copy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.copies = append(c.copies, cp)
}

// Snapshot returns copies of everything stored.
func (c *Catalog) Snapshot() ([]author.Author, []book.Book, []book.Copy) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]author.Author(nil), c.authors...),
		append([]book.Book(nil), c.books...),
		append([]book.Copy(nil), c.copies...)
}

func (c *Catalog) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (c *Catalog) Authors() *Authors     { return &Authors{c: c} }
func (c *Catalog) Books() *Books         { return &Books{c: c} }
func (c *Catalog) Instances() *Instances { return &Instances{c: c} }

// Authors implements author.Repository.
type Authors struct{ c *Catalog }

func (r *Authors) QueryAll(ctx context.Context, sorts ...query.Sort) ([]author.Author, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, s := range sorts {
		if _, ok := authorKeys[s.Field]; !ok {
			return nil, fmt.Errorf("sort %q: %w", s.Field, query.ErrUnknownField)
		}
	}

	r.c.mu.RLock()
	out := append(make([]author.Author, 0, len(r.c.authors)), r.c.authors...)
	r.c.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		for _, s := range sorts {
			cmp := authorKeys[s.Field](out[i], out[j])
			if cmp == 0 {
				continue
			}
			if s.Direction == query.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return out, nil
}

var authorKeys = map[string]func(a, b author.Author) int{
	"id":            func(a, b author.Author) int { return compareStrings(a.ID, b.ID) },
	"first_name":    func(a, b author.Author) int { return compareStrings(a.FirstName, b.FirstName) },
	"family_name":   func(a, b author.Author) int { return compareStrings(a.FamilyName, b.FamilyName) },
	"date_of_birth": func(a, b author.Author) int { return compareDates(a.DateOfBirth, b.DateOfBirth) },
	"date_of_death": func(a, b author.Author) int { return compareDates(a.DateOfDeath, b.DateOfDeath) },
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareDates orders missing dates first.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// Books implements book.Repository.
type Books struct{ c *Catalog }

func (r *Books) QueryOne(ctx context.Context, id string, populate ...string) (*book.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	withAuthor := false
	for _, rel := range populate {
		if rel != book.RelationAuthor {
			return nil, fmt.Errorf("populate %q: %w", rel, query.ErrUnknownField)
		}
		withAuthor = true
	}

	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	for _, b := range r.c.books {
		if b.ID != id {
			continue
		}
		if b.Author != nil {
			ref := &book.AuthorRef{ID: b.Author.ID}
			if withAuthor {
				if a, ok := r.c.author(ref.ID); ok {
					name := a.Name()
					ref.Name = &name
				}
			}
			b.Author = ref
		}
		return &b, nil
	}
	return nil, nil
}

func (c *Catalog) author(id string) (author.Author, bool) {
	for _, a := range c.authors {
		if a.ID == id {
			return a, true
		}
	}
	return author.Author{}, false
}

// Instances implements book.InstanceRepository.
type Instances struct{ c *Catalog }

func (r *Instances) QueryWhere(ctx context.Context, bookID string, fields query.Projection) ([]book.Copy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if _, ok := copyFields[f]; !ok {
			return nil, fmt.Errorf("projection %q: %w", f, query.ErrUnknownField)
		}
	}

	r.c.mu.RLock()
	defer r.c.mu.RUnlock()
	out := make([]book.Copy, 0)
	for _, cp := range r.c.copies {
		if cp.BookID != bookID {
			continue
		}
		out = append(out, project(cp, fields))
	}
	return out, nil
}

var copyFields = map[string]bool{"id": true, "book": true, "imprint": true, "status": true, "due_back": true}

func project(cp book.Copy, fields query.Projection) book.Copy {
	var out book.Copy
	if fields.Has("id") {
		out.ID = cp.ID
	}
	if fields.Has("book") {
		out.BookID = cp.BookID
	}
	if fields.Has("imprint") {
		out.Imprint = cp.Imprint
	}
	if fields.Has("status") {
		out.Status = cp.Status
	}
	if fields.Has("due_back") {
		out.DueBack = cp.DueBack
	}
	return out
}
