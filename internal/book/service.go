package book

import (
	"context"
	"fmt"

	"locallibrary/internal/query"

	"golang.org/x/sync/errgroup"
)

var copyFields = query.Select("imprint status")

// Service provides book-related business logic.
type Service struct {
	books  Repository
	copies InstanceRepository
}

// NewService creates a new book service.
func NewService(books Repository, copies InstanceRepository) *Service {
	return &Service{books: books, copies: copies}
}

// Fetch loads a book with its author resolved and the imprint and status
// of its copies. Both queries run concurrently; either failing fails Fetch.
// A nil book or nil copies are passed through as returned by the stores.
func (s *Service) Fetch(ctx context.Context, id string) (*Book, []Copy, error) {
	var (
		b      *Book
		copies []Copy
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if b, err = s.books.QueryOne(gctx, id, RelationAuthor); err != nil {
			return fmt.Errorf("query book %s: %w", id, err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if copies, err = s.copies.QueryWhere(gctx, id, copyFields); err != nil {
			return fmt.Errorf("query copies of book %s: %w", id, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return b, copies, nil
}
