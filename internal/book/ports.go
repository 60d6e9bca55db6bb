package book

import (
	"context"

	"locallibrary/internal/query"
)

// RelationAuthor resolves Book.Author when passed to Repository.QueryOne.
const RelationAuthor = "author"

// Repository defines the contract for book data storage.
type Repository interface {
	// QueryOne returns the book with the given id, or nil when there is none.
	// Relations named in populate are resolved.
	QueryOne(ctx context.Context, id string, populate ...string) (*Book, error)
}

// InstanceRepository defines the contract for book copy storage.
type InstanceRepository interface {
	// QueryWhere returns the copies of the book, restricted to fields.
	QueryWhere(ctx context.Context, bookID string, fields query.Projection) ([]Copy, error)
}
