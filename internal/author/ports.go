package author

import (
	"context"

	"locallibrary/internal/query"
)

//go:generate mockgen -source=ports.go -destination=mock_repository_test.go -package=author

// Repository defines the contract for author data storage.
type Repository interface {
	// QueryAll returns every author ordered by sort.
	QueryAll(ctx context.Context, sort ...query.Sort) ([]Author, error)
}
