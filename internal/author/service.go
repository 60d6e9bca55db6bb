package author

import (
	"context"
	"fmt"

	"locallibrary/internal/query"

	"go.uber.org/zap"
)

var byFamilyName = query.Asc("family_name")

// Service provides the author list. Its methods never fail: a failed
// query produces an empty list.
type Service struct {
	repo   Repository
	logger *zap.Logger
}

// NewService creates a new author service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetAuthorList returns "name : birth - death" for every author in family name order.
func (s *Service) GetAuthorList(ctx context.Context) []string {
	return s.lines(ctx, listEntry)
}

func (s *Service) lines(ctx context.Context, format func(Author) string) []string {
	authors := s.sortedAuthors(ctx)
	out := make([]string, 0, len(authors))
	for _, a := range authors {
		out = append(out, format(a))
	}
	return out
}

func (s *Service) sortedAuthors(ctx context.Context) []Author {
	authors, err := s.repo.QueryAll(ctx, byFamilyName)
	if err != nil {
		s.logger.Warn("author list query failed", zap.Error(err))
		return nil
	}
	return authors
}

func listEntry(a Author) string {
	birth, death := a.Lifespan()
	return fmt.Sprintf("%s : %s - %s", a.Name(), birth, death)
}

func displayEntry(a Author) string {
	birth, death := a.Lifespan()
	return fmt.Sprintf("%s: %s - %s", a.Name(), birth, death)
}
