package book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"locallibrary/internal/author"
	"locallibrary/internal/query"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	dialectPostgres    = "postgres"
	tableBooks         = "books"
	tableAuthors       = "authors"
	tableBookInstances = "book_instances"
)

var (
	copyColumns = map[string]string{
		"id":       "id::text",
		"book":     "book_id::text",
		"imprint":  "imprint",
		"status":   "status",
		"due_back": "due_back",
	}
	copyColumnOrder = []string{"id", "book", "imprint", "status", "due_back"}
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) QueryOne(ctx context.Context, id string, populate ...string) (*Book, error) {
	withAuthor := false
	for _, rel := range populate {
		if rel != RelationAuthor {
			return nil, fmt.Errorf("populate %q: %w", rel, query.ErrUnknownField)
		}
		withAuthor = true
	}

	sqlQuery, args, err := buildQueryOne(id)
	if err != nil {
		return nil, err
	}

	var (
		b          Book
		authorID   *string
		firstName  *string
		familyName *string
	)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err = r.db.QueryRow(timeoutCtx, sqlQuery, args...).Scan(&b.ID, &b.Title, &authorID, &firstName, &familyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query book: %w", err)
	}

	if authorID != nil {
		b.Author = &AuthorRef{ID: *authorID}
		if withAuthor && firstName != nil && familyName != nil {
			name := author.Author{FirstName: *firstName, FamilyName: *familyName}.Name()
			b.Author.Name = &name
		}
	}
	return &b, nil
}

func buildQueryOne(id string) (string, []any, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T(tableBooks).As("b")).
		LeftJoin(goqu.T(tableAuthors).As("a"), goqu.On(goqu.I("a.id").Eq(goqu.I("b.author_id")))).
		Select(goqu.L("b.id::text"), goqu.I("b.title"), goqu.L("a.id::text"), goqu.I("a.first_name"), goqu.I("a.family_name")).
		Where(goqu.I("b.id").Eq(id)).
		Limit(1)

	sqlQuery, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build book query: %w", err)
	}
	return sqlQuery, args, nil
}

// InstancePostgresRepo reads book copies.
type InstancePostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewInstancePostgresRepo(db *pgxpool.Pool, timeout time.Duration) *InstancePostgresRepo {
	return &InstancePostgresRepo{db: db, timeout: timeout}
}

// QueryWhere never returns a nil slice on success.
func (r *InstancePostgresRepo) QueryWhere(ctx context.Context, bookID string, fields query.Projection) ([]Copy, error) {
	sqlQuery, args, err := buildQueryWhere(bookID, fields)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query book instances: %w", err)
	}
	defer rows.Close()

	projected := []string(fields)
	if fields.Empty() {
		projected = copyColumnOrder
	}

	out := make([]Copy, 0)
	for rows.Next() {
		var c Copy
		if err := rows.Scan(scanTargets(&c, projected)...); err != nil {
			return nil, fmt.Errorf("scan book instance: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func buildQueryWhere(bookID string, fields query.Projection) (string, []any, error) {
	cols, err := fields.Columns(copyColumns, copyColumnOrder)
	if err != nil {
		return "", nil, err
	}
	selected := make([]any, 0, len(cols))
	for _, col := range cols {
		selected = append(selected, goqu.L(col))
	}

	ds := goqu.Dialect(dialectPostgres).
		From(tableBookInstances).
		Select(selected...).
		Where(goqu.I("book_id").Eq(bookID)).
		Order(goqu.I("imprint").Asc())

	sqlQuery, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build book instance query: %w", err)
	}
	return sqlQuery, args, nil
}

func scanTargets(c *Copy, fields []string) []any {
	targets := make([]any, 0, len(fields))
	for _, f := range fields {
		switch f {
		case "id":
			targets = append(targets, &c.ID)
		case "book":
			targets = append(targets, &c.BookID)
		case "imprint":
			targets = append(targets, &c.Imprint)
		case "status":
			targets = append(targets, &c.Status)
		case "due_back":
			targets = append(targets, &c.DueBack)
		}
	}
	return targets
}
