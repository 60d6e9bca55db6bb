package author

import (
	"context"
	"fmt"
	"time"

	"locallibrary/internal/query"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tableAuthors = "authors"

// sortColumns compares text byte-wise, whatever the database collation, and
// puts missing dates first when ascending, the same order memstore produces.
var sortColumns = map[string]exp.Orderable{
	"id":            goqu.I("id"),
	"first_name":    goqu.L(`"first_name" COLLATE "C"`),
	"family_name":   goqu.L(`"family_name" COLLATE "C"`),
	"date_of_birth": goqu.I("date_of_birth"),
	"date_of_death": goqu.I("date_of_death"),
}

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

func (r *PostgresRepo) QueryAll(ctx context.Context, sort ...query.Sort) ([]Author, error) {
	sqlQuery, args, err := buildQueryAll(sort)
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}
	defer rows.Close()

	out := make([]Author, 0)
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func buildQueryAll(sort []query.Sort) (string, []any, error) {
	ds := goqu.Dialect("postgres").
		From(tableAuthors).
		Select(goqu.L("id::text"), "first_name", "family_name", "date_of_birth", "date_of_death")

	order := make([]exp.OrderedExpression, 0, len(sort))
	for _, s := range sort {
		col, ok := sortColumns[s.Field]
		if !ok {
			return "", nil, fmt.Errorf("sort %q: %w", s.Field, query.ErrUnknownField)
		}
		if s.Direction == query.Descending {
			order = append(order, col.Desc().NullsLast())
		} else {
			order = append(order, col.Asc().NullsFirst())
		}
	}
	if len(order) > 0 {
		ds = ds.Order(order...)
	}

	sqlQuery, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build author query: %w", err)
	}
	return sqlQuery, args, nil
}
