package main

import (
	"context"
	"log"

	"locallibrary/internal/config"
	"locallibrary/internal/store/memstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	ctx := context.Background()

	config.LoadEnvFiles()
	dsn := config.DatabaseDSN()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", config.RedactDSN(dsn), err)
	}
	defer pool.Close()

	authors, books, copies := memstore.Sample().Snapshot()

	// Everything goes in one transaction so a rerun never leaves half a catalog.
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, a := range authors {
			batch.Queue(`
				INSERT INTO authors (id, first_name, family_name, date_of_birth, date_of_death)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (id) DO UPDATE SET
					first_name = EXCLUDED.first_name,
					family_name = EXCLUDED.family_name,
					date_of_birth = EXCLUDED.date_of_birth,
					date_of_death = EXCLUDED.date_of_death`,
				a.ID, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
		}
		for _, b := range books {
			var authorID *string
			if b.Author != nil {
				authorID = &b.Author.ID
			}
			batch.Queue(`
				INSERT INTO books (id, title, author_id)
				VALUES ($1, $2, $3)
				ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, author_id = EXCLUDED.author_id`,
				b.ID, b.Title, authorID)
		}
		for _, c := range copies {
			batch.Queue(`
				INSERT INTO book_instances (id, book_id, imprint, status, due_back)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (id) DO UPDATE SET
					imprint = EXCLUDED.imprint,
					status = EXCLUDED.status,
					due_back = EXCLUDED.due_back`,
				c.ID, c.BookID, c.Imprint, c.Status, c.DueBack)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Printf("Seeded %d authors, %d books, %d copies", len(authors), len(books), len(copies))

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM book_instances").Scan(&total); err == nil {
		log.Printf("Total copies in database: %d", total)
	}
}
