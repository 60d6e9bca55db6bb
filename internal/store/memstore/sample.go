package memstore

import (
	"time"

	"locallibrary/internal/author"
	"locallibrary/internal/book"
)

func day(s string) *time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func title(s string) *string { return &s }

// Sample returns a small catalog used by STORE=memory and cmd/seed.
func Sample() *Catalog {
	c := NewCatalog()

	authors := []author.Author{
		{ID: "7d1c6a8e-0b8f-4c2a-9a51-3f0c2d6a1001", FirstName: "Jane", FamilyName: "Austen", DateOfBirth: day("1775-12-16"), DateOfDeath: day("1817-07-18")},
		{ID: "7d1c6a8e-0b8f-4c2a-9a51-3f0c2d6a1002", FirstName: "Adam", FamilyName: "Mickiewicz", DateOfBirth: day("1798-12-24"), DateOfDeath: day("1855-11-26")},
		{ID: "7d1c6a8e-0b8f-4c2a-9a51-3f0c2d6a1003", FirstName: "Henryk", FamilyName: "Sienkiewicz", DateOfBirth: day("1846-05-05"), DateOfDeath: day("1916-11-15")},
		{ID: "7d1c6a8e-0b8f-4c2a-9a51-3f0c2d6a1004", FirstName: "Rabindranath", FamilyName: "Tagore", DateOfBirth: day("1861-05-07"), DateOfDeath: day("1941-08-07")},
	}
	for _, a := range authors {
		c.AddAuthor(a)
	}

	books := []book.Book{
		{ID: "5b2e0f3a-6c1d-4e8b-8f47-2a9d1c7e2001", Title: title("Pride and Prejudice"), Author: &book.AuthorRef{ID: authors[0].ID}},
		{ID: "5b2e0f3a-6c1d-4e8b-8f47-2a9d1c7e2002", Title: title("Pan Tadeusz"), Author: &book.AuthorRef{ID: authors[1].ID}},
		{ID: "5b2e0f3a-6c1d-4e8b-8f47-2a9d1c7e2003", Title: title("Quo Vadis"), Author: &book.AuthorRef{ID: authors[2].ID}},
		{ID: "5b2e0f3a-6c1d-4e8b-8f47-2a9d1c7e2004", Title: title("Gitanjali"), Author: &book.AuthorRef{ID: authors[3].ID}},
	}
	for _, b := range books {
		c.AddBook(b)
	}

	copies := []book.Copy{
		{ID: "c4a9e2d1-3b7f-4a60-b5c8-9e1f0a3d3001", BookID: books[0].ID, Imprint: "Penguin Classics, 2003", Status: book.StatusAvailable},
		{ID: "c4a9e2d1-3b7f-4a60-b5c8-9e1f0a3d3002", BookID: books[0].ID, Imprint: "Oxford World's Classics, 2008", Status: book.StatusLoaned, DueBack: day("2026-11-01")},
		{ID: "c4a9e2d1-3b7f-4a60-b5c8-9e1f0a3d3003", BookID: books[1].ID, Imprint: "Ossolineum, 1999", Status: book.StatusAvailable},
		{ID: "c4a9e2d1-3b7f-4a60-b5c8-9e1f0a3d3004", BookID: books[2].ID, Imprint: "Greater Poland Press, 1896", Status: book.StatusMaintenance},
	}
	for _, cp := range copies {
		c.AddCopy(cp)
	}

	return c
}
