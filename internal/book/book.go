package book

import (
	"time"
)

// Book is a stored book record. Author is nil when the relation was not
// resolved or the book has no author.
type Book struct {
	ID     string     `json:"id"`
	Title  *string    `json:"title"`
	Author *AuthorRef `json:"author"`
}

// AuthorRef is the resolved author relation of a book.
type AuthorRef struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

// Copy is a book instance: one loanable copy of a book.
// Fields outside the query projection are left zero.
type Copy struct {
	ID      string     `json:"id,omitempty"`
	BookID  string     `json:"book,omitempty"`
	Imprint string     `json:"imprint"`
	Status  string     `json:"status"`
	DueBack *time.Time `json:"due_back,omitempty"`
}

// Copy statuses.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
	StatusCheckedOut  = "Checked Out"
)

// Detail is the book detail payload.
type Detail struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	Copies []Copy  `json:"copies"`
}

// NewDetail combines a book and its copies. Missing title or author name stay nil.
func NewDetail(b *Book, copies []Copy) Detail {
	d := Detail{Title: b.Title, Copies: copies}
	if b.Author != nil {
		d.Author = b.Author.Name
	}
	return d
}
