package model

import (
	"sort"

	"main/internal/bond"
)

// Position is the signed net quantity of one product partitioned by book.
// It accumulates monotonically over its lifetime and is never reset.
type Position struct {
	Product bond.Bond
	Books   map[string]Quantity
}

// NewPosition creates an empty position for a product.
func NewPosition(product bond.Bond) Position {
	return Position{Product: product, Books: make(map[string]Quantity)}
}

// Add credits a signed quantity to a book.
func (p Position) Add(book string, quantity Quantity) {
	p.Books[book] += quantity
}

// Quantity returns the net quantity held in one book.
func (p Position) Quantity(book string) Quantity {
	return p.Books[book]
}

// Aggregate returns the net quantity summed over all books.
func (p Position) Aggregate() Quantity {
	var total Quantity
	for _, q := range p.Books {
		total += q
	}
	return total
}

// Merge returns a new position holding the book-by-book sum of p and other.
// Neither input is modified; stores hand out positions by value and the
// shared book map must not alias.
func (p Position) Merge(other Position) Position {
	merged := NewPosition(p.Product)
	for book, q := range p.Books {
		merged.Books[book] += q
	}
	for book, q := range other.Books {
		merged.Books[book] += q
	}
	return merged
}

func (p Position) Fields() []string {
	books := make([]string, 0, len(p.Books))
	for book := range p.Books {
		books = append(books, book)
	}
	sort.Strings(books)

	fields := make([]string, 0, 1+2*len(books))
	fields = append(fields, p.Product.ID())
	for _, book := range books {
		fields = append(fields, book, formatQuantity(p.Books[book]))
	}
	return fields
}
