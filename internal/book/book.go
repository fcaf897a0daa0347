package book

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuery is returned when a query carries values the store cannot run.
var ErrInvalidQuery = errors.New("invalid book query")

// Book represents a record of the books collection.
type Book struct {
	ID            string
	Title         string
	Author        string
	Genre         string
	PublishedYear int
	Price         decimal.Decimal
	InStock       bool
	Pages         int
	Publisher     string
}

// Field names as stored in the collection.
const (
	FieldTitle         = "title"
	FieldAuthor        = "author"
	FieldGenre         = "genre"
	FieldPublishedYear = "published_year"
	FieldPrice         = "price"
	FieldInStock       = "in_stock"
)

var sortable = map[string]bool{
	FieldTitle:         true,
	FieldAuthor:        true,
	FieldGenre:         true,
	FieldPublishedYear: true,
	FieldPrice:         true,
}

// SortOrder is the direction of a sort or index key.
type SortOrder int

const (
	Ascending  SortOrder = 1
	Descending SortOrder = -1
)

// Query defines filters, projection, sort and pagination for listing books.
// Zero values mean "no constraint".
type Query struct {
	Title          string
	Genre          string
	Author         string
	InStock        *bool
	PublishedAfter *int
	Fields         []string
	SortBy         string
	Order          SortOrder
	Limit          int
	Offset         int
}

// Validate reports whether the query can be sent to a store.
func (q Query) Validate() error {
	if q.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", ErrInvalidQuery, q.Limit)
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative, got %d", ErrInvalidQuery, q.Offset)
	}
	if q.SortBy != "" {
		if !sortable[q.SortBy] {
			return fmt.Errorf("%w: cannot sort by %q", ErrInvalidQuery, q.SortBy)
		}
		if q.Order != Ascending && q.Order != Descending {
			return fmt.Errorf("%w: sort order must be 1 or -1, got %d", ErrInvalidQuery, q.Order)
		}
	}
	return nil
}

// IndexKey is one field of an index specification.
type IndexKey struct {
	Field string
	Order SortOrder
}

// UpdateResult reports the outcome of a single-document update.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// DeleteResult reports the outcome of a single-document delete.
type DeleteResult struct {
	Deleted int64
}

// GenreStats is one row of the average-price-by-genre aggregation.
type GenreStats struct {
	Genre    string
	AvgPrice decimal.Decimal
	Count    int64
}

// AuthorCount is one row of the books-per-author aggregation.
type AuthorCount struct {
	Author string
	Count  int64
}

// DecadeCount is one row of the books-per-decade aggregation.
// Known is false for books without a publication year.
type DecadeCount struct {
	Decade int
	Known  bool
	Count  int64
}

// Label renders the decade as "1960s".
func (d DecadeCount) Label() string {
	if !d.Known {
		return "unknown"
	}
	return fmt.Sprintf("%ds", d.Decade)
}

// ExecutionStats holds the executionStats section of a query explain.
// A nil field was absent from the server reply.
type ExecutionStats struct {
	NReturned           *int64
	ExecutionTimeMillis *int64
	TotalDocsExamined   *int64
	TotalKeysExamined   *int64
}
