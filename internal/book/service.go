package book

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Service provides the named book queries on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// InGenre returns the books of one genre.
func (s *Service) InGenre(ctx context.Context, genre string) ([]Book, error) {
	return s.list(ctx, Query{Genre: genre})
}

// PublishedAfter returns the books published strictly after year.
func (s *Service) PublishedAfter(ctx context.Context, year int) ([]Book, error) {
	return s.list(ctx, Query{PublishedAfter: &year})
}

// ByAuthor returns the books written by author.
func (s *Service) ByAuthor(ctx context.Context, author string) ([]Book, error) {
	return s.list(ctx, Query{Author: author})
}

// InStockPublishedAfter returns title, author and price of the in-stock
// books published strictly after year.
func (s *Service) InStockPublishedAfter(ctx context.Context, year int) ([]Book, error) {
	inStock := true
	return s.list(ctx, Query{
		InStock:        &inStock,
		PublishedAfter: &year,
		Fields:         []string{FieldTitle, FieldAuthor, FieldPrice},
	})
}

// Cheapest returns the n lowest priced books.
func (s *Service) Cheapest(ctx context.Context, n int) ([]Book, error) {
	return s.list(ctx, Query{SortBy: FieldPrice, Order: Ascending, Limit: n})
}

// MostExpensive returns the n highest priced books.
func (s *Service) MostExpensive(ctx context.Context, n int) ([]Book, error) {
	return s.list(ctx, Query{SortBy: FieldPrice, Order: Descending, Limit: n})
}

// Page returns one page of the collection in natural order. Pages start at 1.
func (s *Service) Page(ctx context.Context, page, perPage int) ([]Book, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must start at 1, got %d", ErrInvalidQuery, page)
	}
	if perPage < 1 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidQuery, perPage)
	}
	return s.list(ctx, Query{Offset: (page - 1) * perPage, Limit: perPage})
}

// UpdatePrice sets the price of the first book with the given title.
func (s *Service) UpdatePrice(ctx context.Context, title string, price decimal.Decimal) (UpdateResult, error) {
	if strings.TrimSpace(title) == "" {
		return UpdateResult{}, fmt.Errorf("%w: title is required", ErrInvalidQuery)
	}
	if price.IsNegative() {
		return UpdateResult{}, fmt.Errorf("%w: price must not be negative, got %s", ErrInvalidQuery, price)
	}
	return s.repo.UpdatePrice(ctx, title, price)
}

// DeleteByTitle removes the first book with the given title.
func (s *Service) DeleteByTitle(ctx context.Context, title string) (DeleteResult, error) {
	if strings.TrimSpace(title) == "" {
		return DeleteResult{}, fmt.Errorf("%w: title is required", ErrInvalidQuery)
	}
	return s.repo.DeleteByTitle(ctx, title)
}

// AveragePriceByGenre returns per-genre average prices, highest first.
func (s *Service) AveragePriceByGenre(ctx context.Context) ([]GenreStats, error) {
	return s.repo.AveragePriceByGenre(ctx)
}

// TopAuthor returns the author with the most books. The slice is empty when
// the collection is.
func (s *Service) TopAuthor(ctx context.Context) ([]AuthorCount, error) {
	return s.repo.TopAuthors(ctx, 1)
}

// CountByDecade returns book counts grouped by publication decade, oldest first.
func (s *Service) CountByDecade(ctx context.Context) ([]DecadeCount, error) {
	return s.repo.CountByDecade(ctx)
}

// ExplainTitleLookup returns the execution stats of a lookup by exact title.
func (s *Service) ExplainTitleLookup(ctx context.Context, title string) (ExecutionStats, error) {
	return s.repo.Explain(ctx, Query{Title: title})
}

// CreateIndex creates an index over keys and returns its name.
func (s *Service) CreateIndex(ctx context.Context, keys ...IndexKey) (string, error) {
	if len(keys) == 0 {
		return "", fmt.Errorf("%w: at least one index key is required", ErrInvalidQuery)
	}
	for _, k := range keys {
		if k.Field == "" {
			return "", fmt.Errorf("%w: index key without field", ErrInvalidQuery)
		}
		if k.Order != Ascending && k.Order != Descending {
			return "", fmt.Errorf("%w: index order must be 1 or -1, got %d", ErrInvalidQuery, k.Order)
		}
	}
	return s.repo.CreateIndex(ctx, keys)
}

// Seed loads books into the collection, dropping existing documents first
// when drop is set. It returns the number of inserted books.
func (s *Service) Seed(ctx context.Context, books []Book, drop bool) (int, error) {
	if drop {
		if err := s.repo.Drop(ctx); err != nil {
			return 0, fmt.Errorf("dropping collection: %w", err)
		}
	}
	if len(books) == 0 {
		return 0, nil
	}
	n, err := s.repo.InsertMany(ctx, books)
	if err != nil {
		return n, fmt.Errorf("inserting books: %w", err)
	}
	return n, nil
}

func (s *Service) list(ctx context.Context, q Query) ([]Book, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}
