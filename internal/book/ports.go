package book

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks bookstore/internal/book Repository

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context, q Query) ([]Book, error)
	UpdatePrice(ctx context.Context, title string, price decimal.Decimal) (UpdateResult, error)
	DeleteByTitle(ctx context.Context, title string) (DeleteResult, error)
	AveragePriceByGenre(ctx context.Context) ([]GenreStats, error)
	TopAuthors(ctx context.Context, limit int) ([]AuthorCount, error)
	CountByDecade(ctx context.Context) ([]DecadeCount, error)
	Explain(ctx context.Context, q Query) (ExecutionStats, error)
	CreateIndex(ctx context.Context, keys []IndexKey) (string, error)
	InsertMany(ctx context.Context, books []Book) (int, error)
	Drop(ctx context.Context) error
}
