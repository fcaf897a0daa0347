package store

// Repository implementation (MongoDB)

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/book"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection is the subset of *mongo.Collection used by BookMongo.
type collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	Drop(ctx context.Context) error
}

// indexCreator is satisfied by mongo.IndexView.
type indexCreator interface {
	CreateOne(ctx context.Context, model mongo.IndexModel, opts ...*options.CreateIndexesOptions) (string, error)
}

// commandRunner is satisfied by *mongo.Database.
type commandRunner interface {
	RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) *mongo.SingleResult
}

type BookMongo struct {
	coll    collection
	indexes indexCreator
	db      commandRunner
	name    string
	timeout time.Duration
}

var _ book.Repository = (*BookMongo)(nil)

// NewBookMongo returns a repository over coll. A positive timeout bounds
// every single operation; zero leaves operations bounded only by ctx.
func NewBookMongo(coll *mongo.Collection, timeout time.Duration) *BookMongo {
	return &BookMongo{
		coll:    coll,
		indexes: coll.Indexes(),
		db:      coll.Database(),
		name:    coll.Name(),
		timeout: timeout,
	}
}

type bookDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	Genre         string             `bson:"genre"`
	PublishedYear int                `bson:"published_year"`
	Price         float64            `bson:"price"`
	InStock       bool               `bson:"in_stock"`
	Pages         int                `bson:"pages,omitempty"`
	Publisher     string             `bson:"publisher,omitempty"`
}

func (d bookDocument) toBook() book.Book {
	b := book.Book{
		Title:         d.Title,
		Author:        d.Author,
		Genre:         d.Genre,
		PublishedYear: d.PublishedYear,
		Price:         decimal.NewFromFloat(d.Price),
		InStock:       d.InStock,
		Pages:         d.Pages,
		Publisher:     d.Publisher,
	}
	if !d.ID.IsZero() {
		b.ID = d.ID.Hex()
	}
	return b
}

func fromBook(b book.Book) bookDocument {
	d := bookDocument{
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		PublishedYear: b.PublishedYear,
		Price:         b.Price.InexactFloat64(),
		InStock:       b.InStock,
		Pages:         b.Pages,
		Publisher:     b.Publisher,
	}
	if id, err := primitive.ObjectIDFromHex(b.ID); err == nil {
		d.ID = id
	}
	return d
}

func (r *BookMongo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *BookMongo) List(ctx context.Context, q book.Query) ([]book.Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Find(ctx, buildFilter(q), buildFindOptions(q))
	if err != nil {
		return nil, fmt.Errorf("finding books: %w", err)
	}

	var docs []bookDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("reading books: %w", err)
	}

	books := make([]book.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, d.toBook())
	}
	return books, nil
}

func (r *BookMongo) UpdatePrice(ctx context.Context, title string, price decimal.Decimal) (book.UpdateResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, titleFilter(title), setPrice(price))
	if err != nil {
		return book.UpdateResult{}, fmt.Errorf("updating price of %q: %w", title, err)
	}
	return book.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

func (r *BookMongo) DeleteByTitle(ctx context.Context, title string) (book.DeleteResult, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, titleFilter(title))
	if err != nil {
		return book.DeleteResult{}, fmt.Errorf("deleting %q: %w", title, err)
	}
	return book.DeleteResult{Deleted: res.DeletedCount}, nil
}

func (r *BookMongo) AveragePriceByGenre(ctx context.Context) ([]book.GenreStats, error) {
	var rows []struct {
		Genre    *string  `bson:"_id"`
		AvgPrice *float64 `bson:"avgPrice"`
		Count    int64    `bson:"count"`
	}
	if err := r.aggregate(ctx, averagePriceByGenrePipeline(), &rows); err != nil {
		return nil, fmt.Errorf("average price by genre: %w", err)
	}

	stats := make([]book.GenreStats, 0, len(rows))
	for _, row := range rows {
		s := book.GenreStats{Count: row.Count}
		if row.Genre != nil {
			s.Genre = *row.Genre
		}
		if row.AvgPrice != nil {
			s.AvgPrice = decimal.NewFromFloat(*row.AvgPrice)
		}
		stats = append(stats, s)
	}
	return stats, nil
}

func (r *BookMongo) TopAuthors(ctx context.Context, limit int) ([]book.AuthorCount, error) {
	var rows []struct {
		Author *string `bson:"_id"`
		Count  int64   `bson:"count"`
	}
	if err := r.aggregate(ctx, topAuthorsPipeline(limit), &rows); err != nil {
		return nil, fmt.Errorf("top authors: %w", err)
	}

	authors := make([]book.AuthorCount, 0, len(rows))
	for _, row := range rows {
		a := book.AuthorCount{Count: row.Count}
		if row.Author != nil {
			a.Author = *row.Author
		}
		authors = append(authors, a)
	}
	return authors, nil
}

func (r *BookMongo) CountByDecade(ctx context.Context) ([]book.DecadeCount, error) {
	var rows []struct {
		Decade *float64 `bson:"_id"`
		Count  int64    `bson:"count"`
	}
	if err := r.aggregate(ctx, countByDecadePipeline(), &rows); err != nil {
		return nil, fmt.Errorf("count by decade: %w", err)
	}

	decades := make([]book.DecadeCount, 0, len(rows))
	for _, row := range rows {
		d := book.DecadeCount{Count: row.Count}
		if row.Decade != nil {
			d.Decade = int(*row.Decade)
			d.Known = true
		}
		decades = append(decades, d)
	}
	return decades, nil
}

func (r *BookMongo) Explain(ctx context.Context, q book.Query) (book.ExecutionStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reply struct {
		ExecutionStats *struct {
			NReturned           *int64 `bson:"nReturned"`
			ExecutionTimeMillis *int64 `bson:"executionTimeMillis"`
			TotalDocsExamined   *int64 `bson:"totalDocsExamined"`
			TotalKeysExamined   *int64 `bson:"totalKeysExamined"`
		} `bson:"executionStats"`
	}
	if err := r.db.RunCommand(ctx, explainFindCommand(r.name, q)).Decode(&reply); err != nil {
		return book.ExecutionStats{}, fmt.Errorf("explaining find: %w", err)
	}

	if reply.ExecutionStats == nil {
		return book.ExecutionStats{}, nil
	}
	return book.ExecutionStats{
		NReturned:           reply.ExecutionStats.NReturned,
		ExecutionTimeMillis: reply.ExecutionStats.ExecutionTimeMillis,
		TotalDocsExamined:   reply.ExecutionStats.TotalDocsExamined,
		TotalKeysExamined:   reply.ExecutionStats.TotalKeysExamined,
	}, nil
}

func (r *BookMongo) CreateIndex(ctx context.Context, keys []book.IndexKey) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	name, err := r.indexes.CreateOne(ctx, mongo.IndexModel{Keys: indexKeys(keys)})
	if err != nil {
		return "", fmt.Errorf("creating index: %w", err)
	}
	return name, nil
}

func (r *BookMongo) InsertMany(ctx context.Context, books []book.Book) (int, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	docs := make([]interface{}, 0, len(books))
	for _, b := range books {
		docs = append(docs, fromBook(b))
	}

	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("inserting books: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (r *BookMongo) Drop(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.coll.Drop(ctx); err != nil {
		return fmt.Errorf("dropping %s: %w", r.name, err)
	}
	return nil
}

func (r *BookMongo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// bson.D keeps the field order stable so the issued filter is predictable.
func buildFilter(q book.Query) bson.D {
	filter := bson.D{}
	if q.Title != "" {
		filter = append(filter, bson.E{Key: book.FieldTitle, Value: q.Title})
	}
	if q.Genre != "" {
		filter = append(filter, bson.E{Key: book.FieldGenre, Value: q.Genre})
	}
	if q.Author != "" {
		filter = append(filter, bson.E{Key: book.FieldAuthor, Value: q.Author})
	}
	if q.InStock != nil {
		filter = append(filter, bson.E{Key: book.FieldInStock, Value: *q.InStock})
	}
	if q.PublishedAfter != nil {
		filter = append(filter, bson.E{Key: book.FieldPublishedYear, Value: bson.D{{"$gt", *q.PublishedAfter}}})
	}
	return filter
}

func buildFindOptions(q book.Query) *options.FindOptions {
	opts := options.Find()
	if len(q.Fields) > 0 {
		projection := bson.D{}
		for _, f := range q.Fields {
			projection = append(projection, bson.E{Key: f, Value: 1})
		}
		projection = append(projection, bson.E{Key: "_id", Value: 0})
		opts.SetProjection(projection)
	}
	if q.SortBy != "" {
		opts.SetSort(bson.D{{q.SortBy, int(q.Order)}})
	}
	if q.Offset > 0 {
		opts.SetSkip(int64(q.Offset))
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	return opts
}

func titleFilter(title string) bson.D {
	return bson.D{{book.FieldTitle, title}}
}

func setPrice(price decimal.Decimal) bson.D {
	return bson.D{{"$set", bson.D{{book.FieldPrice, price.InexactFloat64()}}}}
}

func indexKeys(keys []book.IndexKey) bson.D {
	d := make(bson.D, 0, len(keys))
	for _, k := range keys {
		d = append(d, bson.E{Key: k.Field, Value: int(k.Order)})
	}
	return d
}

func explainFindCommand(collection string, q book.Query) bson.D {
	return bson.D{
		{"explain", bson.D{
			{"find", collection},
			{"filter", buildFilter(q)},
		}},
		{"verbosity", "executionStats"},
	}
}

func averagePriceByGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{"$group", bson.D{
			{"_id", "$genre"},
			{"avgPrice", bson.D{{"$avg", "$price"}}},
			{"count", bson.D{{"$sum", 1}}},
		}}},
		{{"$sort", bson.D{{"avgPrice", -1}}}},
	}
}

func topAuthorsPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{"$group", bson.D{
			{"_id", "$author"},
			{"count", bson.D{{"$sum", 1}}},
		}}},
		{{"$sort", bson.D{{"count", -1}}}},
		{{"$limit", limit}},
	}
}

func countByDecadePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{"$addFields", bson.D{
			{"decadeStart", bson.D{{"$multiply", bson.A{
				bson.D{{"$floor", bson.D{{"$divide", bson.A{"$published_year", 10}}}}},
				10,
			}}}},
		}}},
		{{"$group", bson.D{
			{"_id", "$decadeStart"},
			{"count", bson.D{{"$sum", 1}}},
		}}},
		{{"$sort", bson.D{{"_id", 1}}}},
	}
}
