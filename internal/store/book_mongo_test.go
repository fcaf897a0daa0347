package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookstore/internal/book"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mockCollection struct {
	mock.Mock
}

func (m *mockCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	cur, _ := args.Get(0).(*mongo.Cursor)
	return cur, args.Error(1)
}

func (m *mockCollection) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	res, _ := args.Get(0).(*mongo.UpdateResult)
	return res, args.Error(1)
}

func (m *mockCollection) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, filter)
	res, _ := args.Get(0).(*mongo.DeleteResult)
	return res, args.Error(1)
}

func (m *mockCollection) Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error) {
	args := m.Called(ctx, pipeline)
	cur, _ := args.Get(0).(*mongo.Cursor)
	return cur, args.Error(1)
}

func (m *mockCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	args := m.Called(ctx, documents)
	res, _ := args.Get(0).(*mongo.InsertManyResult)
	return res, args.Error(1)
}

func (m *mockCollection) Drop(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockIndexes struct {
	mock.Mock
}

func (m *mockIndexes) CreateOne(ctx context.Context, model mongo.IndexModel, opts ...*options.CreateIndexesOptions) (string, error) {
	args := m.Called(ctx, model)
	return args.String(0), args.Error(1)
}

type mockCommander struct {
	mock.Mock
}

func (m *mockCommander) RunCommand(ctx context.Context, runCommand interface{}, opts ...*options.RunCmdOptions) *mongo.SingleResult {
	return m.Called(ctx, runCommand).Get(0).(*mongo.SingleResult)
}

func newTestRepo() (*BookMongo, *mockCollection, *mockIndexes, *mockCommander) {
	coll := &mockCollection{}
	idx := &mockIndexes{}
	cmd := &mockCommander{}
	return &BookMongo{coll: coll, indexes: idx, db: cmd, name: "books"}, coll, idx, cmd
}

func cursorOf(t *testing.T, docs ...interface{}) *mongo.Cursor {
	t.Helper()
	cur, err := mongo.NewCursorFromDocuments(docs, nil, nil)
	require.NoError(t, err)
	return cur
}

func intPtr(i int) *int    { return &i }
func boolPtr(b bool) *bool { return &b }

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name  string
		query book.Query
		want  bson.D
	}{
		{name: "empty", query: book.Query{}, want: bson.D{}},
		{name: "genre", query: book.Query{Genre: "Fiction"}, want: bson.D{{"genre", "Fiction"}}},
		{name: "author", query: book.Query{Author: "Harper Lee"}, want: bson.D{{"author", "Harper Lee"}}},
		{name: "title", query: book.Query{Title: "Wuthering Heights"}, want: bson.D{{"title", "Wuthering Heights"}}},
		{
			name:  "published after",
			query: book.Query{PublishedAfter: intPtr(1960)},
			want:  bson.D{{"published_year", bson.D{{"$gt", 1960}}}},
		},
		{
			name:  "in stock and published after",
			query: book.Query{InStock: boolPtr(true), PublishedAfter: intPtr(2010)},
			want: bson.D{
				{"in_stock", true},
				{"published_year", bson.D{{"$gt", 2010}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildFilter(tt.query))
		})
	}
}

func TestBuildFindOptions(t *testing.T) {
	t.Run("projection drops _id", func(t *testing.T) {
		opts := buildFindOptions(book.Query{Fields: []string{"title", "author", "price"}})
		assert.Equal(t, bson.D{{"title", 1}, {"author", 1}, {"price", 1}, {"_id", 0}}, opts.Projection)
		assert.Nil(t, opts.Sort)
		assert.Nil(t, opts.Skip)
		assert.Nil(t, opts.Limit)
	})

	t.Run("sort ascending with limit", func(t *testing.T) {
		opts := buildFindOptions(book.Query{SortBy: "price", Order: book.Ascending, Limit: 10})
		assert.Equal(t, bson.D{{"price", 1}}, opts.Sort)
		require.NotNil(t, opts.Limit)
		assert.Equal(t, int64(10), *opts.Limit)
	})

	t.Run("sort descending", func(t *testing.T) {
		opts := buildFindOptions(book.Query{SortBy: "price", Order: book.Descending, Limit: 10})
		assert.Equal(t, bson.D{{"price", -1}}, opts.Sort)
	})

	t.Run("second page", func(t *testing.T) {
		opts := buildFindOptions(book.Query{Offset: 5, Limit: 5})
		require.NotNil(t, opts.Skip)
		require.NotNil(t, opts.Limit)
		assert.Equal(t, int64(5), *opts.Skip)
		assert.Equal(t, int64(5), *opts.Limit)
		assert.Nil(t, opts.Projection)
	})
}

func TestPipelines(t *testing.T) {
	t.Run("average price by genre", func(t *testing.T) {
		want := mongo.Pipeline{
			{{"$group", bson.D{
				{"_id", "$genre"},
				{"avgPrice", bson.D{{"$avg", "$price"}}},
				{"count", bson.D{{"$sum", 1}}},
			}}},
			{{"$sort", bson.D{{"avgPrice", -1}}}},
		}
		assert.Equal(t, want, averagePriceByGenrePipeline())
	})

	t.Run("top author", func(t *testing.T) {
		want := mongo.Pipeline{
			{{"$group", bson.D{{"_id", "$author"}, {"count", bson.D{{"$sum", 1}}}}}},
			{{"$sort", bson.D{{"count", -1}}}},
			{{"$limit", 1}},
		}
		assert.Equal(t, want, topAuthorsPipeline(1))
	})

	t.Run("count by decade", func(t *testing.T) {
		p := countByDecadePipeline()
		require.Len(t, p, 3)
		assert.Equal(t, "$addFields", p[0][0].Key)
		assert.Equal(t, bson.D{{"_id", "$decadeStart"}, {"count", bson.D{{"$sum", 1}}}}, p[1][0].Value)
		assert.Equal(t, bson.D{{"_id", 1}}, p[2][0].Value)
	})
}

func TestExplainFindCommand(t *testing.T) {
	cmd := explainFindCommand("books", book.Query{Title: "Wuthering Heights"})
	want := bson.D{
		{"explain", bson.D{
			{"find", "books"},
			{"filter", bson.D{{"title", "Wuthering Heights"}}},
		}},
		{"verbosity", "executionStats"},
	}
	assert.Equal(t, want, cmd)
}

func TestBookMongo_List(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	id := primitive.NewObjectID()

	coll.On("Find", mock.Anything, bson.D{{"genre", "Fiction"}}, mock.Anything).
		Return(cursorOf(t, bson.D{
			{"_id", id},
			{"title", "To Kill a Mockingbird"},
			{"author", "Harper Lee"},
			{"genre", "Fiction"},
			{"published_year", int32(1960)},
			{"price", 12.99},
			{"in_stock", true},
		}), nil)

	books, err := repo.List(context.Background(), book.Query{Genre: "Fiction"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, id.Hex(), books[0].ID)
	assert.Equal(t, 1960, books[0].PublishedYear)
	assert.Equal(t, "12.99", books[0].Price.String())
	assert.True(t, books[0].InStock)
	coll.AssertExpectations(t)
}

func TestBookMongo_List_FindError(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := repo.List(context.Background(), book.Query{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBookMongo_List_Timeout(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	repo.timeout = time.Minute

	coll.On("Find", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), mock.Anything, mock.Anything).Return(cursorOf(t), nil)

	books, err := repo.List(context.Background(), book.Query{})
	require.NoError(t, err)
	assert.Empty(t, books)
	coll.AssertExpectations(t)
}

func TestBookMongo_UpdatePrice(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("UpdateOne", mock.Anything,
		bson.D{{"title", "To Kill a Mockingbird"}},
		bson.D{{"$set", bson.D{{"price", 35.55}}}},
	).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)

	res, err := repo.UpdatePrice(context.Background(), "To Kill a Mockingbird", decimal.RequireFromString("35.55"))
	require.NoError(t, err)
	assert.Equal(t, book.UpdateResult{Matched: 1, Modified: 1}, res)
}

func TestBookMongo_DeleteByTitle(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("DeleteOne", mock.Anything, bson.D{{"title", "The Great Gatsby"}}).
		Return(&mongo.DeleteResult{DeletedCount: 0}, nil)

	res, err := repo.DeleteByTitle(context.Background(), "The Great Gatsby")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Deleted)
}

func TestBookMongo_AveragePriceByGenre(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("Aggregate", mock.Anything, averagePriceByGenrePipeline()).
		Return(cursorOf(t,
			bson.D{{"_id", "Fantasy"}, {"avgPrice", 16.8675}, {"count", int32(4)}},
			bson.D{{"_id", nil}, {"avgPrice", nil}, {"count", int32(1)}},
		), nil)

	stats, err := repo.AveragePriceByGenre(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "Fantasy", stats[0].Genre)
	assert.Equal(t, "16.87", stats[0].AvgPrice.StringFixed(2))
	assert.Equal(t, int64(4), stats[0].Count)
	assert.Equal(t, "", stats[1].Genre)
	assert.True(t, stats[1].AvgPrice.IsZero())
}

func TestBookMongo_TopAuthors(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("Aggregate", mock.Anything, topAuthorsPipeline(1)).
		Return(cursorOf(t, bson.D{{"_id", "George Orwell"}, {"count", int32(2)}}), nil)

	authors, err := repo.TopAuthors(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []book.AuthorCount{{Author: "George Orwell", Count: 2}}, authors)
}

func TestBookMongo_CountByDecade(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	coll.On("Aggregate", mock.Anything, countByDecadePipeline()).
		Return(cursorOf(t,
			bson.D{{"_id", nil}, {"count", int32(1)}},
			bson.D{{"_id", 1840.0}, {"count", int32(1)}},
			bson.D{{"_id", 1960.0}, {"count", int32(2)}},
		), nil)

	decades, err := repo.CountByDecade(context.Background())
	require.NoError(t, err)
	require.Len(t, decades, 3)
	assert.Equal(t, "unknown", decades[0].Label())
	assert.Equal(t, "1840s", decades[1].Label())
	assert.Equal(t, book.DecadeCount{Decade: 1960, Known: true, Count: 2}, decades[2])
}

func TestBookMongo_AggregateError(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	boom := errors.New("boom")
	coll.On("Aggregate", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := repo.CountByDecade(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestBookMongo_Explain(t *testing.T) {
	t.Run("execution stats", func(t *testing.T) {
		repo, _, _, cmd := newTestRepo()
		cmd.On("RunCommand", mock.Anything, explainFindCommand("books", book.Query{Title: "Wuthering Heights"})).
			Return(mongo.NewSingleResultFromDocument(bson.D{
				{"executionStats", bson.D{
					{"nReturned", int32(1)},
					{"executionTimeMillis", int32(0)},
					{"totalDocsExamined", int32(16)},
					{"totalKeysExamined", int32(0)},
				}},
			}, nil, nil))

		stats, err := repo.Explain(context.Background(), book.Query{Title: "Wuthering Heights"})
		require.NoError(t, err)
		require.NotNil(t, stats.NReturned)
		assert.Equal(t, int64(1), *stats.NReturned)
		assert.Equal(t, int64(16), *stats.TotalDocsExamined)
		assert.Equal(t, int64(0), *stats.TotalKeysExamined)
	})

	t.Run("missing section", func(t *testing.T) {
		repo, _, _, cmd := newTestRepo()
		cmd.On("RunCommand", mock.Anything, mock.Anything).
			Return(mongo.NewSingleResultFromDocument(bson.D{{"ok", 1.0}}, nil, nil))

		stats, err := repo.Explain(context.Background(), book.Query{Title: "Wuthering Heights"})
		require.NoError(t, err)
		assert.Nil(t, stats.NReturned)
		assert.Nil(t, stats.TotalKeysExamined)
	})

	t.Run("command error", func(t *testing.T) {
		repo, _, _, cmd := newTestRepo()
		boom := errors.New("unauthorized")
		cmd.On("RunCommand", mock.Anything, mock.Anything).
			Return(mongo.NewSingleResultFromDocument(bson.D{}, boom, nil))

		_, err := repo.Explain(context.Background(), book.Query{})
		assert.ErrorIs(t, err, boom)
	})
}

func TestBookMongo_CreateIndex(t *testing.T) {
	repo, _, idx, _ := newTestRepo()
	idx.On("CreateOne", mock.Anything, mongo.IndexModel{Keys: bson.D{{"author", 1}, {"published_year", -1}}}).
		Return("author_1_published_year_-1", nil)

	name, err := repo.CreateIndex(context.Background(), []book.IndexKey{
		{Field: "author", Order: book.Ascending},
		{Field: "published_year", Order: book.Descending},
	})
	require.NoError(t, err)
	assert.Equal(t, "author_1_published_year_-1", name)
}

func TestBookMongo_InsertManyAndDrop(t *testing.T) {
	repo, coll, _, _ := newTestRepo()
	books := book.SampleCatalogue()

	coll.On("Drop", mock.Anything).Return(nil)
	coll.On("InsertMany", mock.Anything, mock.MatchedBy(func(docs []interface{}) bool {
		if len(docs) != len(books) {
			return false
		}
		first, ok := docs[0].(bookDocument)
		return ok && first.Title == books[0].Title && first.ID.IsZero()
	})).Return(&mongo.InsertManyResult{InsertedIDs: make([]interface{}, len(books))}, nil)

	require.NoError(t, repo.Drop(context.Background()))
	n, err := repo.InsertMany(context.Background(), books)
	require.NoError(t, err)
	assert.Equal(t, len(books), n)
	coll.AssertExpectations(t)
}
