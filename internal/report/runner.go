// Package report runs the fixed sequence of bookstore queries and prints
// their results as console tables.
package report

import (
	"context"
	"fmt"
	"io"
	"time"

	"bookstore/internal/book"

	"go.uber.org/zap"
)

// Runner executes the plan one query at a time and stops at the first failure.
type Runner struct {
	books  *book.Service
	out    io.Writer
	logger *zap.Logger
	plan   Plan
}

// NewRunner creates a runner writing its report to out.
func NewRunner(books *book.Service, out io.Writer, logger *zap.Logger, plan Plan) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{books: books, out: out, logger: logger, plan: plan}
}

type step struct {
	name string
	run  func(ctx context.Context) error
}

type section struct {
	title string
	steps []step
}

// Run executes every section in order. The returned error names the query
// that failed.
func (r *Runner) Run(ctx context.Context) error {
	for _, sec := range r.sections() {
		fmt.Fprintf(r.out, "\n=== %s ===\n", sec.title)

		for _, st := range sec.steps {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%s: %w", st.name, err)
			}

			start := time.Now()
			if err := st.run(ctx); err != nil {
				return fmt.Errorf("%s: %w", st.name, err)
			}
			r.logger.Debug("query done",
				zap.String("query", st.name),
				zap.Duration("took", time.Since(start)),
			)
		}
	}

	fmt.Fprintln(r.out, "\nAll done.")
	return nil
}

func (r *Runner) sections() []section {
	return []section{
		{title: "BASIC QUERIES", steps: []step{
			{"books in genre", r.booksInGenre},
			{"books published after", r.booksPublishedAfter},
			{"books by author", r.booksByAuthor},
			{"update price", r.updatePrice},
			{"delete by title", r.deleteByTitle},
		}},
		{title: "ADVANCED QUERIES", steps: []step{
			{"in stock and recent", r.inStockAndRecent},
			{"cheapest", r.cheapest},
			{"most expensive", r.mostExpensive},
			{"pagination", r.pagination},
		}},
		{title: "AGGREGATION PIPELINES", steps: []step{
			{"average price by genre", r.averagePriceByGenre},
			{"top author", r.topAuthor},
			{"books by decade", r.booksByDecade},
		}},
		{title: "INDEXING & EXPLAIN", steps: []step{
			{"explain before index", r.explain("Explain (before index):")},
			{"create title index", r.createTitleIndex},
			{"explain after index", r.explain("Explain (after index):")},
			{"create compound index", r.createCompoundIndex},
		}},
	}
}

func (r *Runner) booksInGenre(ctx context.Context) error {
	books, err := r.books.InGenre(ctx, r.plan.Genre)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Books in genre %q:", r.plan.Genre)
	writeBooks(r.out, books, colTitle, colAuthor, colYear)
	return nil
}

func (r *Runner) booksPublishedAfter(ctx context.Context) error {
	books, err := r.books.PublishedAfter(ctx, r.plan.AfterYear)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Books published after %d:", r.plan.AfterYear)
	writeBooks(r.out, books, colTitle, colYear)
	return nil
}

func (r *Runner) booksByAuthor(ctx context.Context) error {
	books, err := r.books.ByAuthor(ctx, r.plan.Author)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Books by %s:", r.plan.Author)
	writeBooks(r.out, books, colTitle, colYear)
	return nil
}

func (r *Runner) updatePrice(ctx context.Context) error {
	res, err := r.books.UpdatePrice(ctx, r.plan.UpdateTitle, r.plan.NewPrice)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Update price of %q -> matched: %d, modified: %d", r.plan.UpdateTitle, res.Matched, res.Modified)
	return nil
}

func (r *Runner) deleteByTitle(ctx context.Context) error {
	res, err := r.books.DeleteByTitle(ctx, r.plan.DeleteTitle)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Delete %q -> deletedCount: %d", r.plan.DeleteTitle, res.Deleted)
	return nil
}

func (r *Runner) inStockAndRecent(ctx context.Context) error {
	books, err := r.books.InStockPublishedAfter(ctx, r.plan.InStockAfter)
	if err != nil {
		return err
	}
	writeHeading(r.out, "In-stock and published after %d (title, author, price):", r.plan.InStockAfter)
	writeBooks(r.out, books, colTitle, colAuthor, colPrice)
	return nil
}

func (r *Runner) cheapest(ctx context.Context) error {
	books, err := r.books.Cheapest(ctx, r.plan.TopN)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Top %d cheapest:", r.plan.TopN)
	writeBooks(r.out, books, colTitle, colPrice)
	return nil
}

func (r *Runner) mostExpensive(ctx context.Context) error {
	books, err := r.books.MostExpensive(ctx, r.plan.TopN)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Top %d most expensive:", r.plan.TopN)
	writeBooks(r.out, books, colTitle, colPrice)
	return nil
}

func (r *Runner) pagination(ctx context.Context) error {
	for page := 1; page <= r.plan.Pages; page++ {
		books, err := r.books.Page(ctx, page, r.plan.PerPage)
		if err != nil {
			return fmt.Errorf("page %d: %w", page, err)
		}
		writeHeading(r.out, "Page %d (%d per page):", page, r.plan.PerPage)
		writeBooks(r.out, books, colTitle)
	}
	return nil
}

func (r *Runner) averagePriceByGenre(ctx context.Context) error {
	stats, err := r.books.AveragePriceByGenre(ctx)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Average price by genre:")
	writeGenreStats(r.out, stats)
	return nil
}

func (r *Runner) topAuthor(ctx context.Context) error {
	authors, err := r.books.TopAuthor(ctx)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Author with most books:")
	writeAuthorCounts(r.out, authors)
	return nil
}

func (r *Runner) booksByDecade(ctx context.Context) error {
	decades, err := r.books.CountByDecade(ctx)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Books by publication decade:")
	writeDecadeCounts(r.out, decades)
	return nil
}

func (r *Runner) explain(heading string) func(context.Context) error {
	return func(ctx context.Context) error {
		stats, err := r.books.ExplainTitleLookup(ctx, r.plan.ExplainTitle)
		if err != nil {
			return err
		}
		writeHeading(r.out, "%s", heading)
		writeExecutionStats(r.out, stats)
		return nil
	}
}

func (r *Runner) createTitleIndex(ctx context.Context) error {
	name, err := r.books.CreateIndex(ctx, book.IndexKey{Field: book.FieldTitle, Order: book.Ascending})
	if err != nil {
		return err
	}
	writeHeading(r.out, "Created index on title: %s", name)
	return nil
}

func (r *Runner) createCompoundIndex(ctx context.Context) error {
	name, err := r.books.CreateIndex(ctx,
		book.IndexKey{Field: book.FieldAuthor, Order: book.Ascending},
		book.IndexKey{Field: book.FieldPublishedYear, Order: book.Descending},
	)
	if err != nil {
		return err
	}
	writeHeading(r.out, "Created compound index on author + published_year: %s", name)
	return nil
}
