package report

import (
	"fmt"
	"io"
	"strconv"

	"bookstore/internal/book"

	"github.com/olekukonko/tablewriter"
)

const notAvailable = "N/A"

func writeHeading(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "\n"+format+"\n", args...)
}

func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.AppendBulk(rows)
	t.Render()
}

// column extracts one cell of a book row.
type column struct {
	header string
	value  func(book.Book) string
}

var (
	colTitle  = column{"title", func(b book.Book) string { return b.Title }}
	colAuthor = column{"author", func(b book.Book) string { return b.Author }}
	colYear   = column{"year", func(b book.Book) string { return strconv.Itoa(b.PublishedYear) }}
	colPrice  = column{"price", func(b book.Book) string { return b.Price.String() }}
)

func writeBooks(w io.Writer, books []book.Book, cols ...column) {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	rows := make([][]string, 0, len(books))
	for _, b := range books {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = c.value(b)
		}
		rows = append(rows, row)
	}

	writeTable(w, headers, rows)
}

func writeGenreStats(w io.Writer, stats []book.GenreStats) {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{s.Genre, s.AvgPrice.StringFixed(2), strconv.FormatInt(s.Count, 10)})
	}
	writeTable(w, []string{"genre", "avgPrice", "count"}, rows)
}

func writeAuthorCounts(w io.Writer, authors []book.AuthorCount) {
	rows := make([][]string, 0, len(authors))
	for _, a := range authors {
		rows = append(rows, []string{a.Author, strconv.FormatInt(a.Count, 10)})
	}
	writeTable(w, []string{"author", "count"}, rows)
}

func writeDecadeCounts(w io.Writer, decades []book.DecadeCount) {
	rows := make([][]string, 0, len(decades))
	for _, d := range decades {
		rows = append(rows, []string{d.Label(), strconv.FormatInt(d.Count, 10)})
	}
	writeTable(w, []string{"decade", "count"}, rows)
}

func writeExecutionStats(w io.Writer, s book.ExecutionStats) {
	writeTable(w, []string{"metric", "value"}, [][]string{
		{"nReturned", orNA(s.NReturned)},
		{"executionTimeMillis", orNA(s.ExecutionTimeMillis)},
		{"totalDocsExamined", orNA(s.TotalDocsExamined)},
		{"totalKeysExamined", orNA(s.TotalKeysExamined)},
	})
}

func orNA(v *int64) string {
	if v == nil {
		return notAvailable
	}
	return strconv.FormatInt(*v, 10)
}
