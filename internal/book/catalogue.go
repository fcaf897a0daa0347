package book

import "github.com/shopspring/decimal"

// SampleCatalogue returns the books loaded by the seed command. It covers
// every title the query report updates, deletes or explains.
func SampleCatalogue() []Book {
	return []Book{
		sample("To Kill a Mockingbird", "Harper Lee", "Fiction", 1960, "12.99", true, 336, "J. B. Lippincott & Co."),
		sample("1984", "George Orwell", "Dystopian", 1949, "10.99", true, 328, "Secker & Warburg"),
		sample("The Great Gatsby", "F. Scott Fitzgerald", "Fiction", 1925, "9.99", true, 180, "Charles Scribner's Sons"),
		sample("Brave New World", "Aldous Huxley", "Dystopian", 1932, "11.50", false, 311, "Chatto & Windus"),
		sample("The Hobbit", "J.R.R. Tolkien", "Fantasy", 1937, "14.99", true, 310, "George Allen & Unwin"),
		sample("The Catcher in the Rye", "J.D. Salinger", "Fiction", 1951, "8.99", true, 224, "Little, Brown and Company"),
		sample("Pride and Prejudice", "Jane Austen", "Romance", 1813, "7.99", true, 432, "T. Egerton"),
		sample("The Lord of the Rings", "J.R.R. Tolkien", "Fantasy", 1954, "19.99", true, 1178, "Allen & Unwin"),
		sample("Animal Farm", "George Orwell", "Political Satire", 1945, "8.50", false, 112, "Secker & Warburg"),
		sample("The Alchemist", "Paulo Coelho", "Fiction", 1988, "10.99", true, 197, "HarperOne"),
		sample("Moby Dick", "Herman Melville", "Adventure", 1851, "12.50", false, 635, "Harper & Brothers"),
		sample("Wuthering Heights", "Emily Brontë", "Gothic Fiction", 1847, "9.99", true, 342, "Thomas Cautley Newby"),
		sample("The Night Circus", "Erin Morgenstern", "Fantasy", 2011, "15.99", true, 387, "Doubleday"),
		sample("Go Set a Watchman", "Harper Lee", "Fiction", 2015, "13.99", false, 278, "HarperCollins"),
		sample("Circe", "Madeline Miller", "Fantasy", 2018, "16.50", true, 393, "Little, Brown and Company"),
		sample("Project Hail Mary", "Andy Weir", "Science Fiction", 2021, "18.99", true, 476, "Ballantine Books"),
	}
}

func sample(title, author, genre string, year int, price string, inStock bool, pages int, publisher string) Book {
	return Book{
		Title:         title,
		Author:        author,
		Genre:         genre,
		PublishedYear: year,
		Price:         decimal.RequireFromString(price),
		InStock:       inStock,
		Pages:         pages,
		Publisher:     publisher,
	}
}
