package model

// Book is the public shape of a book.
type Book struct {
	ID          string
	Title       string
	Author      string
	Description *string
}
