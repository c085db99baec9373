// Package event provides types relevant to signal service changes outward
// to event consumers.
package event

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

var errKindInvalid = errors.New("kind is invalid")

// Parse accepts a slice of bytes (b) and decodes these bytes into the
// appropriate event type.
func Parse(b []byte) (interface{}, error) {
	var header Event
	if err := msgpack.Unmarshal(b, &header); err != nil {
		return nil, fmt.Errorf("unmarshal event; error: %w", err)
	}

	var event interface{}
	switch header.Kind {
	case BookCreated:
		event = &BookCreatedEvent{}
	default:
		return nil, fmt.Errorf("unexpected event; kind: %q, error: %w", header.Kind, errKindInvalid)
	}

	if err := msgpack.Unmarshal(b, event); err != nil {
		return nil, fmt.Errorf("unmarshal event; type: %T, error: %w", event, err)
	}

	return event, nil
}

// Marshal encodes event so that it may later be decoded by Parse.
func Marshal(event interface{}) ([]byte, error) {
	b, err := msgpack.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal event; type: %T, error: %w", event, err)
	}
	return b, nil
}

type Kind string

const (
	BookCreated Kind = "book_created"
)

// New creates a new Event instance.
func New(kind Kind) Event {
	return Event{
		ID:        uuid.New().String(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
}

// Event is a generic bookshelf system event.
type Event struct {
	ID        string    `msgpack:"id"`
	Kind      Kind      `msgpack:"kind"`
	CreatedAt time.Time `msgpack:"createdAt"`
}

// Book is the state of a book as it is communicated to event consumers.
type Book struct {
	ID          string  `msgpack:"id"`
	Title       string  `msgpack:"title"`
	Author      string  `msgpack:"author"`
	Description *string `msgpack:"description"`
}

// BookCreatedEvent is fired when a book has been added to the bookshelf.
type BookCreatedEvent struct {
	Event `msgpack:",inline"`
	Book  Book `msgpack:"book"`
}

// NewBookCreatedEvent creates a new BookCreatedEvent instance.
func NewBookCreatedEvent(book Book) BookCreatedEvent {
	return BookCreatedEvent{
		Event: New(BookCreated),
		Book:  book,
	}
}
