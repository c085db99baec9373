package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestParse(t *testing.T) {
	description := "A desert planet."

	t.Run("book created", func(t *testing.T) {
		exp := NewBookCreatedEvent(Book{
			ID:          "6530b1f4c2a4d1a9f1e2c3d4",
			Title:       "Dune",
			Author:      "Frank Herbert",
			Description: &description,
		})

		b, err := Marshal(exp)
		require.Nil(t, err)

		eventI, err := Parse(b)
		require.Nil(t, err)

		event, ok := eventI.(*BookCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, exp.ID, event.ID)
		assert.Equal(t, BookCreated, event.Kind)
		assert.True(t, exp.CreatedAt.Equal(event.CreatedAt))
		assert.Equal(t, exp.Book, event.Book)
	})

	t.Run("unknown kind", func(t *testing.T) {
		b, err := msgpack.Marshal(New(Kind("book_deleted")))
		require.Nil(t, err)

		_, err = Parse(b)
		assert.ErrorIs(t, err, errKindInvalid)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := Parse([]byte("not msgpack"))
		assert.Error(t, err)
	})
}
