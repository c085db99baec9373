//go:build redisintegration
// +build redisintegration

package stream

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/tjper/bookshelf/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var redisAddr = flag.String(
	"redis-addr",
	"redis:6379",
	"address of redis instance to be used for integration testing",
)

func TestRead(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	suite := InitSuite(ctx, t, *redisAddr)

	t.Run("read while stream empty", func(t *testing.T) {
		suite.AssertNoEvent(ctx, t)
	})

	t.Run("write", func(t *testing.T) {
		b, err := event.Marshal(event.NewBookCreatedEvent(event.Book{
			ID:     "6530b1f4c2a4d1a9f1e2c3d4",
			Title:  "Dune",
			Author: "Frank Herbert",
		}))
		require.Nil(t, err)

		err = suite.Client.Write(ctx, b)
		assert.Nil(t, err)
	})

	t.Run("read", func(t *testing.T) {
		eventI := suite.ReadEvent(ctx, t)

		created, ok := eventI.(*event.BookCreatedEvent)
		require.True(t, ok)
		assert.Equal(t, "Dune", created.Book.Title)
		assert.Equal(t, "Frank Herbert", created.Book.Author)
		assert.Nil(t, created.Book.Description)
	})

	t.Run("read after ack", func(t *testing.T) {
		suite.AssertNoEvent(ctx, t)
	})
}

func TestGroupsReceiveEveryMessage(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	alpha := InitSuite(ctx, t, *redisAddr)
	bravo, err := Init(ctx, alpha.Client.logger, alpha.Redis, "test-suite-bravo")
	require.Nil(t, err)
	err = alpha.Redis.XGroupSetID(ctx, Stream, bravo.group, "$").Err()
	require.Nil(t, err)
	defer alpha.Redis.XGroupDestroy(context.Background(), Stream, bravo.group)

	err = alpha.Client.Write(ctx, []byte("message"))
	require.Nil(t, err)

	for _, client := range []*Client{alpha.Client, bravo} {
		m, err := client.Read(ctx)
		require.Nil(t, err)
		assert.Equal(t, []byte("message"), m.Payload)

		err = client.Ack(ctx, m)
		assert.Nil(t, err)
	}
}
