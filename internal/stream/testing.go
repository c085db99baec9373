package stream

import (
	"context"
	"testing"
	"time"

	"github.com/tjper/bookshelf/internal/event"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// InitSuite connects to the Redis instance at addr and creates a Client in a
// consumer group dedicated to the test.
func InitSuite(ctx context.Context, t *testing.T, addr string) *Suite {
	t.Helper()

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	err := rdb.Ping(ctx).Err()
	require.Nil(t, err)

	client, err := Init(ctx, zap.NewNop(), rdb, "test-suite-"+t.Name())
	require.Nil(t, err)

	// Only messages written after the suite is created are of interest.
	err = rdb.XGroupSetID(ctx, Stream, client.group, "$").Err()
	require.Nil(t, err)

	t.Cleanup(func() {
		_ = rdb.XGroupDestroy(context.Background(), Stream, client.group).Err()
		_ = rdb.Close()
	})

	return &Suite{Redis: rdb, Client: client}
}

type Suite struct {
	Redis  *redis.Client
	Client *Client
}

// ReadEvent reads, parses, and acknowledges the next event on the stream.
func (s Suite) ReadEvent(
	ctx context.Context,
	t *testing.T,
) interface{} {
	t.Helper()

	m, err := s.Client.Read(ctx)
	require.Nil(t, err)

	eventI, err := event.Parse(m.Payload)
	require.Nil(t, err)

	err = s.Client.Ack(ctx, m)
	require.Nil(t, err)

	return eventI
}

func (s Suite) AssertNoEvent(ctx context.Context, t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()

	_, err := s.Client.Read(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
