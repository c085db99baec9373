package stream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnexpectedStreamCount  = errors.New("unexpected stream count")
	ErrUnexpectedMessageCount = errors.New("unexpected message count")

	errInvalidPayload = errors.New("invalid payload")
)

const (
	// Stream is the Redis stream book events are written to.
	Stream = "bookEventStream"

	start  = "0"
	maxlen = 20000
)

// Init intializes a stream Client associated with the specified group.
// Multiple Client instances with the same group will form a round-robin queue.
func Init(ctx context.Context, logger *zap.Logger, rdb *redis.Client, group string) (*Client, error) {
	err := rdb.XGroupCreateMkStream(ctx, Stream, group, start).Err()
	if err != nil && !isBusyGroup(err) {
		return nil, fmt.Errorf("initializing stream; error: %w", err)
	}

	return &Client{
		logger:   logger,
		rdb:      rdb,
		group:    group,
		consumer: uuid.New().String(),
	}, nil
}

// Client is a persistent streaming client.
type Client struct {
	logger *zap.Logger
	rdb    *redis.Client

	group    string
	consumer string
}

// Write writes b to the Client's persistent stream.
func (c Client) Write(ctx context.Context, b []byte) error {
	c.logger.Debug("write stream", zap.Int("bytes", len(b)))

	args := &redis.XAddArgs{
		Stream: Stream,
		MaxLen: maxlen,
		Approx: true,
		ID:     "*",
		Values: map[string]interface{}{"payload": b},
	}
	if err := c.rdb.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("write stream; error: %w", err)
	}

	return nil
}

// Read reads a message from the persistent stream. Read blocks until a
// message is available or ctx is done.
func (c Client) Read(ctx context.Context) (*Message, error) {
	args := &redis.XReadGroupArgs{
		Group:    c.group,
		Consumer: c.consumer,
		Streams:  []string{Stream, ">"},
		Count:    1,
		Block:    time.Second,
		NoAck:    false,
	}

	for {
		streams, err := c.rdb.XReadGroup(ctx, args).Result()
		if err != nil && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read stream; error: %w", err)
		}

		if len(streams) != 1 {
			return nil, fmt.Errorf(
				"read stream; n: %d, error: %w",
				len(streams),
				ErrUnexpectedStreamCount,
			)
		}

		m, err := extractMessage(streams[0].Messages)
		if err != nil {
			return nil, err
		}

		c.logger.Debug(
			"read stream",
			zap.String("message-id", m.ID),
			zap.String("group", c.group),
			zap.String("consumer", c.consumer),
		)
		return m, nil
	}
}

// Ack acknowledges the passed Message. A Message should be acknowledged when
// it has been processed, and it is acceptable for the persistent stream to
// discard the contents.
func (c Client) Ack(ctx context.Context, m *Message) error {
	return c.rdb.XAck(ctx, Stream, c.group, m.ID).Err()
}

func extractMessage(messages []redis.XMessage) (*Message, error) {
	if len(messages) != 1 {
		return nil, fmt.Errorf(
			"unexpected stream message count; n: %d, error: %w",
			len(messages),
			ErrUnexpectedMessageCount,
		)
	}

	m := messages[0]

	str, ok := m.Values["payload"].(string)
	if !ok {
		return nil, errInvalidPayload
	}

	return &Message{
		ID:      m.ID,
		Payload: []byte(str),
	}, nil
}

func isBusyGroup(err error) bool {
	return err.Error() == "BUSYGROUP Consumer Group name already exists"
}

type Message struct {
	ID      string
	Payload []byte
}
