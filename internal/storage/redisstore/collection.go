package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// indexScript adds ARGV[2] to the index KEYS[1] scored by its creation time in
// microseconds (ARGV[1]), pushed past the last score kept in KEYS[2] so that
// records written within the same microsecond still list in write order.
var indexScript = redis.NewScript(`
local score = tonumber(ARGV[1])
local last = tonumber(redis.call('GET', KEYS[2]) or '0')
if score <= last then
  score = last + 1
end
local s = string.format('%.0f', score)
redis.call('SET', KEYS[2], s)
redis.call('ZADD', KEYS[1], s, ARGV[2])
return 1
`)

// collection stores one record kind as JSON documents.
//
//	<prefix>:<id>   JSON document
//	<index>         sorted set of ids scored by creation time (unix µs, strictly increasing)
//	<index>:last    highest score handed out
type collection[T any] struct {
	client   *redis.Client
	prefix   string
	index    string
	notFound error
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (c collection[T]) key(id string) string {
	return fmt.Sprintf("%s:%s", c.prefix, id)
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	return c.getFrom(ctx, c.client, id)
}

func (c collection[T]) getFrom(ctx context.Context, g getter, id string) (*T, error) {
	data, err := g.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, c.notFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", c.prefix, err)
	}

	var doc T
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", c.prefix, err)
	}
	return &doc, nil
}

// put queues the document write and index update on pipe.
func (c collection[T]) put(ctx context.Context, pipe redis.Pipeliner, id string, createdAt time.Time, doc *T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.prefix, err)
	}
	pipe.Set(ctx, c.key(id), data, 0)
	indexScript.Eval(ctx, pipe, []string{c.index, c.index + ":last"}, createdAt.UnixMicro(), id)
	return nil
}

// overwrite replaces the document without touching the index.
func (c collection[T]) overwrite(ctx context.Context, pipe redis.Pipeliner, id string, doc *T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", c.prefix, err)
	}
	pipe.Set(ctx, c.key(id), data, 0)
	return nil
}

func (c collection[T]) remove(ctx context.Context, pipe redis.Pipeliner, id string) {
	pipe.Del(ctx, c.key(id))
	pipe.ZRem(ctx, c.index, id)
}

// list returns documents newest first. Index entries whose document is gone are skipped.
func (c collection[T]) list(ctx context.Context) ([]T, error) {
	ids, err := c.client.ZRevRange(ctx, c.index, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list %s ids: %w", c.prefix, err)
	}

	out := make([]T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.key(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s documents: %w", c.prefix, err)
	}

	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var doc T
		if err := json.Unmarshal([]byte(s), &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", c.prefix, err)
		}
		out = append(out, doc)
	}
	return out, nil
}
