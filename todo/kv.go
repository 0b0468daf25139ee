package todo

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
)

// keyPrefix namespaces todo lists in the shared Redis instance. The full
// key is dashboard_todos_<userId>.
const keyPrefix = "dashboard_todos_"

// KV is the per-user persistence behind Store. Get returns nil (not an
// error) for a user with no saved list. Put must round-trip losslessly:
// what you Put is exactly what the next Get returns.
type KV interface {
	Get(ctx context.Context, userID string) ([]Todo, error)
	Put(ctx context.Context, userID string, todos []Todo) error
}

// RedisKV stores each user's list as one JSON value.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, userID string) ([]Todo, error) {
	str, err := r.client.Get(ctx, keyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	todos := []Todo{}
	if err := json.Unmarshal([]byte(str), &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *RedisKV) Put(ctx context.Context, userID string, todos []Todo) error {
	b, err := json.Marshal(todos)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+userID, b, 0).Err()
}

// MemoryKV keeps lists in memory. Used in tests and anywhere a Redis
// connection isn't worth the trouble.
type MemoryKV struct {
	mu    sync.Mutex
	lists map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{lists: map[string][]byte{}}
}

func (m *MemoryKV) Get(ctx context.Context, userID string) ([]Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.lists[keyPrefix+userID]
	if !ok {
		return nil, nil
	}
	todos := []Todo{}
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

func (m *MemoryKV) Put(ctx context.Context, userID string, todos []Todo) error {
	b, err := json.Marshal(todos)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists[keyPrefix+userID] = b
	return nil
}
