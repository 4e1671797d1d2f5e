package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStateStore keeps each value under "{prefix}:team:{id}:{key}".
// Values never expire.
type RedisStateStore struct {
	RDB    *redis.Client
	Prefix string
}

func NewRedisStateStore(rdb *redis.Client, prefix string) *RedisStateStore {
	if prefix == "" {
		prefix = "dragon"
	}
	return &RedisStateStore{RDB: rdb, Prefix: prefix}
}

func (s *RedisStateStore) teamPrefix(teamID string) string {
	return s.Prefix + ":team:" + teamID + ":"
}

func (s *RedisStateStore) Load(ctx context.Context, teamID, key string, dst any) (bool, error) {
	b, err := s.RDB.Get(ctx, s.teamPrefix(teamID)+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, decode(b, dst)
}

// LoadAll fetches every requested key with one MGET, which Redis runs
// atomically with respect to SaveAll's MULTI block.
func (s *RedisStateStore) LoadAll(ctx context.Context, teamID string, dst map[string]any) error {
	if len(dst) == 0 {
		return nil
	}
	keys := make([]string, 0, len(dst))
	full := make([]string, 0, len(dst))
	for k := range dst {
		keys = append(keys, k)
		full = append(full, s.teamPrefix(teamID)+k)
	}
	vals, err := s.RDB.MGet(ctx, full...).Result()
	if err != nil {
		return err
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		if err := decode([]byte(str), dst[keys[i]]); err != nil {
			return fmt.Errorf("%s: %w", keys[i], err)
		}
	}
	return nil
}

func (s *RedisStateStore) Save(ctx context.Context, teamID, key string, v any) error {
	b, err := encode(v)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, s.teamPrefix(teamID)+key, b, 0).Err()
}

// SaveAll writes every value in one MULTI/EXEC transaction.
func (s *RedisStateStore) SaveAll(ctx context.Context, teamID string, values map[string]any) error {
	keys, encoded, err := encodeAll(values)
	if err != nil {
		return err
	}
	_, err = s.RDB.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range keys {
			pipe.Set(ctx, s.teamPrefix(teamID)+k, encoded[k], 0)
		}
		return nil
	})
	return err
}

// Delete walks the team's keys with SCAN so large keyspaces are not blocked.
func (s *RedisStateStore) Delete(ctx context.Context, teamID string) error {
	iter := s.RDB.Scan(ctx, 0, s.teamPrefix(teamID)+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.RDB.Del(ctx, keys...).Err()
}
