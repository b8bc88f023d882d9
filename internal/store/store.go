// Package store persists the order collection and candidate map in Redis.
//
// The whole dataset lives under two keys holding JSON values: one for the
// order list, one for the candidate map. Loads fall back to the built-in
// seed dataset when a key is missing or its payload does not parse — corrupt
// data is replaced by defaults, never surfaced as an error. Saves may fail;
// callers treat them as best-effort and keep the in-memory state
// authoritative for the session.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"jobmate/recruit-service/internal/model"
)

const (
	ordersKey     = "recruit:orders"
	candidatesKey = "recruit:candidates"
)

// Store is the persistence contract the dashboard engine depends on.
type Store interface {
	LoadOrders(ctx context.Context) []model.JobPostingOrder
	SaveOrders(ctx context.Context, orders []model.JobPostingOrder) error
	LoadCandidates(ctx context.Context) model.CandidateMap
	SaveCandidates(ctx context.Context, candidates model.CandidateMap) error
}

// RedisStore implements Store on top of a Redis client.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a RedisStore backed by rdb.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// LoadOrders returns the persisted order collection, or the seed orders when
// no prior data exists or the stored payload is unreadable.
func (s *RedisStore) LoadOrders(ctx context.Context) []model.JobPostingOrder {
	data, err := s.rdb.Get(ctx, ordersKey).Bytes()
	if err != nil {
		return SeedOrders()
	}

	var orders []model.JobPostingOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		return SeedOrders()
	}
	return orders
}

// SaveOrders writes the full order collection as a single JSON value.
func (s *RedisStore) SaveOrders(ctx context.Context, orders []model.JobPostingOrder) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("store: marshal orders: %w", err)
	}
	if err := s.rdb.Set(ctx, ordersKey, data, 0).Err(); err != nil {
		return fmt.Errorf("store: save orders: %w", err)
	}
	return nil
}

// LoadCandidates returns the persisted candidate map, or the seed candidates
// when no prior data exists or the stored payload is unreadable.
func (s *RedisStore) LoadCandidates(ctx context.Context) model.CandidateMap {
	data, err := s.rdb.Get(ctx, candidatesKey).Bytes()
	if err != nil {
		return SeedCandidates()
	}

	var candidates model.CandidateMap
	if err := json.Unmarshal(data, &candidates); err != nil {
		return SeedCandidates()
	}
	return candidates
}

// SaveCandidates writes the full candidate map as a single JSON value.
func (s *RedisStore) SaveCandidates(ctx context.Context, candidates model.CandidateMap) error {
	data, err := json.Marshal(candidates)
	if err != nil {
		return fmt.Errorf("store: marshal candidates: %w", err)
	}
	if err := s.rdb.Set(ctx, candidatesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("store: save candidates: %w", err)
	}
	return nil
}
