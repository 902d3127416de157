// Package redisstore keeps live check-in sets in Redis.
package redisstore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"youthministry/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Open parses a redis:// URL, connects and pings the server.
func Open(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type checkinSet struct {
	client redis.Cmdable
	logger *slog.Logger
}

// NewCheckinSet returns a domain.CheckinSet backed by one Redis set per event,
// keyed by domain.CheckinKey.
func NewCheckinSet(client redis.Cmdable, logger *slog.Logger) domain.CheckinSet {
	return &checkinSet{
		client: client,
		logger: logger,
	}
}

func (s *checkinSet) Add(ctx context.Context, eventID, studentID int64) error {
	if err := s.client.SAdd(ctx, domain.CheckinKey(eventID), strconv.FormatInt(studentID, 10)).Err(); err != nil {
		return domain.NewStorageError("add check-in", err)
	}
	return nil
}

// List returns the set members. Members that are not integers were not written by
// this service; they are logged and skipped.
func (s *checkinSet) List(ctx context.Context, eventID int64) ([]int64, error) {
	key := domain.CheckinKey(eventID)
	members, err := s.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, domain.NewStorageError("list check-ins", err)
	}
	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping malformed check-in member", "key", key, "member", m)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *checkinSet) Clear(ctx context.Context, eventID int64) error {
	if err := s.client.Del(ctx, domain.CheckinKey(eventID)).Err(); err != nil {
		return domain.NewStorageError("clear check-ins", err)
	}
	return nil
}

func (s *checkinSet) Remove(ctx context.Context, eventID int64, studentIDs []int64) error {
	if len(studentIDs) == 0 {
		return nil
	}
	members := make([]any, len(studentIDs))
	for i, id := range studentIDs {
		members[i] = strconv.FormatInt(id, 10)
	}
	if err := s.client.SRem(ctx, domain.CheckinKey(eventID), members...).Err(); err != nil {
		return domain.NewStorageError("remove check-ins", err)
	}
	return nil
}
