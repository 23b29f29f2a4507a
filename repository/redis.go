package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-kit/log/level"
	"github.com/redis/go-redis/v9"

	"github.com/qpost/go-qpost-server/global"
	"github.com/qpost/go-qpost-server/types"
)

// MailCollectionKey is the fixed storage key holding the serialized collection
const MailCollectionKey = "mails"

// implements MailRepository interface using Redis
type RedisMailRepository struct {
	client *redis.Client
	key    string
}

func NewRedisMailRepository(client *redis.Client) *RedisMailRepository {
	return &RedisMailRepository{client: client, key: MailCollectionKey}
}

// LoadAll reads the collection blob. An absent key yields an empty collection.
func (r *RedisMailRepository) LoadAll(ctx context.Context) ([]*types.Mail, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*types.Mail{}, nil
		}
		return nil, err
	}
	var mails []*types.Mail
	if err := json.Unmarshal(data, &mails); err != nil {
		level.Error(global.Logger).Log("msg", "stored mail collection is not decodable", "err", err)
		return nil, types.ErrCorruptState
	}
	if mails == nil {
		mails = []*types.Mail{}
	}
	return mails, nil
}

// SaveAll overwrites the collection blob. No lock, no version check: the
// last writer wins.
func (r *RedisMailRepository) SaveAll(ctx context.Context, mails []*types.Mail) error {
	data, err := json.Marshal(mails)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		level.Error(global.Logger).Log("msg", "failed to save mail collection", "err", err)
		return err
	}
	return nil
}
