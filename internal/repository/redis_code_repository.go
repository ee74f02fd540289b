package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/samaladyasa/spice-and-soul-backend/internal/domain"
)

const codeKeyPrefix = "reset_code:"

type redisCodeRepository struct {
	client *redis.Client
}

// NewRedisCodeRepository returns a Redis-backed code store. The record is
// stored as JSON under reset_code:<email> with a TTL matching the code
// expiry, so Redis evicts stale codes on its own.
func NewRedisCodeRepository(client *redis.Client) CodeRepository {
	return &redisCodeRepository{client: client}
}

func (r *redisCodeRepository) Save(ctx context.Context, code *domain.VerificationCode) error {
	code.Email = domain.NormalizeEmail(code.Email)
	payload, err := json.Marshal(code)
	if err != nil {
		return err
	}

	ttl := time.Until(time.Unix(code.Expiry, 0))
	if ttl <= 0 {
		ttl = time.Second
	}
	return r.client.Set(ctx, codeKeyPrefix+code.Email, payload, ttl).Err()
}

func (r *redisCodeRepository) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	payload, err := r.client.Get(ctx, codeKeyPrefix+domain.NormalizeEmail(email)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var code domain.VerificationCode
	if err := json.Unmarshal(payload, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (r *redisCodeRepository) Delete(ctx context.Context, email string) error {
	return r.client.Del(ctx, codeKeyPrefix+domain.NormalizeEmail(email)).Err()
}

func (r *redisCodeRepository) List(ctx context.Context) ([]domain.VerificationCode, error) {
	var codes []domain.VerificationCode
	iter := r.client.Scan(ctx, 0, codeKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		payload, err := r.client.Get(ctx, iter.Val()).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, err
		}
		var code domain.VerificationCode
		if err := json.Unmarshal(payload, &code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}
