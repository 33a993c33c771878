package infra_redis_verdict_cache

import (
	"context"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/wordchain/internal/model"
)

// Driver keeps verdicts in two redis sets, <key>:valid and <key>:invalid,
// shared by every process pointed at the same redis.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Lookup(ctx context.Context, word string) (model.Verdict, error) {
	valid, err := d.client.SIsMember(d.validKey(), word).Result()
	if err != nil {
		return model.VerdictUnknown, err
	}
	if valid {
		return model.VerdictValid, nil
	}

	invalid, err := d.client.SIsMember(d.invalidKey(), word).Result()
	if err != nil {
		return model.VerdictUnknown, err
	}
	if invalid {
		return model.VerdictInvalid, nil
	}
	return model.VerdictUnknown, nil
}

func (d *Driver) Store(ctx context.Context, word string, verdict model.Verdict) error {
	var key string
	switch verdict {
	case model.VerdictValid:
		key = d.validKey()
	case model.VerdictInvalid:
		key = d.invalidKey()
	default:
		return nil
	}

	return d.client.SAdd(key, word).Err()
}

func (d *Driver) validKey() string {
	return d.key + ":valid"
}

func (d *Driver) invalidKey() string {
	return d.key + ":invalid"
}
