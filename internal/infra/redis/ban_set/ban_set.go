package infra_redis_ban_set

import (
	"context"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/wordchain/internal/model"
)

// Driver reads the set of players banned from opening lobbies. The set is
// maintained by moderation tooling outside of this service.
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

func (d *Driver) IsBanned(ctx context.Context, player model.PlayerID) (bool, error) {
	if player == model.EmptyPlayerID {
		return false, nil
	}
	return d.client.SIsMember(d.key, string(player)).Result()
}

func (d *Driver) Ban(ctx context.Context, player model.PlayerID) error {
	return d.client.SAdd(d.key, string(player)).Err()
}

func (d *Driver) Unban(ctx context.Context, player model.PlayerID) error {
	return d.client.SRem(d.key, string(player)).Err()
}
