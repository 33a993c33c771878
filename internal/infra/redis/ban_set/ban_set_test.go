package infra_redis_ban_set

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis"
	"github.com/humanbelnik/wordchain/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type BanSetInfraUnitSuite struct {
	suite.Suite
}

func initDriver(t provider.T) (*miniredis.Miniredis, *Driver) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	return server, New(client, "banned")
}

func (s *BanSetInfraUnitSuite) TestIsBanned(t provider.T) {
	ctx := context.Background()

	t.Run("seeded externally", func(t provider.T) {
		t.Parallel()
		server, driver := initDriver(t)
		_, err := server.SAdd("banned", "mallory")
		require.NoError(t, err)

		banned, err := driver.IsBanned(ctx, "mallory")
		assert.NoError(t, err)
		assert.True(t, banned)

		banned, err = driver.IsBanned(ctx, "alice")
		assert.NoError(t, err)
		assert.False(t, banned)
	})

	t.Run("ban and unban", func(t provider.T) {
		t.Parallel()
		_, driver := initDriver(t)

		require.NoError(t, driver.Ban(ctx, "bob"))
		banned, err := driver.IsBanned(ctx, "bob")
		assert.NoError(t, err)
		assert.True(t, banned)

		require.NoError(t, driver.Unban(ctx, "bob"))
		banned, err = driver.IsBanned(ctx, "bob")
		assert.NoError(t, err)
		assert.False(t, banned)
	})

	t.Run("empty id is never banned", func(t provider.T) {
		t.Parallel()
		_, driver := initDriver(t)

		banned, err := driver.IsBanned(ctx, model.EmptyPlayerID)
		assert.NoError(t, err)
		assert.False(t, banned)
	})
}

func TestBanSetInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(BanSetInfraUnitSuite))
}
