package infra_redis_verdict_cache

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

type VerdictCacheInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	server *miniredis.Miniredis
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	server, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &resources{
		server: server,
		driver: New(client, "verdicts"),
		ctx:    context.Background(),
	}
}

func (s *VerdictCacheInfraUnitSuite) TestLookup(t provider.T) {
	t.Run("unknown word", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		verdict, err := r.driver.Lookup(r.ctx, "casa")
		assert.NoError(t, err)
		assert.Equal(t, model.VerdictUnknown, verdict)
	})

	t.Run("stored verdicts are read back", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		require.NoError(t, r.driver.Store(r.ctx, "casa", model.VerdictValid))
		require.NoError(t, r.driver.Store(r.ctx, "xyzq", model.VerdictInvalid))

		valid, err := r.driver.Lookup(r.ctx, "casa")
		assert.NoError(t, err)
		assert.Equal(t, model.VerdictValid, valid)

		invalid, err := r.driver.Lookup(r.ctx, "xyzq")
		assert.NoError(t, err)
		assert.Equal(t, model.VerdictInvalid, invalid)

		assert.True(t, r.server.Exists("verdicts:valid"))
		assert.True(t, r.server.Exists("verdicts:invalid"))
	})

	t.Run("unknown verdict is not stored", func(t provider.T) {
		t.Parallel()
		r := initResources(t)

		assert.NoError(t, r.driver.Store(r.ctx, "casa", model.VerdictUnknown))
		assert.False(t, r.server.Exists("verdicts:valid"))
		assert.False(t, r.server.Exists("verdicts:invalid"))
	})

	t.Run("redis unavailable", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.server.Close()

		_, err := r.driver.Lookup(r.ctx, "casa")
		assert.Error(t, err)
		assert.Error(t, r.driver.Store(r.ctx, "casa", model.VerdictValid))
	})
}

func TestVerdictCacheInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(VerdictCacheInfraUnitSuite))
}
