package integrationtest

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	ws_channel "github.com/humanbelnik/wordchain/internal/delivery/ws/channel"
	infra_memory_verdict_cache "github.com/humanbelnik/wordchain/internal/infra/memory/verdict_cache"
	infra_pg_init "github.com/humanbelnik/wordchain/internal/infra/postgres/init"
	infra_postgres_match "github.com/humanbelnik/wordchain/internal/infra/postgres/match"
	"github.com/humanbelnik/wordchain/internal/model"
	service_word "github.com/humanbelnik/wordchain/internal/service/word"
	usecase_match "github.com/humanbelnik/wordchain/internal/usecase/match"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type UsecaseMatchIntegrationSuite struct {
	suite.Suite
}

type identitySource struct{}

func (identitySource) Int63() int64 { return math.MaxInt64 }
func (identitySource) Seed(int64)   {}

// scriptedInput replays queued lines per player and times out once a queue
// runs dry.
type scriptedInput struct {
	mu    sync.Mutex
	lines map[model.PlayerID][]string
}

func (s *scriptedInput) script(lines map[model.PlayerID][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
}

func (s *scriptedInput) NextQualifyingMessage(ctx context.Context, channelID model.ChannelID, author model.PlayerID, deadline time.Time) (model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.lines[author]
	if len(queue) == 0 {
		return model.Message{}, usecase_match.ErrTimeout
	}
	s.lines[author] = queue[1:]
	return model.Message{ChannelID: channelID, Author: author, Text: queue[0]}, nil
}

func initMatchUsecase(t provider.T) (*usecase_match.Usecase, *scriptedInput) {
	cfg := getConfig(t)

	history := infra_postgres_match.New(infra_pg_init.MustEstablishConn(cfg.Postgres))
	require.NoError(t, history.Migrate(context.Background()))

	corpus := service_word.BuildCorpus([]string{"casa", "sapo", "posto", "tomate"})
	validator := service_word.New(infra_memory_verdict_cache.New(), corpus)

	in := &scriptedInput{}
	uc := usecase_match.New(in, validator, ws_channel.NewHub(), history,
		usecase_match.WithCountdown(0),
		usecase_match.WithRand(rand.New(identitySource{})),
	)
	return uc, in
}

func (s *UsecaseMatchIntegrationSuite) TestIntegrationMatchIsPersisted(t provider.T) {
	uc, in := initMatchUsecase(t)
	ctx := context.Background()
	alice := model.Player{ID: "it-alice", Name: "Alice"}
	bob := model.Player{ID: "it-bob", Name: "Bob"}

	in.script(map[model.PlayerID][]string{
		alice.ID: {"casa", "posto"},
		bob.ID:   {"sapo"},
	})

	summary, err := uc.Run(ctx, "it-channel", []model.Player{alice, bob})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, summary.Winner.ID)
	assert.Equal(t, 3, summary.TotalWords)

	stored, err := uc.Summary(ctx, summary.MatchID)
	require.NoError(t, err)
	assert.Equal(t, summary.Winner.ID, stored.Winner.ID)
	assert.Equal(t, summary.TotalWords, stored.TotalWords)
	require.Len(t, stored.Ranking, 2)
	assert.Equal(t, []string{"casa", "posto"}, stored.Ranking[0].Words)
	require.Len(t, stored.Eliminations, 1)
	assert.Equal(t, model.ReasonTimeout, stored.Eliminations[0].Reason)

	history, err := uc.PlayerHistory(ctx, bob.ID, 1)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, summary.MatchID, history[0].MatchID)
}

func TestMatchIntegrationSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseMatchIntegrationSuite))
}
