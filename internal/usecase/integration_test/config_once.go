package integrationtest

import (
	"os"
	"sync"

	"github.com/humanbelnik/wordchain/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
)

const integrationEnv = "WORDCHAIN_INTEGRATION"

var (
	cfg     *config.Config
	cfgOnce sync.Once
)

func getConfig(t provider.T) *config.Config {
	if os.Getenv(integrationEnv) == "" {
		t.Skip(integrationEnv + " is not set")
	}

	cfgOnce.Do(func() {
		cfg = config.FromEnv()
	})
	return cfg
}
