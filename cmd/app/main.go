package main

import (
	_ "github.com/humanbelnik/wordchain/docs"
	"github.com/humanbelnik/wordchain/internal/app"
	"github.com/humanbelnik/wordchain/internal/config"
)

// @title           Wordchain API
// @version         1.0
// @description     Лобби, матчи и чат игры в слова
// @BasePath        /api/v1
// @securityDefinitions.apikey UserToken
// @in header
// @name X-user-token
func main() {
	app.Go(config.Load())
}
