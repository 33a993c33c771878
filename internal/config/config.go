package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
	// RW | RO
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Game struct {
	LobbyWindow          time.Duration
	LowThreshold         int
	HighThreshold        int
	NormalLimit          time.Duration
	ReducedLimit         time.Duration
	SuddenDeathLimit     time.Duration
	Countdown            time.Duration
	MaxConsecutiveErrors int
}

type Words struct {
	CorpusURL         string
	Locale            string
	DictionaryURL     string
	DictionaryEnabled bool
	// memory | redis
	CacheBackend string
}

type History struct {
	Enabled bool
}

type Session struct {
	TTL time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Game     Game
	Words    Words
	History  History
	Session  Session
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := FromEnv()

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

// FromEnv builds the config from the current process environment.
func FromEnv() *Config {
	return &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Game:     *newGame(),
		Words:    *newWords(),
		History:  *newHistory(),
		Session:  *newSession(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
		Mode: getenv("HTTP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "wordchain"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newGame() *Game {
	return &Game{
		LobbyWindow:          getduration("GAME_LOBBY_WINDOW", 120*time.Second),
		LowThreshold:         getint("GAME_LOW_THRESHOLD", 50),
		HighThreshold:        getint("GAME_HIGH_THRESHOLD", 100),
		NormalLimit:          getduration("GAME_NORMAL_LIMIT", 60*time.Second),
		ReducedLimit:         getduration("GAME_REDUCED_LIMIT", 30*time.Second),
		SuddenDeathLimit:     getduration("GAME_SUDDEN_DEATH_LIMIT", 15*time.Second),
		Countdown:            getduration("GAME_COUNTDOWN", 10*time.Second),
		MaxConsecutiveErrors: getint("GAME_MAX_CONSECUTIVE_ERRORS", 5),
	}
}

func newWords() *Words {
	return &Words{
		CorpusURL:         getenv("WORDS_CORPUS_URL", "https://raw.githubusercontent.com/fserb/pt-br/master"),
		Locale:            getenv("WORDS_LOCALE", "pt-br"),
		DictionaryURL:     getenv("WORDS_DICTIONARY_URL", "https://www.dicio.com.br"),
		DictionaryEnabled: getbool("WORDS_DICTIONARY_ENABLED", true),
		CacheBackend:      getenv("WORDS_CACHE_BACKEND", "memory"),
	}
}

func newHistory() *History {
	return &History{
		Enabled: getbool("HISTORY_ENABLED", false),
	}
}

func newSession() *Session {
	return &Session{
		TTL: getduration("SESSION_TTL", 24*time.Hour),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getint(key string, defaultValue int) int {
	raw := getenv(key, strconv.Itoa(defaultValue))
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s is not an integer. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getbool(key string, defaultValue bool) bool {
	raw := getenv(key, strconv.FormatBool(defaultValue))
	val, err := strconv.ParseBool(raw)
	if err != nil {
		fmt.Printf("%s %s is not a boolean. Using default value %t\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getduration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, defaultValue.String())
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s is not a duration. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
