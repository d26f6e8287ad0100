package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis             Redis  `yaml:"redis"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"arena.db"`
	Game              Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	// SessionTTL expires games nobody has touched for that long.
	SessionTTL       time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"30m"`
	ChallengeTimeout time.Duration `yaml:"challenge-timeout" env:"GAME_CHALLENGE_TIMEOUT" env-default:"60s"`
	LeaderboardSize  int           `yaml:"leaderboard-size" env:"GAME_LEADERBOARD_SIZE" env-default:"10"`
	// ArchiveTimeout bounds recording history, stats and the announcement of a finished game.
	ArchiveTimeout   time.Duration `yaml:"archive-timeout" env:"GAME_ARCHIVE_TIMEOUT" env-default:"10s"`
	Points           Points        `yaml:"points"`
}

type Points struct {
	Win  int `yaml:"win" env:"GAME_POINTS_WIN" env-default:"25"`
	Loss int `yaml:"loss" env:"GAME_POINTS_LOSS" env-default:"5"`
	Draw int `yaml:"draw" env:"GAME_POINTS_DRAW" env-default:"10"`
}

// For returns the points awarded for a result.
func (that Points) For(result entity.Result) int {
	switch result {
	case entity.ResultWin:
		return that.Win
	case entity.ResultLoss:
		return that.Loss
	case entity.ResultDraw:
		return that.Draw
	default:
		return 0
	}
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
