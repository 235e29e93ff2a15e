package config

import (
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config holds all bot settings, loaded from environment variables.
type Config struct {
	DiscordToken string `env:"DISCORD_TOKEN,notEmpty"`
	BotOwnerID   string `env:"BOT_OWNER_ID"`

	UseRedis   bool   `env:"USE_REDIS" envDefault:"false"`
	RedisURL   string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"data/groovebox.db"`

	DefaultVolume     int           `env:"DEFAULT_VOLUME" envDefault:"100"`
	MaxQueueSize      int           `env:"MAX_QUEUE_SIZE" envDefault:"500"`
	InactivityTimeout time.Duration `env:"INACTIVITY_TIMEOUT" envDefault:"300s"`

	RateLimitCommands int `env:"RATE_LIMIT_COMMANDS" envDefault:"20"`

	InitSlashCommands bool     `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	GuildBlacklist    []string `env:"GUILD_BLACKLIST" envSeparator:","`
}

var (
	current *Config
	once    sync.Once
)

// New parses the environment into a Config and applies bounds.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	return cfg, nil
}

// Current returns the process-wide Config, parsing the environment once.
// Parse errors at this point are fatal: the bot cannot run half-configured.
func Current() *Config {
	once.Do(func() {
		cfg, err := New()
		if err != nil {
			log.Fatal("[ERR] Failed to parse configuration: ", err)
		}
		current = cfg
	})
	return current
}

func (c *Config) clamp() {
	if c.DefaultVolume < 0 {
		c.DefaultVolume = 0
	}
	if c.DefaultVolume > 200 {
		c.DefaultVolume = 200
	}
	if c.MaxQueueSize < 1 {
		c.MaxQueueSize = 1
	}
	if c.InactivityTimeout < time.Minute {
		c.InactivityTimeout = time.Minute
	}
	if c.RateLimitCommands < 1 {
		c.RateLimitCommands = 1
	}
}
