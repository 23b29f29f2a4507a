package global

import (
	"fmt"
	"os"

	"github.com/go-redis/redis_rate/v10"
	"gopkg.in/yaml.v3"
)

// Conf global config
var Conf Config

// Global rate limiter (nil when rate limiting is disabled)
var RateLimiter *redis_rate.Limiter

type Config struct {
	Host       string           `yaml:"host"`
	Port       int              `yaml:"port"`
	Mode       string           `yaml:"mode"` // debug or release
	Version    string           `yaml:"version"`
	Redis      RedisConfig      `yaml:"redis"`
	Users      []UserConfig     `yaml:"users"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
	RateLimit  RateLimitConfig  `yaml:"ratelimit"`
	Stats      StatsConfig      `yaml:"stats"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// UserConfig is one entry of the static user directory
type UserConfig struct {
	Username string `yaml:"username"`
	Name     string `yaml:"name"`
}

type PrometheusConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerSecond int  `yaml:"requestsPerSecond"`
}

type StatsConfig struct {
	// cron spec for the periodic collection stats log entry, e.g. "@every 1m".
	// Empty disables the job.
	Schedule string `yaml:"schedule"`
}

// LoadConfig reads a yaml configuration file into Conf and applies defaults.
func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	applyDefaults(&conf)
	Conf = conf
	return nil
}

func applyDefaults(conf *Config) {
	if conf.Host == "" {
		conf.Host = "localhost"
	}
	if conf.Port == 0 {
		conf.Port = 8080
	}
	if conf.Mode == "" {
		conf.Mode = "release"
	}
	if conf.Redis.Host == "" {
		conf.Redis.Host = "localhost"
	}
	if conf.Redis.Port == 0 {
		conf.Redis.Port = 6379
	}
	if conf.RateLimit.RequestsPerSecond == 0 {
		conf.RateLimit.RequestsPerSecond = 5
	}
	// stock directory when no users are configured
	if len(conf.Users) == 0 {
		conf.Users = []UserConfig{
			{Username: "Q38", Name: "Nate"},
			{Username: "Q09", Name: "Nadh"},
		}
	}
}
