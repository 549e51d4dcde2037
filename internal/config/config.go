package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	ListenAddr      string        `toml:"listen-addr"`
	ReadTimeout     time.Duration `toml:"read-timeout"`
	WriteTimeout    time.Duration `toml:"write-timeout"`
	IdleTimeout     time.Duration `toml:"idle-timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown-timeout"`
}

type MongoConfig struct {
	URI            string        `toml:"uri"`
	Database       string        `toml:"database"`
	Collection     string        `toml:"collection"`
	ConnectTimeout time.Duration `toml:"connect-timeout"`
}

type RedisConfig struct {
	Addr string `toml:"addr"`
	DB   int    `toml:"db"`
}

type Config struct {
	LogLevel       string        `toml:"log-level"`
	LogFile        string        `toml:"log-file"`
	AllowedOrigins []string      `toml:"allowed-origins"`
	ServerConfig   *ServerConfig `toml:"server"`
	MongoConfig    *MongoConfig  `toml:"mongo"`
	RedisConfig    *RedisConfig  `toml:"redis"`
}

func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogFile:  "stdout",
		// The dev origins the reference web client runs on.
		AllowedOrigins: []string{
			"http://localhost:5173",
			"https://localhost:5173",
			"http://127.0.0.1:5173",
			"https://127.0.0.1:5173",
		},
		ServerConfig: &ServerConfig{
			ListenAddr:      ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		MongoConfig: &MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "canteen",
			Collection:     "orders",
			ConnectTimeout: 10 * time.Second,
		},
		RedisConfig: &RedisConfig{
			Addr: "localhost:6379",
			DB:   0,
		},
	}
}

// Load applies the TOML file at path over the defaults. An empty path runs
// on defaults alone.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
