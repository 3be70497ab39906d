package config

import (
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdemtable-server/internal/util"
)

// Config provides configuration for the hold'em table server
type Config struct {
	loaded     bool
	ListenAddr string `yaml:"listenAddr" envconfig:"listen_addr"`
	Advisor    struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeoutSeconds" envconfig:"timeout_seconds"`
	}
	Game struct {
		MaxPlayers    int `yaml:"maxPlayers" envconfig:"max_players"`
		StartingStack int `yaml:"startingStack" envconfig:"starting_stack"`
		SmallBlind    int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind      int `yaml:"bigBlind" envconfig:"big_blind"`
	}
	Log struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// AdvisorTimeout returns the advisor request timeout as a duration
func (c Config) AdvisorTimeout() time.Duration {
	return time.Duration(c.Advisor.TimeoutSeconds) * time.Second
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults and environment
// variables still apply.
func Load() error {
	config = defaults()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.ListenAddr = ":8000"
	c.Advisor.URL = "http://127.0.0.1:8001"
	c.Advisor.TimeoutSeconds = 10
	c.Game.MaxPlayers = 6
	c.Game.StartingStack = 1000
	c.Game.SmallBlind = 10
	c.Game.BigBlind = 20
	c.Log.Level = "info"

	return c
}
