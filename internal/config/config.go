package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Server is the process configuration, read from the environment.
type Server struct {
	Addr        string `env:"ATELIER_ADDR" envDefault:":8091"`
	DBPath      string `env:"ATELIER_DB" envDefault:"atelier.db"`
	Slot        string `env:"ATELIER_SLOT" envDefault:"default"`
	BalancePath string `env:"ATELIER_BALANCE"`
}

// LoadServer parses the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadBalance returns the default balance overlaid with the yaml file at
// path. An empty path returns the defaults unchanged.
func LoadBalance(path string) (Balance, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Balance{}, fmt.Errorf("parse balance file: %w", err)
	}
	return cfg, nil
}
