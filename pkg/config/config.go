package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ukimsanov/Crypto-List/pkg/types"
)

type ServerConfig struct {
	Address string `yaml:"address"`
}

type ExchangeConfig struct {
	Name types.ExchangeName `yaml:"name"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Exchange ExchangeConfig `yaml:"exchange"`
}

func Default() *Config {
	return &Config{
		Server:   ServerConfig{Address: ":8000"},
		Exchange: ExchangeConfig{Name: types.ExchangeKraken},
	}
}

// Load reads a yaml config over the defaults. An empty path just returns
// the defaults.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config file")
	}

	if cfg.Server.Address == "" {
		cfg.Server.Address = Default().Server.Address
	}
	if cfg.Exchange.Name == "" {
		cfg.Exchange.Name = Default().Exchange.Name
	}

	return cfg, nil
}
