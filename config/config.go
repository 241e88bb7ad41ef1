package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kagankarabayir/EV-Price-Estimator/core/metrics"
)

type Config struct {
	Server  ServerConfig   `json:"server"`
	Data    DataConfig     `json:"data"`
	Metrics metrics.Config `json:"metrics"`
}

// Default returns a configuration with all defaults applied, used when no
// config file is present.
func Default() *Config {
	var cfg Config
	cfg.Server.SetDefaults()
	cfg.Data.SetDefaults()
	cfg.Metrics.SetDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides. The callback maps EV_SERVER__ADDR to
	// server.addr; the provider delimiter must match the koanf one for the
	// override to traverse into the section.
	if err := k.Load(env.Provider("EV_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ev_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Server.SetDefaults()
	cfg.Data.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Data.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
