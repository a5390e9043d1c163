package config

import (
	"github.com/remivalade/MintMyMood/config"
)

type Config struct {
	DB       config.DBConfig      `toml:"db"`
	Logger   config.LoggerConfig  `toml:"logger"`
	Metrics  config.MetricsConfig `toml:"metrics"`
	Chains   []config.ChainConfig `toml:"chains"`
	Signer   config.SignerConfig  `toml:"signer"`
	Services ServicesConfig       `toml:"services"`

	ExpiryCronjob    config.CronjobConfig `toml:"expiry_cronjob"`
	ReconcileCronjob config.CronjobConfig `toml:"reconcile_cronjob"`
}

type ServicesConfig struct {
	Address string `toml:"address"`
	// Number of rendered preview cards kept in memory
	PreviewCacheSize int `toml:"preview_cache_size"`
}

func newConfig() *Config {
	return &Config{
		Services: ServicesConfig{
			Address:          "localhost:8000",
			PreviewCacheSize: 1000,
		},
	}
}

func (c Config) LoggerConfig() config.LoggerConfig {
	return c.Logger
}

func BuildConfig() (*Config, error) {
	cfg := newConfig()
	err := config.ParseConfigFile(cfg, config.CONFIG_FILE, false)
	if err != nil {
		return nil, err
	}
	err = config.ParseConfigFile(cfg, config.LOCAL_CONFIG_FILE, true)
	if err != nil {
		return nil, err
	}
	err = config.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
