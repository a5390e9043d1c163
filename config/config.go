package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

const (
	CONFIG_FILE       string = "config.toml"
	LOCAL_CONFIG_FILE string = "config.local.toml"
)

// Interface for the application config object, implemented by the config
// structs of each component (services, cronjobs). Registered callbacks
// (e.g., logger initialization) are invoked via GlobalConfigCallback once
// the config is fully built.
type GlobalConfig interface {
	LoggerConfig() LoggerConfig
}

var GlobalConfigCallback ConfigCallback[GlobalConfig] = ConfigCallback[GlobalConfig]{}

type ConfigCallback[T any] struct {
	callbacks []func(T)
}

func (cc *ConfigCallback[T]) AddCallback(f func(T)) {
	cc.callbacks = append(cc.callbacks, f)
}

func (cc *ConfigCallback[T]) Call(config T) {
	for _, f := range cc.callbacks {
		f(config)
	}
}

type DBConfig struct {
	Host       string `toml:"host" envconfig:"DB_HOST"`
	Port       int    `toml:"port" envconfig:"DB_PORT"`
	Database   string `toml:"database" envconfig:"DB_DATABASE"`
	Username   string `toml:"username" envconfig:"DB_USERNAME"`
	Password   string `toml:"password" envconfig:"DB_PASSWORD"`
	LogQueries bool   `toml:"log_queries"`
}

type LoggerConfig struct {
	Level       string `toml:"level"` // valid values: DEBUG, INFO, WARN, ERROR
	File        string `toml:"file"`
	MaxFileSize int    `toml:"max_file_size"` // In megabytes
	Console     bool   `toml:"console"`
}

type MetricsConfig struct {
	PrometheusAddress string `toml:"prometheus_address" envconfig:"PROMETHEUS_ADDRESS"`
}

// Configuration of one EVM chain the journal contract is deployed on.
// Chains without a contract address are preview-only: drafts render
// against their skin but mints on them are rejected.
type ChainConfig struct {
	ChainID         int64  `toml:"chain_id"`
	Name            string `toml:"name"`
	EthRPCURL       string `toml:"eth_rpc_url"`
	ContractAddress string `toml:"contract_address"`
	GasLimit        uint64 `toml:"gas_limit"` // 0 uses node estimation
}

func (c ChainConfig) Contract() (common.Address, bool) {
	if c.ContractAddress == "" || !common.IsHexAddress(c.ContractAddress) {
		return common.Address{}, false
	}
	return common.HexToAddress(c.ContractAddress), true
}

type CronjobConfig struct {
	Enabled        bool `toml:"enabled"`
	TimeoutSeconds int  `toml:"timeout_seconds"`
	BatchSize      int  `toml:"batch_size"`
	// Expiry window given to thoughts returned to the ephemeral state,
	// 0 uses the minter default
	RetentionSeconds int `toml:"retention_seconds"`
}

// Signer for mint transactions. The private key is normally provided via
// the environment, never committed in a config file.
type SignerConfig struct {
	PrivateKey     string `toml:"private_key" envconfig:"SIGNER_PRIVATE_KEY"`
	PrivateKeyFile string `toml:"private_key_file" envconfig:"SIGNER_PRIVATE_KEY_FILE"`
}

func (s SignerConfig) GetPrivateKey() (string, error) {
	if s.PrivateKey != "" {
		return s.PrivateKey, nil
	}
	if s.PrivateKeyFile == "" {
		return "", nil
	}
	content, err := os.ReadFile(s.PrivateKeyFile)
	if err != nil {
		return "", errors.Wrap(err, "reading private key file")
	}
	return strings.TrimSpace(string(content)), nil
}

func ParseConfigFile(cfg interface{}, fileName string, allowMissing bool) error {
	content, err := os.ReadFile(fileName)
	if err != nil {
		if allowMissing {
			return nil
		}
		return fmt.Errorf("error opening config file: %w", err)
	}

	_, err = toml.Decode(string(content), cfg)
	if err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}
	return nil
}

func ReadEnv(cfg interface{}) error {
	err := envconfig.Process("", cfg)
	if err != nil {
		return fmt.Errorf("error reading env config: %w", err)
	}
	return nil
}
