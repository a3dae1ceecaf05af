package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
)

// Ledger backends
const (
	BackendRPC    = "rpc"
	BackendMemory = "memory"
)

type ServerConfig struct {
	Port string `mapstructure:"port" yaml:"port"`
}

type ChainConfig struct {
	Backend         string        `mapstructure:"backend" yaml:"backend"`                   // rpc or memory
	RPCURL          string        `mapstructure:"rpc_url" yaml:"rpc_url"`                   // JSON-RPC endpoint of the node
	ChainID         int64         `mapstructure:"chain_id" yaml:"chain_id"`                 // Chain id used to sign transactions
	ContractAddress string        `mapstructure:"contract_address" yaml:"contract_address"` // Address of the deployed Tender contract
	ABIPath         string        `mapstructure:"abi_path" yaml:"abi_path"`                 // Hardhat artifact or raw ABI file. Empty uses the built-in ABI.
	ConfirmTimeout  time.Duration `mapstructure:"confirm_timeout" yaml:"confirm_timeout"`   // How long to wait for a transaction to be mined
	PollInterval    time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`       // Receipt polling interval
	DialAttempts    uint          `mapstructure:"dial_attempts" yaml:"dial_attempts"`       // Attempts to reach the node at startup
}

type WalletConfig struct {
	Keys        []string `mapstructure:"keys" yaml:"keys"`                 // Secret: hex private keys, first one is active
	DevAccounts int      `mapstructure:"dev_accounts" yaml:"dev_accounts"` // Random accounts generated for the memory backend
}

type OfficialConfig struct {
	Address string `mapstructure:"address" yaml:"address"` // Account allowed to create tenders and select winners
}

type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server"`
	Chain    ChainConfig    `mapstructure:"chain" yaml:"chain"`
	Wallet   WalletConfig   `mapstructure:"wallet" yaml:"wallet"`
	Official OfficialConfig `mapstructure:"official" yaml:"official"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// Load reads the config file at filePath, when it exists, and applies
// environment overrides on top of the defaults
func Load(filePath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if filePath != "" {
		v.SetConfigFile(filePath)
		if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("config: failed to read %s: %w", filePath, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	cfg.Wallet.Keys = splitKeys(cfg.Wallet.Keys)

	return cfg, nil
}

// Validate rejects configurations the service cannot start with
func (c *Config) Validate() error {
	var errs []error

	switch c.Chain.Backend {
	case BackendRPC:
		if c.Chain.RPCURL == "" {
			errs = append(errs, errors.New("chain.rpc_url is required for the rpc backend"))
		}
		if !common.IsHexAddress(c.Chain.ContractAddress) {
			errs = append(errs, fmt.Errorf("chain.contract_address %q is not a valid address", c.Chain.ContractAddress))
		}
		if len(c.Wallet.Keys) == 0 {
			errs = append(errs, errors.New("wallet.keys is required for the rpc backend"))
		}
		if c.Chain.ChainID <= 0 {
			errs = append(errs, fmt.Errorf("chain.chain_id must be positive, got %d", c.Chain.ChainID))
		}
	case BackendMemory:
		if len(c.Wallet.Keys) == 0 && c.Wallet.DevAccounts <= 0 {
			errs = append(errs, errors.New("wallet.keys or wallet.dev_accounts is required for the memory backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("chain.backend must be %q or %q, got %q", BackendRPC, BackendMemory, c.Chain.Backend))
	}

	if c.Official.Address != "" && !common.IsHexAddress(c.Official.Address) {
		errs = append(errs, fmt.Errorf("official.address %q is not a valid address", c.Official.Address))
	}
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}

	return errors.Join(errs...)
}

// ListenAddr returns the gin listen address for the configured port
func (c *Config) ListenAddr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("chain.backend", BackendRPC)
	v.SetDefault("chain.rpc_url", "http://127.0.0.1:8545/")
	v.SetDefault("chain.chain_id", 31337)
	v.SetDefault("chain.confirm_timeout", 2*time.Minute)
	v.SetDefault("chain.poll_interval", time.Second)
	v.SetDefault("chain.dial_attempts", 5)
	v.SetDefault("wallet.dev_accounts", 0)
	v.SetDefault("log.level", "info")
}

var (
	envBindings = map[string][]string{
		"server.port":            {"TENDER_SERVER_PORT", "PORT"},
		"chain.backend":          {"TENDER_CHAIN_BACKEND"},
		"chain.rpc_url":          {"TENDER_CHAIN_RPC_URL", "SEPOLIA_RPC_URL"},
		"chain.chain_id":         {"TENDER_CHAIN_ID"},
		"chain.contract_address": {"TENDER_CONTRACT_ADDRESS"},
		"chain.abi_path":         {"TENDER_ABI_PATH"},
		"chain.confirm_timeout":  {"TENDER_CONFIRM_TIMEOUT"},
		"chain.poll_interval":    {"TENDER_POLL_INTERVAL"},
		"chain.dial_attempts":    {"TENDER_DIAL_ATTEMPTS"},
		"wallet.keys":            {"TENDER_WALLET_KEYS", "SEPOLIA_PRIVATE_KEY"},
		"wallet.dev_accounts":    {"TENDER_DEV_ACCOUNTS"},
		"official.address":       {"TENDER_OFFICIAL_ADDRESS"},
		"log.level":              {"TENDER_LOG_LEVEL"},
	}
)

func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}

// splitKeys flattens comma separated entries and drops blanks
func splitKeys(raw []string) []string {
	keys := make([]string, 0, len(raw))
	for _, entry := range raw {
		for _, k := range strings.Split(entry, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
