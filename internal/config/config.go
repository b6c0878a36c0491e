package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TPC"
	configDir  = ".tpc"
	configName = "config"
	configType = "toml"

	defaultHost     = "3.88.99.255"
	DefaultClientID = "554229"
)

type ClientConfig struct {
	ID string `mapstructure:"id"`
}

// EndpointConfig describes one protocol server and where its responses are logged.
type EndpointConfig struct {
	Addr    string        `mapstructure:"addr"`
	Timeout time.Duration `mapstructure:"timeout"`
	LogFile string        `mapstructure:"log_file"`
}

type ProtocolsConfig struct {
	Strings  EndpointConfig `mapstructure:"strings"`
	JSON     EndpointConfig `mapstructure:"json"`
	Protobuf EndpointConfig `mapstructure:"protobuf"`
}

// ResponseLogConfig controls rotation of the per-protocol response logs.
type ResponseLogConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	Compress   bool `mapstructure:"compress"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type Config struct {
	Client      ClientConfig      `mapstructure:"client"`
	Protocols   ProtocolsConfig   `mapstructure:"protocols"`
	ResponseLog ResponseLogConfig `mapstructure:"response_log"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// Load reads path (or $HOME/.tpc/config.toml when path is empty), then applies
// TPC_* environment overrides such as TPC_PROTOCOLS_JSON_ADDR. A missing
// default config file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.id", DefaultClientID)

	v.SetDefault("protocols.strings.addr", defaultHost+":8080")
	v.SetDefault("protocols.strings.timeout", 4*time.Second)
	v.SetDefault("protocols.strings.log_file", "respostas_trab_distribuidos_string.txt")

	v.SetDefault("protocols.json.addr", defaultHost+":8081")
	v.SetDefault("protocols.json.timeout", 4*time.Second)
	v.SetDefault("protocols.json.log_file", "respostas_trab_distribuidos_json.txt")

	v.SetDefault("protocols.protobuf.addr", defaultHost+":8082")
	v.SetDefault("protocols.protobuf.timeout", 5*time.Second)
	v.SetDefault("protocols.protobuf.log_file", "respostas_trab_distribuidos_protobuf.txt")

	v.SetDefault("response_log.max_size_mb", 10)
	v.SetDefault("response_log.max_backups", 3)
	v.SetDefault("response_log.compress", false)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "")
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Client.ID) == "" {
		return fmt.Errorf("client.id is required")
	}

	for _, name := range domain.Protocols() {
		endpoint, err := c.Endpoint(name)
		if err != nil {
			return err
		}
		if strings.TrimSpace(endpoint.Addr) == "" {
			return fmt.Errorf("protocols.%s.addr is required", name)
		}
		if endpoint.Timeout <= 0 {
			return fmt.Errorf("protocols.%s.timeout must be positive, got %s", name, endpoint.Timeout)
		}
		if strings.TrimSpace(endpoint.LogFile) == "" {
			return fmt.Errorf("protocols.%s.log_file is required", name)
		}
	}

	return nil
}

func (c Config) Endpoint(name domain.ProtocolName) (EndpointConfig, error) {
	switch name {
	case domain.ProtocolStrings:
		return c.Protocols.Strings, nil
	case domain.ProtocolJSON:
		return c.Protocols.JSON, nil
	case domain.ProtocolProtobuf:
		return c.Protocols.Protobuf, nil
	default:
		return EndpointConfig{}, fmt.Errorf("unsupported protocol %q", name)
	}
}
