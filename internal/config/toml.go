package config

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

type tomlEndpoint struct {
	Addr    string `toml:"addr"`
	Timeout string `toml:"timeout"`
	LogFile string `toml:"log_file"`
}

type tomlFile struct {
	Client struct {
		ID string `toml:"id"`
	} `toml:"client"`
	Protocols struct {
		Strings  tomlEndpoint `toml:"strings"`
		JSON     tomlEndpoint `toml:"json"`
		Protobuf tomlEndpoint `toml:"protobuf"`
	} `toml:"protocols"`
	ResponseLog struct {
		MaxSizeMB  int  `toml:"max_size_mb"`
		MaxBackups int  `toml:"max_backups"`
		Compress   bool `toml:"compress"`
	} `toml:"response_log"`
	Logging struct {
		Level  string `toml:"level"`
		Format string `toml:"format"`
		File   string `toml:"file"`
	} `toml:"logging"`
}

// MarshalTOML renders c in the same layout Load reads, with durations
// written as Go duration strings.
func (c Config) MarshalTOML() ([]byte, error) {
	var file tomlFile
	file.Client.ID = c.Client.ID
	file.Protocols.Strings = toTOMLEndpoint(c.Protocols.Strings)
	file.Protocols.JSON = toTOMLEndpoint(c.Protocols.JSON)
	file.Protocols.Protobuf = toTOMLEndpoint(c.Protocols.Protobuf)
	file.ResponseLog.MaxSizeMB = c.ResponseLog.MaxSizeMB
	file.ResponseLog.MaxBackups = c.ResponseLog.MaxBackups
	file.ResponseLog.Compress = c.ResponseLog.Compress
	file.Logging.Level = c.Logging.Level
	file.Logging.Format = c.Logging.Format
	file.Logging.File = c.Logging.File

	data, err := toml.Marshal(file)
	if err != nil {
		return nil, fmt.Errorf("encode config toml: %w", err)
	}
	return data, nil
}

func toTOMLEndpoint(e EndpointConfig) tomlEndpoint {
	return tomlEndpoint{Addr: e.Addr, Timeout: e.Timeout.String(), LogFile: e.LogFile}
}
