package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "554229", cfg.Client.ID)
	assert.Equal(t, EndpointConfig{Addr: "3.88.99.255:8080", Timeout: 4 * time.Second, LogFile: "respostas_trab_distribuidos_string.txt"}, cfg.Protocols.Strings)
	assert.Equal(t, EndpointConfig{Addr: "3.88.99.255:8081", Timeout: 4 * time.Second, LogFile: "respostas_trab_distribuidos_json.txt"}, cfg.Protocols.JSON)
	assert.Equal(t, EndpointConfig{Addr: "3.88.99.255:8082", Timeout: 5 * time.Second, LogFile: "respostas_trab_distribuidos_protobuf.txt"}, cfg.Protocols.Protobuf)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 10, cfg.ResponseLog.MaxSizeMB)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TPC_CLIENT_ID", "777")
	t.Setenv("TPC_PROTOCOLS_JSON_ADDR", "127.0.0.1:9001")
	t.Setenv("TPC_PROTOCOLS_PROTOBUF_TIMEOUT", "750ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "777", cfg.Client.ID)
	assert.Equal(t, "127.0.0.1:9001", cfg.Protocols.JSON.Addr)
	assert.Equal(t, 750*time.Millisecond, cfg.Protocols.Protobuf.Timeout)
}

func TestLoadFromHomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".tpc"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".tpc", "config.toml"), []byte(`
[protocols.strings]
addr = "localhost:7000"
timeout = "2s"

[logging]
level = "debug"
`), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.Protocols.Strings.Addr)
	assert.Equal(t, 2*time.Second, cfg.Protocols.Strings.Timeout)
	assert.Equal(t, "respostas_trab_distribuidos_string.txt", cfg.Protocols.Strings.LogFile)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidateRejectsBadEndpoints(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	broken := *cfg
	broken.Protocols.JSON.Timeout = 0
	assert.ErrorContains(t, broken.Validate(), "protocols.json.timeout must be positive")

	broken = *cfg
	broken.Protocols.Protobuf.Addr = " "
	assert.ErrorContains(t, broken.Validate(), "protocols.protobuf.addr is required")

	broken = *cfg
	broken.Client.ID = ""
	assert.ErrorContains(t, broken.Validate(), "client.id is required")
}

func TestEndpointByProtocol(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)

	endpoint, err := cfg.Endpoint(domain.ProtocolProtobuf)
	require.NoError(t, err)
	assert.Equal(t, "3.88.99.255:8082", endpoint.Addr)

	_, err = cfg.Endpoint("xml")
	require.Error(t, err)
}

func TestMarshalTOMLRoundTripsThroughLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Protocols.JSON.Addr = "localhost:9100"

	data, err := cfg.MarshalTOML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "protocols")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *cfg, *reloaded)
}
