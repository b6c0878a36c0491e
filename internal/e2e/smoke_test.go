package e2e

import (
	"bufio"
	"bytes"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stringsAddr := serveLines(t, func(line string) string {
		if strings.HasPrefix(line, "AUTH|") {
			return "OK|token=smoke|FIM\n"
		}
		return "OK|timestamp=2025-03-01T10:00:00|FIM\n"
	})
	jsonAddr := serveLines(t, func(line string) string {
		if strings.Contains(line, `"autenticar"`) {
			return `{"status":"sucesso","token":"smoke"}` + "\n"
		}
		return `{"status":"sucesso","timestamp":"2025-03-01T10:00:00"}` + "\n"
	})
	require.NoError(t, writeConfig(home, stringsAddr, jsonAddr))

	stdout, stderr, err := runTPC(t, binaryPath, home, "run", "timestamp", "--protocol", "strings,json", "--strict")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "TIMESTAMP (STRINGS)")
	assert.Contains(t, stdout, "TIMESTAMP (JSON)")

	stringsLog, err := os.ReadFile(filepath.Join(home, "strings.log"))
	require.NoError(t, err)
	assert.Contains(t, string(stringsLog), "autenticar=OK|token=smoke|FIM\n")

	jsonLog, err := os.ReadFile(filepath.Join(home, "json.log"))
	require.NoError(t, err)
	assert.Contains(t, string(jsonLog), `autenticacao={"status":"sucesso","token":"smoke"}`)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tpc-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tpc")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tpc binary: %s", string(output))
	return binaryPath
}

func runTPC(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)
	cmd.Dir = home

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

// serveLines accepts a single connection and answers each request line.
func serveLines(t *testing.T, reply func(line string) string) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			_, _ = conn.Write([]byte(reply(scanner.Text())))
		}
	}()

	return ln.Addr().String()
}

func writeConfig(home, stringsAddr, jsonAddr string) error {
	configDir := filepath.Join(home, ".tpc")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	config := fmt.Sprintf(`[protocols.strings]
addr = %q
timeout = "2s"
log_file = %q

[protocols.json]
addr = %q
timeout = "2s"
log_file = %q
`, stringsAddr, filepath.Join(home, "strings.log"), jsonAddr, filepath.Join(home, "json.log"))

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644)
}
