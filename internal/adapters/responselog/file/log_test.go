package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendWritesKeyValueLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "respostas.txt")
	log := NewLog(path, Options{MaxSizeMB: 1})

	require.NoError(t, log.Append("autenticar", "OK|token=abc123|FIM"))
	require.NoError(t, log.Append("logout", "OK|FIM"))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "autenticar=OK|token=abc123|FIM\nlogout=OK|FIM\n", string(data))
}

func TestAppendKeepsExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "respostas.txt")
	require.NoError(t, os.WriteFile(path, []byte("soma=OK|resultado=6|FIM\n"), 0o644))

	log := NewLog(path, Options{})
	require.NoError(t, log.Append("echo", `{"status":"ok"}`))
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "soma=OK|resultado=6|FIM\necho={\"status\":\"ok\"}\n", string(data))
	assert.Equal(t, path, log.Path())
}
