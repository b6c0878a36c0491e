package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tri-protocol-cli/internal/application"
	"github.com/bnema/tri-protocol-cli/internal/domain"
)

func TestRunSpinnerModelQuitsWithResults(t *testing.T) {
	model := newRunSpinnerModel("Running echo...", nil)
	assert.Contains(t, model.View(), "Running echo...")

	results := []application.Result{{Protocol: domain.ProtocolJSON, Operation: domain.OperationEcho}}
	next, cmd := model.Update(runDoneMsg{results: results})

	final, ok := next.(runSpinnerModel)
	require.True(t, ok)
	assert.True(t, final.done)
	assert.Equal(t, results, final.results)
	assert.Empty(t, final.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestRunSpinnerModelKeepsSpinningUntilDone(t *testing.T) {
	model := newRunSpinnerModel("Running status...", nil)

	next, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, next.(runSpinnerModel).done)

	next, cmd = model.Update(spinner.TickMsg{})
	assert.NotNil(t, cmd)
	assert.False(t, next.(runSpinnerModel).done)
}

func TestConsoleHoldsOutputUntilRelease(t *testing.T) {
	var out bytes.Buffer
	c := &console{w: &out}

	_, _ = fmt.Fprint(c, "before ")
	release := c.hold()
	_, _ = fmt.Fprint(c, "held")
	assert.Equal(t, "before ", out.String())

	require.NoError(t, release())
	assert.Equal(t, "before held", out.String())

	_, _ = fmt.Fprint(c, " after")
	assert.Equal(t, "before held after", out.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "stderr"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	assert.False(t, isTerminal(f))
}
