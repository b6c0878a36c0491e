package tcp

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialConnectsToListener(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	accepted := make(chan struct{})
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			_ = conn.Close()
		}
		close(accepted)
	}()

	conn, err := NewDialer(time.Second).Dial(context.Background(), ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, conn.Close())
	<-accepted
}

func TestDialReportsRefusedConnection(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, err = Dialer{}.Dial(context.Background(), addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial "+addr)
}
