package tcp

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/ports"
)

const defaultConnectTimeout = 5 * time.Second

type Dialer struct {
	ConnectTimeout time.Duration
}

var _ ports.Dialer = Dialer{}

func NewDialer(connectTimeout time.Duration) Dialer {
	return Dialer{ConnectTimeout: connectTimeout}
}

func (d Dialer) Dial(ctx context.Context, addr string) (net.Conn, error) {
	timeout := d.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return conn, nil
}
