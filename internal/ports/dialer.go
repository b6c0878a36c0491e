package ports

import (
	"context"
	"net"
)

type Dialer interface {
	Dial(ctx context.Context, addr string) (net.Conn, error)
}
