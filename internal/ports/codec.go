package ports

import (
	"bufio"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
)

// Codec maps the uniform request/response model onto one wire protocol.
type Codec interface {
	Protocol() domain.Protocol
	Encode(req domain.Request) ([]byte, error)
	// Frame wraps an encoded payload for transmission.
	Frame(payload []byte) []byte
	// Deframe blocks until one complete response frame has been read.
	Deframe(r *bufio.Reader) ([]byte, error)
	Decode(frame []byte) (domain.Response, error)
	Render(resp domain.Response) []string
	RenderElapsed(elapsed time.Duration) string
}
