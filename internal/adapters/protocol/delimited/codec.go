package delimited

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/ports"
)

const (
	separator     = "|"
	terminator    = "FIM"
	sentinel      = separator + terminator
	readChunkSize = 4096

	statusOK = "OK"
	sumParam = "nums"
)

// Codec speaks the pipe-delimited protocol: fields joined by "|", closed by a
// literal "|FIM" and a newline on send.
type Codec struct{}

var _ ports.Codec = Codec{}

func New() Codec {
	return Codec{}
}

func (Codec) Protocol() domain.Protocol {
	return domain.Protocol{Name: domain.ProtocolStrings, Label: "STRINGS", AuthLogKey: "autenticar"}
}

func (Codec) Encode(req domain.Request) ([]byte, error) {
	var fields []string
	switch req.Kind {
	case domain.RequestAuth:
		fields = []string{"AUTH", "aluno_id=" + req.ClientID, "TIMESTAMP=" + req.ClientTimestamp}
	case domain.RequestOperation:
		fields = []string{"OP", req.Token, "operacao=" + string(req.Operation)}
		if req.Sum != nil {
			// The number list goes out exactly as the caller typed it.
			raw := req.Sum.Raw
			if raw == "" && req.Sum.Numbers != nil {
				raw = domain.JoinNumbers(req.Sum.Numbers)
			}
			fields = append(fields, sumParam+"="+raw)
		}
		for _, p := range req.Params {
			fields = append(fields, p.Name+"="+p.Value)
		}
	case domain.RequestInfo:
		fields = []string{"INFO", req.Token, "tipo=" + req.InfoType}
	case domain.RequestLogout:
		fields = []string{"LOGOUT", req.Token}
	default:
		return nil, fmt.Errorf("unsupported request kind %q", req.Kind)
	}

	fields = append(fields, terminator)
	return []byte(strings.Join(fields, separator)), nil
}

func (Codec) Frame(payload []byte) []byte {
	framed := make([]byte, 0, len(payload)+1)
	framed = append(framed, payload...)
	return append(framed, '\n')
}

// Deframe reads until the accumulated bytes contain the "|FIM" sentinel.
func (Codec) Deframe(r *bufio.Reader) ([]byte, error) {
	var buf []byte
	chunk := make([]byte, readChunkSize)
	for {
		n, err := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if bytes.Contains(buf, []byte(sentinel)) {
			return buf, nil
		}
		if err == nil {
			continue
		}

		if errors.Is(err, io.EOF) {
			if len(bytes.TrimSpace(buf)) == 0 {
				return nil, domain.NewNetworkError("receive response", domain.ErrEmptyResponse)
			}
			return nil, domain.NewProtocolError("receive response", fmt.Errorf("%w: %q", domain.ErrMissingSentinel, buf))
		}
		return nil, domain.NewNetworkError("receive response", err)
	}
}

func (Codec) Decode(frame []byte) (domain.Response, error) {
	raw := strings.TrimSpace(string(frame))
	if !strings.Contains(raw, sentinel) {
		return domain.Response{}, domain.NewProtocolError("decode response", fmt.Errorf("%w: %q", domain.ErrMissingSentinel, raw))
	}
	// Only a trailing sentinel is stripped.
	body := strings.TrimSuffix(raw, sentinel)

	parts := strings.Split(body, separator)
	resp := domain.Response{
		Kind:   domain.ResponseError,
		Status: parts[0],
		Raw:    raw,
	}
	if strings.EqualFold(resp.Status, statusOK) {
		resp.Kind = domain.ResponseOK
	}

	for _, part := range parts[1:] {
		if key, value, ok := strings.Cut(part, "="); ok {
			resp.Fields = append(resp.Fields, domain.Field{Key: key, Value: value})
			continue
		}
		resp.Fields = append(resp.Fields, domain.Field{Value: part})
	}

	// The token travels in the first field, keyed or bare.
	if len(resp.Fields) > 0 {
		resp.Token = resp.Fields[0].Value
	}
	if message, ok := resp.Lookup("mensagem"); ok {
		resp.Message = message
	}
	if ts, ok := resp.Lookup("timestamp"); ok {
		resp.Timestamp = ts
	}

	return resp, nil
}

func (Codec) Render(resp domain.Response) []string {
	lines := []string{"Status: " + resp.Status}
	for _, f := range resp.Fields {
		if f.Key == "" {
			lines = append(lines, f.Value)
			continue
		}
		lines = append(lines, f.Key+": "+f.Value)
	}
	return lines
}

func (Codec) RenderElapsed(elapsed time.Duration) string {
	return fmt.Sprintf("Tempo (ms): %.2f", domain.ElapsedMillis(elapsed))
}
