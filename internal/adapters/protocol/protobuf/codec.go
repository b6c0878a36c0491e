package protobuf

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/adapters/protocol/protobuf/mensagens"
	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/ports"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

const (
	headerSize   = 4
	maxFrameSize = 16 << 20

	sumParam = "numeros"
	tokenKey = "token"
)

// Codec speaks length-prefixed protobuf: a 4-byte big-endian payload length
// followed by a serialized Requisicao or Resposta.
type Codec struct{}

var _ ports.Codec = (*Codec)(nil)

func New() *Codec {
	return &Codec{}
}

func (c *Codec) Protocol() domain.Protocol {
	return domain.Protocol{Name: domain.ProtocolProtobuf, Label: "PROTOBUF", AuthLogKey: "autenticacao"}
}

func (c *Codec) Encode(req domain.Request) ([]byte, error) {
	msg := &mensagens.Requisicao{}

	switch req.Kind {
	case domain.RequestAuth:
		msg.Conteudo = &mensagens.Requisicao_Auth{Auth: &mensagens.Auth{
			AlunoId:          req.ClientID,
			TimestampCliente: req.ClientTimestamp,
		}}
	case domain.RequestOperation:
		op := &mensagens.Operacao{
			Token:      req.Token,
			Operacao:   string(req.Operation),
			Parametros: make(map[string]string, len(req.Params)+1),
		}
		if req.Sum != nil {
			numbers, err := req.Sum.Parsed()
			if err != nil {
				return nil, fmt.Errorf("parse sum numbers: %w", err)
			}
			op.Parametros[sumParam] = domain.JoinNumbers(numbers)
		}
		for _, p := range req.Params {
			op.Parametros[p.Name] = p.Value
		}
		msg.Conteudo = &mensagens.Requisicao_Operacao{Operacao: op}
	case domain.RequestInfo:
		// Info is the one request sent without a token.
		msg.Conteudo = &mensagens.Requisicao_Info{Info: &mensagens.Info{Tipo: req.InfoType}}
	case domain.RequestLogout:
		msg.Conteudo = &mensagens.Requisicao_Logout{Logout: &mensagens.Logout{Token: req.Token}}
	default:
		return nil, fmt.Errorf("unsupported request kind %q", req.Kind)
	}

	payload, err := proto.MarshalOptions{Deterministic: true}.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", req.Kind, err)
	}
	return payload, nil
}

func (c *Codec) Frame(payload []byte) []byte {
	framed := make([]byte, 0, headerSize+len(payload))
	framed = binary.BigEndian.AppendUint32(framed, uint32(len(payload)))
	return append(framed, payload...)
}

// Deframe reads the 4-byte length header, then keeps reading until the whole
// payload has arrived.
func (c *Codec) Deframe(r *bufio.Reader) ([]byte, error) {
	var header [headerSize]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewNetworkError("read frame header", domain.ErrEmptyResponse)
		}
		return nil, domain.NewNetworkError("read frame header", err)
	}

	size := binary.BigEndian.Uint32(header[:])
	if size > maxFrameSize {
		return nil, domain.NewProtocolError("read frame header", fmt.Errorf("%w: %d bytes", domain.ErrFrameTooLarge, size))
	}

	payload := make([]byte, size)
	if n, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, domain.NewNetworkError("read frame payload", fmt.Errorf("connection closed after %d of %d bytes: %w", n, size, io.ErrUnexpectedEOF))
		}
		return nil, domain.NewNetworkError("read frame payload", err)
	}

	return payload, nil
}

func (c *Codec) Decode(frame []byte) (domain.Response, error) {
	msg := &mensagens.Resposta{}
	if err := proto.Unmarshal(frame, msg); err != nil {
		return domain.Response{}, domain.NewProtocolError("decode response", fmt.Errorf("unmarshal Resposta: %w", err))
	}

	raw := prototext.MarshalOptions{}.Format(msg)
	switch v := msg.GetConteudo().(type) {
	case *mensagens.Resposta_Ok:
		return domain.Response{
			Kind:      domain.ResponseOK,
			Status:    "ok",
			Command:   v.Ok.GetComando(),
			Token:     v.Ok.GetDados()[tokenKey],
			Fields:    sortedFields(v.Ok.GetDados()),
			Timestamp: v.Ok.GetTimestamp(),
			Raw:       raw,
		}, nil
	case *mensagens.Resposta_Erro:
		return domain.Response{
			Kind:      domain.ResponseError,
			Status:    "erro",
			Command:   v.Erro.GetComando(),
			Message:   v.Erro.GetMensagem(),
			Fields:    sortedFields(v.Erro.GetDetalhes()),
			Timestamp: v.Erro.GetTimestamp(),
			Raw:       raw,
		}, nil
	default:
		return domain.Response{}, domain.NewProtocolError("decode response", domain.ErrNoResponseVariant)
	}
}

func (c *Codec) Render(resp domain.Response) []string {
	var lines []string
	if resp.OK() {
		lines = append(lines, "Comando: "+resp.Command)
		lines = appendFields(lines, "Dados:", resp.Fields)
	} else {
		lines = append(lines, "ERRO - Comando: "+resp.Command, "Mensagem: "+resp.Message)
		lines = appendFields(lines, "Detalhes:", resp.Fields)
	}

	if resp.Timestamp != "" {
		lines = append(lines, "Timestamp: "+resp.Timestamp)
	}
	return lines
}

func (c *Codec) RenderElapsed(elapsed time.Duration) string {
	return fmt.Sprintf("Tempo de resposta: %.2f ms", domain.ElapsedMillis(elapsed))
}

func appendFields(lines []string, heading string, fields []domain.Field) []string {
	if len(fields) == 0 {
		return lines
	}
	lines = append(lines, heading)
	for _, f := range fields {
		lines = append(lines, "  "+f.Key+": "+f.Value)
	}
	return lines
}

// sortedFields returns a string map's entries sorted by key.
func sortedFields(m map[string]string) []domain.Field {
	if len(m) == 0 {
		return nil
	}
	fields := make([]domain.Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, domain.Field{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}
