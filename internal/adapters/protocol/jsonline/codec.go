package jsonline

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/ports"
	jsoniter "github.com/json-iterator/go"
)

const (
	tipoAuth      = "autenticar"
	tipoOperation = "operacao"
	tipoInfo      = "info"
	tipoLogout    = "logout"

	sumParam = "numeros"

	keyStatus    = "status"
	keyMessage   = "mensagem"
	keyToken     = "token"
	keyResult    = "resultado"
	keySuccess   = "sucesso"
	keyTimestamp = "timestamp"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// message is the request envelope. Field order is the wire order.
type message struct {
	Tipo       string         `json:"tipo"`
	AlunoID    string         `json:"aluno_id,omitempty"`
	Token      string         `json:"token,omitempty"`
	Operacao   string         `json:"operacao,omitempty"`
	Parametros map[string]any `json:"parametros,omitempty"`
	Timestamp  string         `json:"timestamp,omitempty"`
}

// Codec speaks newline-terminated JSON objects.
type Codec struct{}

var _ ports.Codec = Codec{}

func New() Codec {
	return Codec{}
}

func (Codec) Protocol() domain.Protocol {
	return domain.Protocol{Name: domain.ProtocolJSON, Label: "JSON", AuthLogKey: "autenticacao"}
}

func (Codec) Encode(req domain.Request) ([]byte, error) {
	msg := message{Timestamp: req.Timestamp}
	switch req.Kind {
	case domain.RequestAuth:
		msg.Tipo = tipoAuth
		msg.AlunoID = req.ClientID
		msg.Timestamp = req.ClientTimestamp
	case domain.RequestOperation:
		msg.Tipo = tipoOperation
		msg.Token = req.Token
		msg.Operacao = string(req.Operation)
		params, err := operationParams(req)
		if err != nil {
			return nil, err
		}
		msg.Parametros = params
	case domain.RequestInfo:
		msg.Tipo = tipoInfo
		msg.Token = req.Token
	case domain.RequestLogout:
		msg.Tipo = tipoLogout
		msg.Token = req.Token
	default:
		return nil, fmt.Errorf("unsupported request kind %q", req.Kind)
	}

	payload, err := api.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %s request: %w", req.Kind, err)
	}
	return payload, nil
}

func operationParams(req domain.Request) (map[string]any, error) {
	if req.Sum == nil && len(req.Params) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(req.Params)+1)
	if req.Sum != nil {
		numbers, err := req.Sum.Parsed()
		if err != nil {
			return nil, fmt.Errorf("parse sum numbers: %w", err)
		}
		params[sumParam] = numberList(numbers)
	}
	for _, p := range req.Params {
		params[p.Name] = p.Value
	}
	return params, nil
}

// numberList encodes as a JSON array of numbers in which integral values keep
// a trailing ".0".
type numberList []float64

func (l numberList) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+len(l)*4)
	buf = append(buf, '[')
	for i, n := range l {
		if math.IsInf(n, 0) || math.IsNaN(n) {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidNumber, n)
		}
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, domain.FormatNumber(n)...)
	}
	return append(buf, ']'), nil
}

func (Codec) Frame(payload []byte) []byte {
	framed := make([]byte, 0, len(payload)+1)
	framed = append(framed, payload...)
	return append(framed, '\n')
}

// Deframe returns the first complete JSON value on the stream.
func (Codec) Deframe(r *bufio.Reader) ([]byte, error) {
	var raw json.RawMessage
	err := json.NewDecoder(r).Decode(&raw)
	if err == nil {
		return raw, nil
	}

	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return nil, domain.NewNetworkError("receive response", domain.ErrEmptyResponse)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return nil, domain.NewNetworkError("receive response", fmt.Errorf("connection closed mid-message: %w", err))
	case errors.As(err, &syntaxErr):
		return nil, domain.NewProtocolError("receive response", fmt.Errorf("invalid JSON: %w", err))
	default:
		return nil, domain.NewNetworkError("receive response", err)
	}
}

func (Codec) Decode(frame []byte) (domain.Response, error) {
	fields, err := objectFields(frame)
	if err != nil {
		return domain.Response{}, domain.NewProtocolError("decode response", err)
	}

	resp := domain.Response{Kind: domain.ResponseOK, Fields: fields}

	var compact bytes.Buffer
	if err := json.Compact(&compact, frame); err != nil {
		return domain.Response{}, domain.NewProtocolError("decode response", fmt.Errorf("invalid JSON: %w", err))
	}
	resp.Raw = compact.String()

	resp.Status, _ = resp.Lookup(keyStatus)
	resp.Message, _ = resp.Lookup(keyMessage)
	resp.Timestamp, _ = resp.Lookup(keyTimestamp)
	if token, ok := resp.Lookup(keyToken); ok && token != "null" && token != "false" {
		resp.Token = token
	}

	switch strings.ToLower(resp.Status) {
	case "erro", "error":
		resp.Kind = domain.ResponseError
	}
	if success, ok := resp.Lookup(keySuccess); ok && success == "false" {
		resp.Kind = domain.ResponseError
	}

	return resp, nil
}

// objectFields lists the members of a JSON object in wire order. String values
// are unquoted; anything else keeps its compact JSON text.
func objectFields(data []byte) ([]domain.Field, error) {
	iter := jsoniter.ParseBytes(api, data)
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
	case jsoniter.InvalidValue:
		return nil, fmt.Errorf("invalid JSON: %q", data)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrNotObject, bytes.TrimSpace(data))
	}

	var fields []domain.Field
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		value, err := displayValue(it.SkipAndReturnBytes())
		if err != nil {
			it.ReportError("read member "+key, err.Error())
			return false
		}
		fields = append(fields, domain.Field{Key: key, Value: value})
		return true
	})
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("invalid JSON object: %w", iter.Error)
	}

	return fields, nil
}

func displayValue(raw []byte) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := api.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return "", err
	}
	return compact.String(), nil
}

func (Codec) Render(resp domain.Response) []string {
	var lines []string
	if status, ok := resp.Lookup(keyStatus); ok {
		lines = append(lines, "Status: "+status)
	}
	if message, ok := resp.Lookup(keyMessage); ok {
		lines = append(lines, "Mensagem: "+message)
	}
	if token, ok := resp.Lookup(keyToken); ok {
		lines = append(lines, "Token: "+token)
	}
	if result, ok := resp.Lookup(keyResult); ok {
		lines = append(lines, renderResult(result)...)
	}

	for _, f := range resp.Fields {
		switch f.Key {
		case keyStatus, keyMessage, keyToken, keyResult, keySuccess, keyTimestamp:
			continue
		}
		lines = append(lines, f.Key+": "+f.Value)
	}

	if ts, ok := resp.Lookup(keyTimestamp); ok {
		lines = append(lines, "Timestamp: "+ts)
	}
	return lines
}

// renderResult expands a resultado object one member per line. Any other
// resultado value is not shown.
func renderResult(result string) []string {
	nested, err := objectFields([]byte(result))
	if err != nil {
		return nil
	}

	lines := []string{"Resultado:"}
	for _, f := range nested {
		lines = append(lines, "  "+f.Key+": "+f.Value)
	}
	return lines
}

func (Codec) RenderElapsed(elapsed time.Duration) string {
	return fmt.Sprintf("Tempo (ms): %.2f", domain.ElapsedMillis(elapsed))
}
