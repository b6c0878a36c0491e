// Package protobuftest implements the server side of the protobuf wire format
// for tests that stand in for the demonstration server.
package protobuftest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bnema/tri-protocol-cli/internal/adapters/protocol/protobuf/mensagens"
	"github.com/bnema/tri-protocol-cli/internal/domain"
	"google.golang.org/protobuf/proto"
)

// EncodeResponse serializes resp as a Resposta payload.
func EncodeResponse(resp domain.Response) ([]byte, error) {
	fields := make(map[string]string, len(resp.Fields))
	for _, f := range resp.Fields {
		fields[f.Key] = f.Value
	}

	msg := &mensagens.Resposta{}
	if resp.OK() {
		msg.Conteudo = &mensagens.Resposta_Ok{Ok: &mensagens.Ok{
			Comando:   resp.Command,
			Dados:     fields,
			Timestamp: resp.Timestamp,
		}}
	} else {
		msg.Conteudo = &mensagens.Resposta_Erro{Erro: &mensagens.Erro{
			Comando:   resp.Command,
			Mensagem:  resp.Message,
			Detalhes:  fields,
			Timestamp: resp.Timestamp,
		}}
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(msg)
}

// DecodeRequest parses a Requisicao payload. Operation parameters come back
// sorted by name.
func DecodeRequest(payload []byte) (domain.Request, error) {
	msg := &mensagens.Requisicao{}
	if err := proto.Unmarshal(payload, msg); err != nil {
		return domain.Request{}, fmt.Errorf("unmarshal Requisicao: %w", err)
	}

	switch v := msg.GetConteudo().(type) {
	case *mensagens.Requisicao_Auth:
		return domain.Request{
			Kind:            domain.RequestAuth,
			ClientID:        v.Auth.GetAlunoId(),
			ClientTimestamp: v.Auth.GetTimestampCliente(),
		}, nil
	case *mensagens.Requisicao_Operacao:
		req := domain.Request{
			Kind:      domain.RequestOperation,
			Token:     v.Operacao.GetToken(),
			Operation: domain.OperationName(v.Operacao.GetOperacao()),
		}
		for name, value := range v.Operacao.GetParametros() {
			req.Params = append(req.Params, domain.Param{Name: name, Value: value})
		}
		sort.Slice(req.Params, func(i, j int) bool { return req.Params[i].Name < req.Params[j].Name })
		return req, nil
	case *mensagens.Requisicao_Info:
		return domain.Request{Kind: domain.RequestInfo, InfoType: v.Info.GetTipo()}, nil
	case *mensagens.Requisicao_Logout:
		return domain.Request{Kind: domain.RequestLogout, Token: v.Logout.GetToken()}, nil
	default:
		return domain.Request{}, errors.New("request has no variant")
	}
}
