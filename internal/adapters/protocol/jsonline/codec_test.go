package jsonline

import (
	"bufio"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = "2026-10-19T08:05:03.120000"

func TestEncodeRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  domain.Request
		want string
	}{
		{
			name: "auth",
			req:  domain.NewAuthRequest("554229", ts),
			want: `{"tipo":"autenticar","aluno_id":"554229","timestamp":"` + ts + `"}`,
		},
		{
			name: "sum parses numbers before sending",
			req:  domain.NewSumRequest("abc123", "1, 2.5, 3", ts),
			want: `{"tipo":"operacao","token":"abc123","operacao":"soma","parametros":{"numeros":[1,2.5,3]},"timestamp":"` + ts + `"}`,
		},
		{
			name: "echo",
			req:  domain.NewOperationRequest("abc123", domain.OperationNameEcho, ts, domain.Param{Name: "mensagem", Value: "oi"}),
			want: `{"tipo":"operacao","token":"abc123","operacao":"echo","parametros":{"mensagem":"oi"},"timestamp":"` + ts + `"}`,
		},
		{
			name: "status omits parametros",
			req:  domain.NewOperationRequest("abc123", domain.OperationNameStatus, ts),
			want: `{"tipo":"operacao","token":"abc123","operacao":"status","timestamp":"` + ts + `"}`,
		},
		{
			name: "info carries the token",
			req:  domain.NewInfoRequest("abc123", "", ts),
			want: `{"tipo":"info","token":"abc123","timestamp":"` + ts + `"}`,
		},
		{
			name: "logout",
			req:  domain.NewLogoutRequest("abc123", ts),
			want: `{"tipo":"logout","token":"abc123","timestamp":"` + ts + `"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Encode(tt.req)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestEncodeSumKeepsDecimalPoint(t *testing.T) {
	got, err := New().Encode(domain.NewSumRequest("abc123", "1, 2, 3", ts))
	require.NoError(t, err)
	assert.Contains(t, string(got), `"parametros":{"numeros":[1.0,2.0,3.0]}`)

	got, err = New().Encode(domain.NewSumRequest("abc123", "", ts))
	require.NoError(t, err)
	assert.Contains(t, string(got), `"parametros":{"numeros":[]}`)
}

func TestEncodeSumRejectsInvalidNumbers(t *testing.T) {
	for _, raw := range []string{"1, dois", "1, NaN", "inf"} {
		_, err := New().Encode(domain.NewSumRequest("abc123", raw, ts))
		require.ErrorIs(t, err, domain.ErrInvalidNumber, raw)
	}
}

func TestRenderTokenResponse(t *testing.T) {
	resp, err := New().Decode([]byte(`{"status":"ok","token":"abc123"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Status: ok", "Token: abc123"}, New().Render(resp))
	assert.Equal(t, "abc123", resp.Token)
	assert.True(t, resp.OK())
}

func TestRenderOrdersKnownKeysFirst(t *testing.T) {
	frame := `{"timestamp":"t1","extra":[1, 2],"resultado":{"soma":6,"quantidade":3},"sucesso":true,"mensagem":"feito","status":"ok"}`
	resp, err := New().Decode([]byte(frame))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Status: ok",
		"Mensagem: feito",
		"Resultado:",
		"  soma: 6",
		"  quantidade: 3",
		"extra: [1,2]",
		"Timestamp: t1",
	}, New().Render(resp))
	assert.Equal(t, `{"timestamp":"t1","extra":[1,2],"resultado":{"soma":6,"quantidade":3},"sucesso":true,"mensagem":"feito","status":"ok"}`, resp.Raw)
}

func TestRenderSkipsNonObjectResult(t *testing.T) {
	resp, err := New().Decode([]byte(`{"status":"sucesso","resultado":6.0,"operacao":"soma"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Status: sucesso", "operacao: soma"}, New().Render(resp))
}

func TestDecodeErrorStatus(t *testing.T) {
	resp, err := New().Decode([]byte(`{"status":"erro","mensagem":"token invalido"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseError, resp.Kind)
	assert.Empty(t, resp.Token)

	resp, err = New().Decode([]byte(`{"sucesso":false,"token":null}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ResponseError, resp.Kind)
	assert.Empty(t, resp.Token)
}

func TestDecodeNonObjectIsProtocolError(t *testing.T) {
	for _, frame := range []string{`"ok"`, `42`, `[{"token":"abc123"}]`, `null`} {
		_, err := New().Decode([]byte(frame))

		var protocolErr *domain.ProtocolError
		require.ErrorAs(t, err, &protocolErr, frame)
		assert.ErrorIs(t, err, domain.ErrNotObject, frame)
	}
}

func TestDeframeReturnsFirstValue(t *testing.T) {
	r := bufio.NewReader(iotest.HalfReader(strings.NewReader("{\"status\":\"ok\",\n\"token\":\"abc123\"}\n{\"ignored\":true}\n")))

	frame, err := New().Deframe(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok","token":"abc123"}`, string(frame))
}

func TestDeframeFailures(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  domain.ErrorKind
	}{
		{name: "closed without data", input: "", kind: domain.ErrorKindNetwork},
		{name: "closed mid object", input: `{"status":"ok"`, kind: domain.ErrorKindNetwork},
		{name: "not json", input: "OK|token=abc|FIM\n", kind: domain.ErrorKindProtocol},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Deframe(bufio.NewReader(strings.NewReader(tt.input)))
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}

func TestRenderElapsed(t *testing.T) {
	assert.Equal(t, "Tempo (ms): 0.50", New().RenderElapsed(500*time.Microsecond))
}
