package delimited

import (
	"bufio"
	"errors"
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
			want: "AUTH|aluno_id=554229|TIMESTAMP=" + ts + "|FIM",
		},
		{
			name: "sum keeps the raw number list",
			req:  domain.NewSumRequest("abc123", "1, 2, 3", ts),
			want: "OP|abc123|operacao=soma|nums=1, 2, 3|FIM",
		},
		{
			name: "echo",
			req:  domain.NewOperationRequest("abc123", domain.OperationNameEcho, ts, domain.Param{Name: "mensagem", Value: "Hello"}),
			want: "OP|abc123|operacao=echo|mensagem=Hello|FIM",
		},
		{
			name: "history without params",
			req:  domain.NewOperationRequest("abc123", domain.OperationNameHistory, ts),
			want: "OP|abc123|operacao=historico|FIM",
		},
		{
			name: "info carries the token",
			req:  domain.NewInfoRequest("abc123", "", ts),
			want: "INFO|abc123|tipo=basico|FIM",
		},
		{
			name: "logout",
			req:  domain.NewLogoutRequest("abc123", ts),
			want: "LOGOUT|abc123|FIM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New().Encode(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestEncodeRejectsUnknownKind(t *testing.T) {
	_, err := New().Encode(domain.Request{})
	require.Error(t, err)
}

func TestFrameAppendsNewline(t *testing.T) {
	assert.Equal(t, "LOGOUT|x|FIM\n", string(New().Frame([]byte("LOGOUT|x|FIM"))))
}

func TestDecodeOKResponse(t *testing.T) {
	resp, err := New().Decode([]byte("OK|token=abc123|FIM\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.ResponseOK, resp.Kind)
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, []domain.Field{{Key: "token", Value: "abc123"}}, resp.Fields)
	assert.Equal(t, "abc123", resp.Token)
	assert.Equal(t, "OK|token=abc123|FIM", resp.Raw)
}

func TestDecodeBareFieldsAndErrorStatus(t *testing.T) {
	resp, err := New().Decode([]byte("ERRO|token invalido|mensagem=expirado|FIM"))
	require.NoError(t, err)

	assert.Equal(t, domain.ResponseError, resp.Kind)
	assert.Equal(t, "expirado", resp.Message)
	assert.Equal(t, []string{"Status: ERRO", "token invalido", "mensagem: expirado"}, New().Render(resp))
}

func TestDecodeStripsOnlyTrailingSentinel(t *testing.T) {
	tests := []struct {
		name   string
		frame  string
		fields []domain.Field
	}{
		{
			name:   "sentinel inside a value",
			frame:  "OK|mensagem=a|FIM b|FIM\n",
			fields: []domain.Field{{Key: "mensagem", Value: "a"}, {Value: "FIM b"}},
		},
		{
			name:   "text after the sentinel",
			frame:  "OK|mensagem=a|FIM extra",
			fields: []domain.Field{{Key: "mensagem", Value: "a"}, {Value: "FIM extra"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := New().Decode([]byte(tt.frame))
			require.NoError(t, err)
			assert.Equal(t, tt.fields, resp.Fields)
			assert.Equal(t, "a", resp.Message)
		})
	}
}

func TestDecodeWithoutSentinelIsProtocolError(t *testing.T) {
	_, err := New().Decode([]byte("OK|token=abc123"))

	var protocolErr *domain.ProtocolError
	require.ErrorAs(t, err, &protocolErr)
	assert.ErrorIs(t, err, domain.ErrMissingSentinel)
}

func TestDeframeAccumulatesPartialReads(t *testing.T) {
	r := bufio.NewReader(iotest.OneByteReader(strings.NewReader("OK|resultado=6|FIM\n")))

	frame, err := New().Deframe(r)
	require.NoError(t, err)
	assert.Contains(t, string(frame), "OK|resultado=6|FIM")
}

func TestDeframeClosedWithoutSentinelIsProtocolError(t *testing.T) {
	_, err := New().Deframe(bufio.NewReader(strings.NewReader("OK|token=abc123")))

	assert.Equal(t, domain.ErrorKindProtocol, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrMissingSentinel)
}

func TestDeframeClosedWithoutDataIsNetworkError(t *testing.T) {
	_, err := New().Deframe(bufio.NewReader(strings.NewReader("")))

	assert.Equal(t, domain.ErrorKindNetwork, domain.KindOf(err))
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestDeframeReadFailureIsNetworkError(t *testing.T) {
	_, err := New().Deframe(bufio.NewReader(iotest.ErrReader(errors.New("connection reset by peer"))))

	assert.Equal(t, domain.ErrorKindNetwork, domain.KindOf(err))
}

func TestRenderElapsed(t *testing.T) {
	assert.Equal(t, "Tempo (ms): 12.35", New().RenderElapsed(12345678*time.Nanosecond))
}
