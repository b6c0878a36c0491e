package application

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/ports"
)

const authTitle = "autenticacao"

type ClientConfig struct {
	Addr     string
	Timeout  time.Duration
	ClientID string
}

// Result summarizes one Run. Err is nil when every exchange succeeded.
type Result struct {
	Protocol  domain.ProtocolName
	Operation domain.OperationCode
	Exchanges []domain.Exchange
	Err       error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// ExchangeNames lists the exchange keys in the order they completed.
func (r Result) ExchangeNames() []string {
	names := make([]string, 0, len(r.Exchanges))
	for _, ex := range r.Exchanges {
		names = append(names, ex.Name)
	}
	return names
}

type ClientOption func(*Client)

func WithOutput(w io.Writer) ClientOption {
	return func(c *Client) {
		if w != nil {
			c.out = w
		}
	}
}

func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client drives one authenticated session per Run over a single protocol.
// It holds no per-run state, so concurrent Runs are safe when the collaborators are.
type Client struct {
	cfg      ClientConfig
	codec    ports.Codec
	dialer   ports.Dialer
	log      ports.ResponseLog
	renderer ports.ExchangeRenderer
	clock    ports.Clock
	out      io.Writer
	logger   *zap.Logger
}

func NewClient(cfg ClientConfig, codec ports.Codec, dialer ports.Dialer, log ports.ResponseLog, renderer ports.ExchangeRenderer, clock ports.Clock, opts ...ClientOption) *Client {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	c := &Client{
		cfg:      cfg,
		codec:    codec,
		dialer:   dialer,
		log:      log,
		renderer: renderer,
		clock:    clock,
		out:      os.Stdout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Protocol() domain.Protocol {
	return c.codec.Protocol()
}

// Run connects, authenticates, performs the operation selected by code and
// logs out. The connection is closed on every path. param carries the sum
// number list or the echo message and is ignored by the other operations.
func (c *Client) Run(ctx context.Context, code domain.OperationCode, param *string) Result {
	return c.run(ctx, code, param, nil)
}

// RunSum is Run for a sum whose numbers are already parsed.
func (c *Client) RunSum(ctx context.Context, numbers []float64) Result {
	if numbers == nil {
		numbers = []float64{}
	}
	return c.run(ctx, domain.OperationSum, nil, numbers)
}

func (c *Client) run(ctx context.Context, code domain.OperationCode, param *string, numbers []float64) (result Result) {
	protocol := c.codec.Protocol()
	result = Result{Protocol: protocol.Name, Operation: code}
	logger := c.logger.With(
		zap.String("protocol", string(protocol.Name)),
		zap.Stringer("operation", code),
		zap.String("run_id", uuid.NewString()),
	)

	defer func() {
		if r := recover(); r != nil {
			result.Err = domain.NewUnexpectedError("run", fmt.Errorf("panic: %v", r))
		}
		if result.Err != nil {
			c.println(c.renderer.RenderFailure(protocol, result.Err))
			logger.Warn("run failed",
				zap.String("kind", string(domain.KindOf(result.Err))),
				zap.Error(result.Err),
			)
		}
	}()

	logger.Debug("connecting", zap.String("addr", c.cfg.Addr))
	conn, err := c.dialer.Dial(ctx, c.cfg.Addr)
	if err != nil {
		result.Err = domain.NewNetworkError("connect", err)
		return result
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Debug("close connection", zap.Error(err))
		}
	}()

	s := &session{
		client:    c,
		protocol:  protocol,
		conn:      conn,
		reader:    bufio.NewReader(conn),
		timestamp: domain.FormatClientTimestamp(c.clock.Now()),
		numbers:   numbers,
		logger:    logger,
		result:    &result,
	}
	result.Err = s.run(code, param)
	if result.Err == nil {
		logger.Info("run completed", zap.Strings("exchanges", result.ExchangeNames()))
	}
	return result
}

func (c *Client) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

// session carries the state of a single Run.
type session struct {
	client    *Client
	protocol  domain.Protocol
	conn      net.Conn
	reader    *bufio.Reader
	timestamp string
	numbers   []float64
	logger    *zap.Logger
	result    *Result
}

func (s *session) run(code domain.OperationCode, param *string) error {
	token, err := s.authenticate()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrAuthenticationFailed, err)
	}

	opErr := s.perform(code, param, token)
	if opErr != nil && domain.KindOf(opErr) == domain.ErrorKindNetwork {
		return opErr
	}

	if err := s.logout(token); err != nil {
		if opErr != nil {
			return errors.Join(opErr, err)
		}
		return err
	}
	return opErr
}

func (s *session) authenticate() (string, error) {
	req := domain.NewAuthRequest(s.client.cfg.ClientID, s.timestamp)
	ex, err := s.exchange(s.protocol.AuthLogKey, authTitle, req)
	if err != nil {
		return "", err
	}

	if !ex.Response.OK() {
		return "", domain.NewProtocolError("authenticate", fmt.Errorf("%w: status %q", domain.ErrAuthRejected, ex.Response.Status))
	}
	if ex.Response.Token == "" {
		return "", domain.NewProtocolError("authenticate", domain.ErrMissingToken)
	}
	return ex.Response.Token, nil
}

func (s *session) perform(code domain.OperationCode, param *string, token string) error {
	var req domain.Request
	switch code {
	case domain.OperationSum:
		req = domain.NewSumRequest(token, paramOr(param, ""), s.timestamp)
		if s.numbers != nil {
			req.Sum.Numbers = s.numbers
		}
	case domain.OperationEcho:
		message := paramOr(param, domain.DefaultEchoMessage)
		req = domain.NewOperationRequest(token, domain.OperationNameEcho, s.timestamp, domain.Param{Name: "mensagem", Value: message})
	case domain.OperationTimestamp, domain.OperationStatus, domain.OperationHistory:
		name, _ := code.WireName()
		req = domain.NewOperationRequest(token, name, s.timestamp)
	case domain.OperationInfo:
		req = domain.NewInfoRequest(token, domain.DefaultInfoType, s.timestamp)
	default:
		s.client.println(s.client.renderer.RenderNotice(s.protocol, fmt.Sprintf("%v: %s", domain.ErrUnknownOperation, code)))
		s.logger.Warn("skipping unknown operation")
		return nil
	}

	key := "info"
	if req.Kind == domain.RequestOperation {
		key = string(req.Operation)
	}
	_, err := s.exchange(key, key, req)
	return err
}

func (s *session) logout(token string) error {
	_, err := s.exchange("logout", "logout", domain.NewLogoutRequest(token, s.timestamp))
	return err
}

// exchange sends one request and waits for its response. Every returned error
// is classified.
func (s *session) exchange(key, title string, req domain.Request) (domain.Exchange, error) {
	codec := s.client.codec
	timeout := s.client.cfg.Timeout

	payload, err := codec.Encode(req)
	if err != nil {
		return domain.Exchange{}, domain.NewUnexpectedError("encode "+key+" request", err)
	}

	if err := s.conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return domain.Exchange{}, domain.NewNetworkError("send "+key+" request", err)
	}
	if _, err := s.conn.Write(codec.Frame(payload)); err != nil {
		return domain.Exchange{}, domain.NewNetworkError("send "+key+" request", err)
	}

	start := s.client.clock.Now()
	if err := s.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return domain.Exchange{}, domain.NewNetworkError("receive "+key+" response", err)
	}
	frame, err := codec.Deframe(s.reader)
	if err != nil {
		return domain.Exchange{}, domain.Classify("receive "+key+" response", err)
	}
	elapsed := s.client.clock.Now().Sub(start)

	resp, err := codec.Decode(frame)
	if err != nil {
		return domain.Exchange{}, domain.Classify("decode "+key+" response", err)
	}

	ex := domain.Exchange{Name: key, Request: req, Response: resp, Elapsed: elapsed}
	s.record(ex, title)
	return ex, nil
}

// record logs and prints a completed exchange. Log failures are reported but
// do not abort the session.
func (s *session) record(ex domain.Exchange, title string) {
	client := s.client
	if err := client.log.Append(ex.Name, ex.Response.Raw); err != nil {
		client.println(client.renderer.RenderNotice(s.protocol, "response log write failed: "+err.Error()))
		s.logger.Warn("append response log", zap.String("exchange", ex.Name), zap.Error(err))
	}

	body := append(client.codec.Render(ex.Response), client.codec.RenderElapsed(ex.Elapsed))
	client.println(client.renderer.RenderExchange(s.protocol, title, body))

	s.result.Exchanges = append(s.result.Exchanges, ex)
	s.logger.Debug("exchange completed",
		zap.String("exchange", ex.Name),
		zap.Stringer("response", ex.Response.Kind),
		zap.Float64("elapsed_ms", domain.ElapsedMillis(ex.Elapsed)),
	)
}

// paramOr returns the parameter, or fallback when it is absent. A blank
// parameter is sent as given.
func paramOr(param *string, fallback string) string {
	if param == nil {
		return fallback
	}
	return *param
}
