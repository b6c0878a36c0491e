package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/tri-protocol-cli/internal/adapters/protocol/delimited"
	"github.com/bnema/tri-protocol-cli/internal/adapters/protocol/jsonline"
	"github.com/bnema/tri-protocol-cli/internal/adapters/protocol/protobuf"
	"github.com/bnema/tri-protocol-cli/internal/adapters/render/exchange"
	responselog "github.com/bnema/tri-protocol-cli/internal/adapters/responselog/file"
	"github.com/bnema/tri-protocol-cli/internal/adapters/transport/tcp"
	"github.com/bnema/tri-protocol-cli/internal/application"
	"github.com/bnema/tri-protocol-cli/internal/config"
	"github.com/bnema/tri-protocol-cli/internal/domain"
	"github.com/bnema/tri-protocol-cli/internal/logging"
	"github.com/bnema/tri-protocol-cli/internal/ports"
)

type app struct {
	logger  *zap.Logger
	out     *console
	clients map[domain.ProtocolName]*application.Client
	logs    []*responselog.Log
}

// console is the writer every client prints to. hold diverts it into a buffer
// until the returned release func flushes the buffer to the real writer.
type console struct {
	mu sync.Mutex
	w  io.Writer
}

func (c *console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

func (c *console) hold() (release func() error) {
	c.mu.Lock()
	out := c.w
	held := &bytes.Buffer{}
	c.w = held
	c.mu.Unlock()

	return func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.w = out
		_, err := held.WriteTo(out)
		return err
	}
}

func (o *rootOptions) wire(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return wireApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func wireApp(cfg *config.Config, out, errOut io.Writer) (*app, error) {
	a := &app{
		logger:  logging.NewLogger(cfg.Logging, errOut),
		out:     &console{w: out},
		clients: make(map[domain.ProtocolName]*application.Client, 3),
	}

	renderer := exchange.NewRenderer()
	for _, name := range domain.Protocols() {
		endpoint, err := cfg.Endpoint(name)
		if err != nil {
			return nil, err
		}
		codec, err := newCodec(name)
		if err != nil {
			return nil, fmt.Errorf("wire %s codec: %w", name, err)
		}

		log := responselog.NewLog(endpoint.LogFile, responselog.Options{
			MaxSizeMB:  cfg.ResponseLog.MaxSizeMB,
			MaxBackups: cfg.ResponseLog.MaxBackups,
			Compress:   cfg.ResponseLog.Compress,
		})
		a.logs = append(a.logs, log)

		clientCfg := application.ClientConfig{
			Addr:     endpoint.Addr,
			Timeout:  endpoint.Timeout,
			ClientID: cfg.Client.ID,
		}
		a.clients[name] = application.NewClient(clientCfg, codec, tcp.NewDialer(endpoint.Timeout), log, renderer, ports.SystemClock{},
			application.WithOutput(a.out),
			application.WithLogger(a.logger.Named("client")),
		)
	}

	return a, nil
}

func newCodec(name domain.ProtocolName) (ports.Codec, error) {
	switch name {
	case domain.ProtocolStrings:
		return delimited.New(), nil
	case domain.ProtocolJSON:
		return jsonline.New(), nil
	case domain.ProtocolProtobuf:
		return protobuf.New(), nil
	default:
		return nil, fmt.Errorf("unsupported protocol %q", name)
	}
}

// runAll runs code through each protocol in order. A failing protocol does not
// stop the others.
func (a *app) runAll(ctx context.Context, names []domain.ProtocolName, code domain.OperationCode, param *string) []application.Result {
	results := make([]application.Result, 0, len(names))
	for i, name := range names {
		if i > 0 {
			_, _ = fmt.Fprintln(a.out)
		}
		results = append(results, a.clients[name].Run(ctx, code, param))
	}
	return results
}

// runAllWithProgress is runAll behind a spinner on progress. The spinner only
// runs when progress is a terminal; client output is held until it stops.
func (a *app) runAllWithProgress(ctx context.Context, progress io.Writer, names []domain.ProtocolName, code domain.OperationCode, param *string) ([]application.Result, error) {
	if !isTerminal(progress) {
		return a.runAll(ctx, names, code, param), nil
	}

	release := a.out.hold()
	results, err := runWithSpinner(ctx, progress, fmt.Sprintf("Running %s...", code), func(ctx context.Context) []application.Result {
		return a.runAll(ctx, names, code, param)
	})
	if flushErr := release(); err == nil {
		err = flushErr
	}
	return results, err
}

func (a *app) Close() error {
	var errs []error
	for _, log := range a.logs {
		if err := log.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	_ = a.logger.Sync()
	return errors.Join(errs...)
}

func failedProtocols(results []application.Result) []string {
	var failed []string
	for _, result := range results {
		if result.Failed() {
			failed = append(failed, string(result.Protocol))
		}
	}
	return failed
}
