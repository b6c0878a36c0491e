package file

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bnema/tri-protocol-cli/internal/ports"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	MaxSizeMB  int
	MaxBackups int
	Compress   bool
}

// Log appends "<key>=<representation>" lines to a file, rotating it once it
// grows past MaxSizeMB.
type Log struct {
	path   string
	mu     sync.Mutex
	writer *lumberjack.Logger
}

var _ ports.ResponseLog = (*Log)(nil)

func NewLog(path string, opts Options) *Log {
	cleaned := filepath.Clean(path)
	return &Log{
		path: cleaned,
		writer: &lumberjack.Logger{
			Filename:   cleaned,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   opts.Compress,
		},
	}
}

func (l *Log) Path() string {
	return l.path
}

func (l *Log) Append(key string, representation string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.writer.Write([]byte(key + "=" + representation + "\n")); err != nil {
		return fmt.Errorf("append response log %q: %w", l.path, err)
	}
	return nil
}

func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.writer.Close(); err != nil {
		return fmt.Errorf("close response log %q: %w", l.path, err)
	}
	return nil
}
