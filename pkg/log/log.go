package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/translator-tools/reasoner-converter/pkg/reqid"
)

// InitLogs returns the process logger. It writes to stderr so that log lines
// never mix with documents written to stdout.
func InitLogs(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	if lvl >= logrus.DebugLevel {
		log.SetReportCaller(true)
	}

	return log, nil
}

// Discard returns a logger that drops every entry.
func Discard() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// WithReqIDFromCtx creates a logger tagged with the request id carried by ctx.
func WithReqIDFromCtx(ctx context.Context, inner logrus.FieldLogger) logrus.FieldLogger {
	id, ok := reqid.FromContext(ctx)
	if !ok {
		return inner
	}
	return WithReqID(id, inner)
}

func WithReqID(reqID string, inner logrus.FieldLogger) logrus.FieldLogger {
	return inner.WithField("request_id", reqID)
}
