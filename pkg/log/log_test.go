package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/translator-tools/reasoner-converter/pkg/reqid"
)

func TestInitLogs(t *testing.T) {
	require := require.New(t)

	log, err := InitLogs("debug")
	require.NoError(err)
	require.Equal(logrus.DebugLevel, log.GetLevel())

	log, err = InitLogs("warn")
	require.NoError(err)
	require.Equal(logrus.WarnLevel, log.GetLevel())

	_, err = InitLogs("loud")
	require.Error(err)
}

func TestWithReqIDFromCtx(t *testing.T) {
	var buf bytes.Buffer
	inner := logrus.New()
	inner.SetOutput(&buf)
	inner.SetFormatter(&logrus.JSONFormatter{})

	ctx := reqid.WithRequestID(context.Background(), "host-000000001")
	WithReqIDFromCtx(ctx, inner).Info("tagged")
	require.Contains(t, buf.String(), `"request_id":"host-000000001"`)

	buf.Reset()
	WithReqIDFromCtx(context.Background(), inner).Info("untagged")
	require.NotContains(t, buf.String(), "request_id")
}
