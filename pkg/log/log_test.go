package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, Configure("debug"))
	assert.Equal(t, logrus.InfoLevel, Configure("verboso"))
}

func TestForContext_PropagaIdentificadores(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	Configure("info")

	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	defer logrus.SetOutput(original)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRun(ctx, "daily_full_pipeline", "run-123")

	ForContext(ctx).Info("execução iniciada")

	out := buf.String()
	assert.Contains(t, out, correlationID)
	assert.Contains(t, out, "run_id=run-123")
	assert.Contains(t, out, "job=daily_full_pipeline")
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
}

func TestWithField_FiltraEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	Configure("info")

	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	defer logrus.SetOutput(original)

	L.WithField("irrelevante", "x").WithField("series", "ipca").Info("ok")

	out := buf.String()
	assert.NotContains(t, out, "irrelevante")
	assert.Contains(t, out, "series=ipca")
}
