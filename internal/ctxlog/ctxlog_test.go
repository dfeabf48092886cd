package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	require.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith_AddsAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := With(WithLogger(context.Background(), logger), "stage", "load")

	FromContext(ctx).Info("hello")

	assert.Contains(t, buf.String(), "stage=load")
	assert.Contains(t, buf.String(), "msg=hello")
}
