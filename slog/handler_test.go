package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	mensaslog "github.com/fwojciec/mensafeed/slog"
	"github.com/stretchr/testify/assert"
)

func TestContextHandler(t *testing.T) {
	t.Parallel()

	t.Run("adds context attributes to records", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(mensaslog.NewContextHandler(slog.NewTextHandler(&buf, nil)))
		ctx := mensaslog.Ctx(context.Background(), slog.String("canteen", "akbild"))

		logger.InfoContext(ctx, "fetch")

		assert.Contains(t, buf.String(), "canteen=akbild")
	})

	t.Run("accumulates attributes across calls", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(mensaslog.NewContextHandler(slog.NewTextHandler(&buf, nil)))
		ctx := mensaslog.Ctx(context.Background(), slog.String("canteen", "akbild"))
		ctx = mensaslog.Ctx(ctx, slog.String("format", "xml"))

		logger.InfoContext(ctx, "build")

		assert.Contains(t, buf.String(), "canteen=akbild")
		assert.Contains(t, buf.String(), "format=xml")
	})

	t.Run("does not leak attributes into the parent context", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(mensaslog.NewContextHandler(slog.NewTextHandler(&buf, nil)))
		parent := mensaslog.Ctx(context.Background(), slog.String("canteen", "akbild"))
		_ = mensaslog.Ctx(parent, slog.String("format", "ics"))

		logger.InfoContext(parent, "build")

		assert.NotContains(t, buf.String(), "format=ics")
	})

	t.Run("keeps the context handler after With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(mensaslog.NewContextHandler(slog.NewTextHandler(&buf, nil))).With("cmd", "generate")
		ctx := mensaslog.Ctx(context.Background(), slog.String("canteen", "akbild"))

		logger.InfoContext(ctx, "fetch")

		assert.Contains(t, buf.String(), "cmd=generate")
		assert.Contains(t, buf.String(), "canteen=akbild")
	})
}
