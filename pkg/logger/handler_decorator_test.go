package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sharedkit/pkg/logger"
)

func requestIDFrom(id string) logger.ContextExtractor {
	return func(context.Context) (slog.Attr, bool) {
		return logger.RequestID(id), true
	}
}

func TestNewContextHandler(t *testing.T) {
	t.Run("no extractors returns next", func(t *testing.T) {
		next := slog.NewJSONHandler(&bytes.Buffer{}, nil)
		assert.Same(t, next, logger.NewContextHandler(next))
		assert.Same(t, next, logger.NewContextHandler(next, nil, nil))
	})

	t.Run("caller attrs win over extracted ones", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(buf, nil), requestIDFrom("from-ctx")))

		log.Info("explicit", logger.RequestID("explicit"))
		entry := decode(t, buf)
		assert.Equal(t, "explicit", entry["request_id"])
		assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))

		buf.Reset()
		log.With(logger.RequestID("bound")).Info("bound")
		entry = decode(t, buf)
		assert.Equal(t, "bound", entry["request_id"])
		assert.Equal(t, 1, strings.Count(buf.String(), `"request_id"`))

		buf.Reset()
		log.Info("extracted")
		assert.Equal(t, "from-ctx", decode(t, buf)["request_id"])
	})

	t.Run("empty attrs are skipped", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(buf, nil), requestIDFrom("")))
		log.Info("no id")
		assert.NotContains(t, buf.String(), "request_id")
	})

	t.Run("extracted attrs land in the open group", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := slog.New(logger.NewContextHandler(slog.NewJSONHandler(buf, nil), requestIDFrom("from-ctx")))

		log.With(logger.RequestID("top")).WithGroup("job").Info("grouped")
		entry := decode(t, buf)
		assert.Equal(t, "top", entry["request_id"])
		group, ok := entry["job"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "from-ctx", group["request_id"])
	})
}
