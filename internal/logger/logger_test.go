package logger_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/dsaportal/internal/logger"
)

func TestLookupLevel(t *testing.T) {
	tests := []struct {
		in    string
		want  logger.Level
		valid bool
	}{
		{"DEBUG", logger.DEBUG, true},
		{"info", logger.INFO, true},
		{"Warning", logger.WARN, true},
		{" error ", logger.ERROR, true},
		{"verbose", logger.INFO, false},
		{"", logger.INFO, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := logger.LookupLevel(tt.in)
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(logger.WARN))

	log.Info("hidden")
	log.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithPrefix("transport")).
		WithFields(map[string]any{"zeta": 1, "alpha": "a", "mid": true})

	log.Info("request done")

	line := buf.String()
	assert.Contains(t, line, "[transport]")
	assert.Less(t, strings.Index(line, "alpha=a"), strings.Index(line, "mid=true"))
	assert.Less(t, strings.Index(line, "mid=true"), strings.Index(line, "zeta=1"))
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := logger.New(logger.WithOutput(&buf))
	_ = parent.WithField("child", 1)

	parent.Info("parent line")
	assert.NotContains(t, buf.String(), "child=1")
}

func TestContextHelpers(t *testing.T) {
	l := logger.Discard()
	ctx := logger.NewContext(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))

	ctx = logger.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logger.RequestID(ctx))
	assert.Empty(t, logger.RequestID(context.Background()))
}
