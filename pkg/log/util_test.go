package log

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestToFields(t *testing.T) {
	now := time.Now()
	err := errors.New("dome not in remote")

	tests := []struct {
		name  string
		input []any
		keys  []string
	}{
		{"empty input", []any{}, nil},
		{"string-int-bool", []any{"subsystem", "dome", "port", 1963, "remote", true}, []string{"subsystem", "port", "remote"}},
		{"time type", []any{"at", now}, []string{"at"}},
		{"float type", []any{"azimuth", 270.5}, []string{"azimuth"}},
		{"duration", []any{"wait", 55 * time.Second}, []string{"wait"}},
		{"bytes", []any{"raw", []byte("GetDomeData")}, []string{"raw"}},
		{"string slice", []any{"steps", []string{"open_dome", "open_covers"}}, []string{"steps"}},
		{"error only", []any{err}, []string{"error"}},
		{"mixed field types", []any{"state", "ready", zap.String("sequence", "startup"), "step", 4}, []string{"state", "sequence", "step"}},
		{"odd number of args", []any{"command", "Park", "reply"}, []string{"command", "arg#2"}},
		{"non-string key", []any{123, "value"}, []string{"invalid_key_1"}},
		{"nil values", []any{"a", nil, "b", (*int)(nil)}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := toFields(tt.input...)

			if len(tt.input) == 0 {
				assert.Nil(t, fields)
				return
			}

			got := make([]string, 0, len(fields))
			for _, f := range fields {
				require.NotEmpty(t, f.Key)
				got = append(got, f.Key)
			}
			assert.Equal(t, tt.keys, got)
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	opts := NewOptions()
	assert.Empty(t, opts.Validate())

	opts.Level = "loud"
	opts.Format = "xml"
	assert.Len(t, opts.Validate(), 2)
}

func TestWithNameKeepsLevel(t *testing.T) {
	l := NewLogger(&Options{Level: "warn", Format: FormatJSON, OutputPaths: []string{"stderr"}})
	child := l.WithName("dome").(*zapLogger)

	assert.Equal(t, zapcore.WarnLevel, child.level.Level())
	child.level.SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, l.(*zapLogger).level.Level())
}
