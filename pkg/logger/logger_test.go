package logger_test

import (
	"context"
	"creditor/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// setup should not panic
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			// get a logger from context to verify setup worked
			ctx := context.Background()
			l := logger.Get(ctx)
			require.NotNil(t, l)
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	// test with empty context
	ctx := context.Background()
	l := logger.Get(ctx)
	require.NotNil(t, l, "Should return default logger when context has no logger")

	// test with logger in context
	customLogger, _ := zap.NewDevelopment()
	ctxWithLogger := logger.WithLogger(ctx, customLogger)
	l = logger.Get(ctxWithLogger)
	require.Equal(t, customLogger, l, "Should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	ctxWithFields := logger.WithFields(ctx, zap.String("url", "https://example.com"), zap.Int("index", 3))

	// zap.Logger does not expose its fields, but the context must carry a logger
	l := logger.Get(ctxWithFields)
	require.NotNil(t, l, "Context should have a logger with fields")
}

func TestLoggingFunctions(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Info(ctx, "info message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
	})

	require.NotPanics(t, func() {
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
