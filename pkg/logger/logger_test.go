package logger

import (
	"testing"

	"github.com/GlebRadaev/bankapi/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name          string
		config        *config.Config
		expectedError bool
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{
			name:     "Info level console",
			config:   &config.Config{LogLvl: "info", LogFormat: "console"},
			enabled:  zapcore.InfoLevel,
			disabled: zapcore.DebugLevel,
		},
		{
			name:     "Error level json",
			config:   &config.Config{LogLvl: "error", LogFormat: "json"},
			enabled:  zapcore.ErrorLevel,
			disabled: zapcore.WarnLevel,
		},
		{
			name:     "Debug level with default format",
			config:   &config.Config{LogLvl: "debug"},
			enabled:  zapcore.DebugLevel,
			disabled: zapcore.DebugLevel - 1,
		},
		{
			name:          "Invalid log level",
			config:        &config.Config{LogLvl: "invalid"},
			expectedError: true,
		},
		{
			name:          "Invalid log format",
			config:        &config.Config{LogLvl: "info", LogFormat: "xml"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := InitLogger(tt.config)

			if tt.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, zap.L().Core().Enabled(tt.enabled))
			assert.False(t, zap.L().Core().Enabled(tt.disabled))
		})
	}
}
