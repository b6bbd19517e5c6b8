// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/plangraph/internal/dot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		want    dot.RankDir
		wantErr string
	}{
		{name: "defaults", cfg: Config{}},
		{name: "rank direction is normalized", cfg: Config{RankDir: "tb"}, want: dot.RankTopBottom},
		{name: "invalid rank direction", cfg: Config{RankDir: "up"}, wantErr: "invalid rank direction"},
		{name: "valid include pattern", cfg: Config{Include: "**/*.hcl"}},
		{name: "invalid include pattern", cfg: Config{Include: "[a-"}, wantErr: "invalid include pattern"},
		{name: "invalid log level", cfg: Config{LogLevel: "trace"}, wantErr: "invalid log-level"},
		{name: "invalid log format", cfg: Config{LogFormat: "xml"}, wantErr: "invalid log-format"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.RankDir)
		})
	}
}

func TestNewConfig_NormalizesLogSettings(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)

	cfg, err = NewConfig(Config{LogLevel: "DEBUG", LogFormat: "Json"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	t.Run("json format at info level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger("info", "json", &buf)
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("shown", "k", "v")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})

	t.Run("empty settings select text at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := newLogger("", "", &buf)
		require.NoError(t, err)
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("unknown level is rejected", func(t *testing.T) {
		logger, err := newLogger("loud", "text", &bytes.Buffer{})
		assert.Nil(t, logger)
		assert.ErrorContains(t, err, `invalid log-level "loud"`)
	})

	t.Run("unknown format is rejected", func(t *testing.T) {
		logger, err := newLogger("info", "xml", &bytes.Buffer{})
		assert.Nil(t, logger)
		assert.ErrorContains(t, err, `invalid log-format "xml"`)
	})
}

func TestNewApp_RejectsInvalidLogSettings(t *testing.T) {
	a, err := NewApp(&bytes.Buffer{}, &bytes.Buffer{}, &Config{LogLevel: "trace"}, nil)
	assert.Nil(t, a)
	assert.ErrorContains(t, err, "failed to configure logging")
}
