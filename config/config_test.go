package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPageTimeout, cfg.PageTimeout)
	assert.Equal(t, DefaultStylesheetTimeout, cfg.StylesheetTimeout)
	assert.Equal(t, DefaultMaxInternalPages, cfg.MaxInternalPages)
	assert.Equal(t, DefaultAIBaseURL, cfg.AIBaseURL)
	assert.Equal(t, DefaultAIModel, cfg.AIModel)
	assert.True(t, cfg.AIEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BRANDPIPE_MAX_INTERNAL_PAGES", "2")
	t.Setenv("BRANDPIPE_AI_ENABLED", "false")
	t.Setenv("BRANDPIPE_PAGE_TIMEOUT", "5s")
	t.Setenv("BRANDPIPE_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.MaxInternalPages)
	assert.False(t, cfg.AIEnabled)
	assert.Equal(t, 5*time.Second, cfg.PageTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	base := func() Config {
		return Config{
			PageTimeout:           DefaultPageTimeout,
			StylesheetTimeout:     DefaultStylesheetTimeout,
			MaxInternalPages:      4,
			MaxStylesheetsPerPage: 3,
			AIBaseURL:             DefaultAIBaseURL,
			AIEnabled:             true,
			LogLevel:              "info",
		}
	}

	good := base()
	assert.NoError(t, good.Validate())

	noTimeout := base()
	noTimeout.PageTimeout = 0
	assert.Error(t, noTimeout.Validate())

	negPages := base()
	negPages.MaxInternalPages = -1
	assert.Error(t, negPages.Validate())

	noEndpoint := base()
	noEndpoint.AIBaseURL = ""
	assert.Error(t, noEndpoint.Validate())

	badLevel := base()
	badLevel.LogLevel = "verbose"
	assert.Error(t, badLevel.Validate())
}
