package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// No .env file in the test working directory: defaults apply
	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "movie-scout", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "http://localhost:5000", config.Upstream.BaseURL)
	assert.Zero(t, config.Upstream.Timeout)
	assert.Equal(t, 19, config.Search.RecLimit)
	assert.Equal(t, FetchSequential, config.Search.FetchMode)
	assert.Contains(t, config.Search.Suggestions, "Inception")
}

func TestLoadConfigFetchModeNormalization(t *testing.T) {
	t.Setenv("FETCH_MODE", " CONCURRENT ")
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FetchConcurrent, config.Search.FetchMode)

	t.Setenv("FETCH_MODE", "something-else")
	config, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, FetchSequential, config.Search.FetchMode)
}

func TestLoadConfigTrimsUpstreamSlash(t *testing.T) {
	t.Setenv("UPSTREAM_BASE_URL", "http://backend:5000/")
	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:5000", config.Upstream.BaseURL)
}
