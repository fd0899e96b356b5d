package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJson_NoFlagDoesNothing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin"}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":8080", c.EndpointAddr)
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := writeConfigFile(t, `{
		"endpoint_addr": ":9999",
		"database_dsn": "postgres://json",
		"secret_key": "json-secret",
		"token_validity_duration": "12h"
	}`)

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 12*time.Hour, c.TokenValidityDuration)
}

func TestParseJson_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"secret_key": "only-this"}`)

	origArgs := os.Args
	os.Args = []string{"testbin", "-config", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()
	parseJson(c)

	assert.Equal(t, "only-this", c.SecretKey)
	assert.Equal(t, ":8080", c.EndpointAddr)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	origArgs := os.Args
	os.Args = []string{"testbin", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()

	assert.Panics(t, func() { parseJson(c) })
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"testbin", "-c", "/nonexistent/config.json"}
	t.Cleanup(func() { os.Args = origArgs })

	c := &Config{}
	c.LoadDefaults()

	assert.Panics(t, func() { parseJson(c) })
}
