package app_setting

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYatubeAppSetting_Defaults(t *testing.T) {
	s, err := ParseYatubeAppSetting("")
	require.Nil(t, err)
	assert.Equal(t, 10, s.PER_PAGE_COUNT)
	assert.Equal(t, 20*time.Second, s.IndexCacheTTL())
	assert.Equal(t, 14*24*time.Hour, s.SessionLifetime())
}

func TestParseYatubeAppSetting_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.Nil(t, ioutil.WriteFile(path, []byte("PER_PAGE_COUNT: 3\nMAX_IMAGE_BYTES: 1024\n"), 0644))

	s, err := ParseYatubeAppSetting(path)
	require.Nil(t, err)
	assert.Equal(t, 3, s.PER_PAGE_COUNT)
	assert.Equal(t, int64(1024), s.MAX_IMAGE_BYTES)
	assert.Equal(t, int64(20), s.INDEX_CACHE_SECONDS)
}

func TestParseYatubeAppSetting_Invalid(t *testing.T) {
	_, err := parseYatubeAppSetting([]byte("PER_PAGE_COUNT: 0\n"))
	assert.NotNil(t, err)

	_, err = parseYatubeAppSetting([]byte("PER_PAGE_COUNT: [1"))
	assert.NotNil(t, err)

	_, err = ParseYatubeAppSetting(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}
