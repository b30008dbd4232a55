package app_setting

import (
	"io/ioutil"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// This is the yatube app setting for the web server and admin script.
type YatubeAppSetting struct {
	// Number of posts on every feed page.
	PER_PAGE_COUNT int `yaml:"PER_PAGE_COUNT"`
	// Life span of a cached home feed page, in second.
	INDEX_CACHE_SECONDS int64 `yaml:"INDEX_CACHE_SECONDS"`
	// Largest accepted image upload, in bytes.
	MAX_IMAGE_BYTES int64 `yaml:"MAX_IMAGE_BYTES"`
	// How long a login session stays valid, in hours.
	SESSION_LIFETIME_HOURS int64 `yaml:"SESSION_LIFETIME_HOURS"`
	// Number of pages kept when the in-process page cache is used.
	PAGE_CACHE_LRU_SIZE int `yaml:"PAGE_CACHE_LRU_SIZE"`
	// bcrypt cost used when hashing passwords.
	BCRYPT_COST int `yaml:"BCRYPT_COST"`
}

func DefaultYatubeAppSetting() YatubeAppSetting {
	return YatubeAppSetting{
		PER_PAGE_COUNT:         10,
		INDEX_CACHE_SECONDS:    20,
		MAX_IMAGE_BYTES:        5 << 20,
		SESSION_LIFETIME_HOURS: 14 * 24,
		PAGE_CACHE_LRU_SIZE:    256,
		BCRYPT_COST:            10,
	}
}

func (s YatubeAppSetting) IndexCacheTTL() time.Duration {
	return time.Duration(s.INDEX_CACHE_SECONDS) * time.Second
}

func (s YatubeAppSetting) SessionLifetime() time.Duration {
	return time.Duration(s.SESSION_LIFETIME_HOURS) * time.Hour
}

// ParseYatubeAppSetting reads the yaml at path. Empty path yields defaults,
// keys missing from the file keep their default value.
func ParseYatubeAppSetting(path string) (YatubeAppSetting, error) {
	if path == "" {
		return DefaultYatubeAppSetting(), nil
	}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		return YatubeAppSetting{}, errors.Wrap(err, "cannot read app setting")
	}
	return parseYatubeAppSetting(yamlFile)
}

func parseYatubeAppSetting(data []byte) (YatubeAppSetting, error) {
	s := DefaultYatubeAppSetting()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return YatubeAppSetting{}, errors.Wrap(err, "cannot unmarshal app setting")
	}
	if s.PER_PAGE_COUNT <= 0 {
		return YatubeAppSetting{}, errors.Errorf("PER_PAGE_COUNT must be positive, got %d", s.PER_PAGE_COUNT)
	}
	if s.INDEX_CACHE_SECONDS < 0 {
		return YatubeAppSetting{}, errors.Errorf("INDEX_CACHE_SECONDS must not be negative, got %d", s.INDEX_CACHE_SECONDS)
	}
	return s, nil
}
