package file_store

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	DefaultMediaRoot = "media"
	// Local files are served by the web server under this path.
	MediaUrlPrefix = "/media/"
)

// LocalFileStore keeps images on local disk, used in development.
type LocalFileStore struct {
	root      string
	urlPrefix string
}

func NewLocalFileStore(root string, urlPrefix string) (*LocalFileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, errors.Wrapf(err, "cannot create media root %s", root)
	}
	return &LocalFileStore{root: root, urlPrefix: urlPrefix}, nil
}

// Root is the directory the web server exposes under the url prefix.
func (s *LocalFileStore) Root() string {
	return s.root
}

func (s *LocalFileStore) path(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if cleaned == "/" || strings.Contains(key, "..") {
		return "", errors.Errorf("invalid key %q", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

func (s *LocalFileStore) Store(ctx context.Context, key string, contentType string, data []byte) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return errors.Wrapf(err, "cannot create folder for %s", key)
	}
	if err := ioutil.WriteFile(p, data, 0644); err != nil {
		return errors.Wrapf(err, "cannot write %s", key)
	}
	return nil
}

func (s *LocalFileStore) GetUrlFromKey(key string) string {
	return s.urlPrefix + key
}

func (s *LocalFileStore) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "cannot delete %s", key)
	}
	return nil
}
