package media

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"statushub/pkg/logger"
)

var ErrEmptyFile = errors.New("empty media file")

// LocalResolver stores uploaded media on the local filesystem and hands out
// URLs under /uploads/. The store never looks behind the URL.
type LocalResolver struct {
	log     logger.Logger
	dir     string
	baseURL string
}

func New(log logger.Logger, dir, baseURL string) (*LocalResolver, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &LocalResolver{
		log:     log,
		dir:     dir,
		baseURL: baseURL,
	}, nil
}

// Save writes the upload under a collision-free name and returns its public
// URL. The original filename is kept as a suffix for readability only.
func (m *LocalResolver) Save(filename string, r io.Reader) (string, error) {
	safeName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(m.dir, safeName)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	written, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if written == 0 {
		os.Remove(path)
		return "", ErrEmptyFile
	}

	m.log.Debug("Stored media file", "name", safeName, "bytes", written)
	return fmt.Sprintf("%s/uploads/%s", m.baseURL, url.PathEscape(safeName)), nil
}

// Dir returns the directory served statically by the gateway.
func (m *LocalResolver) Dir() string {
	return m.dir
}
