package ports

import "io"

// MediaPort stores uploaded media bytes and returns a public URL for them.
// The store treats the URL as opaque.
type MediaPort interface {
	Save(filename string, r io.Reader) (string, error)
}
