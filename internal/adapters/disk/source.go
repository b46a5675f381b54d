// Package disk implements ports.DoctorSource by reading the data file on every
// call. Nothing is kept between calls, so an edited file is picked up by the
// very next request.
package disk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned for a data file that is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// FileSource reads a JSON document from a fixed path.
type FileSource struct {
	path string
}

// NewFileSource returns a source for the file at path. The file does not have
// to exist yet.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the source reads.
func (s *FileSource) Path() string {
	return s.path
}

// Load reads and validates the file. The returned JSON is compacted; values
// and their order are exactly those of the file.
func (s *FileSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("parse %s: %w", s.path, ErrInvalidUTF8)
	}

	var buf bytes.Buffer
	buf.Grow(len(raw))
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return buf.Bytes(), nil
}
