package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store persists one introspection document as a single JSON file,
// containing exactly the raw document with no wrapper metadata.
//
// A Store assumes one process is the only reader and writer of its
// path. Concurrent processes sharing a cache file are not protected
// against.
type Store struct {
	path string
	log  *slog.Logger
}

// NewStore creates a Store backed by path. A nil logger falls back to
// slog.Default().
func NewStore(path string, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{path: path, log: log}
}

// DefaultCachePath returns the cache file path for a store domain under
// dir, or under the user cache directory when dir is empty. The file
// name carries the sanitized store domain so two stores never share an
// artifact.
func DefaultCachePath(dir, storeDomain string) string {
	if dir == "" {
		if userDir, err := os.UserCacheDir(); err == nil {
			dir = filepath.Join(userDir, "shopify-mcp")
		} else {
			dir = ".shopify-mcp"
		}
	}
	name := "schema.json"
	if storeDomain != "" {
		name = "schema-" + sanitizeDomain(storeDomain) + ".json"
	}
	return filepath.Join(dir, name)
}

func sanitizeDomain(domain string) string {
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimSuffix(domain, "/")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, domain)
}

// Path returns the file path backing the store.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored document, or (nil, nil) when no valid
// document is present. A file that does not parse, or parses without
// the __schema container, is removed so the next read does not repeat
// the failure.
func (s *Store) Read() (*Document, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schema: read cache: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		s.log.Warn("discarding unparseable schema cache", "path", s.path, "err", err)
		s.discard()
		return nil, nil
	}
	if !doc.Valid() {
		s.log.Warn("discarding schema cache without __schema container", "path", s.path)
		s.discard()
		return nil, nil
	}
	return &doc, nil
}

// Write serializes doc and replaces any previous contents. The document
// lands via a temp file and rename so an interrupted write cannot leave
// a torn artifact.
func (s *Store) Write(doc *Document) error {
	if !doc.Valid() {
		return ErrMalformedSchema
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: encode cache: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("schema: create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".schema-*.json")
	if err != nil {
		return fmt.Errorf("schema: create temp cache: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("schema: write cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("schema: close cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("schema: replace cache: %w", err)
	}
	return nil
}

// Clear removes the persisted document. Clearing an absent file is not
// an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("schema: clear cache: %w", err)
	}
	return nil
}

func (s *Store) discard() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn("could not remove corrupt schema cache", "path", s.path, "err", err)
	}
}
