// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/MKhiriev/go-media-mirror/models"
	"github.com/spf13/afero"
)

// DocumentExt is the file extension of mirror documents.
const DocumentExt = ".json"

// fileDocumentStore keeps every document as one JSON file under root.
//
// Writes go to a temp file in the same directory which is synced and then
// renamed over the target, so a reader never observes a partial document.
type fileDocumentStore struct {
	fs   afero.Fs
	root string
	ext  string

	mu     sync.Mutex
	logger *logger.Logger
}

// NewFileDocumentStore constructs a [DocumentStore] storing `<root>/<name><ext>`
// files on fs.
func NewFileDocumentStore(fs afero.Fs, root, ext string, logger *logger.Logger) DocumentStore {
	logger.Debug().Str("root", root).Msg("creating file document store")
	return &fileDocumentStore{
		fs:     fs,
		root:   root,
		ext:    ext,
		logger: logger,
	}
}

func (s *fileDocumentStore) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDocumentName, name)
	}
	return filepath.Join(s.root, name+s.ext), nil
}

func (s *fileDocumentStore) Load(ctx context.Context, name string) (models.Sections, error) {
	log := logger.FromContext(ctx)

	p, err := s.path(name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewSections(), nil
		}
		log.Err(err).Str("func", "fileDocumentStore.Load").Str("path", p).Msg("failed to read document")
		return nil, fmt.Errorf("read document %q: %w", name, err)
	}

	doc := models.NewSections()
	if len(strings.TrimSpace(string(data))) == 0 {
		return doc, nil
	}
	if err = json.Unmarshal(data, &doc); err != nil {
		log.Err(err).Str("func", "fileDocumentStore.Load").Str("path", p).Msg("failed to decode document")
		return nil, fmt.Errorf("%w: %q: %w", ErrCorruptDocument, name, err)
	}
	for section, opts := range doc {
		if opts == nil {
			doc[section] = make(map[string]string)
		}
	}

	return doc, nil
}

func (s *fileDocumentStore) Save(ctx context.Context, name string, doc models.Sections) error {
	log := logger.FromContext(ctx)

	p, err := s.path(name)
	if err != nil {
		return err
	}

	if doc == nil {
		doc = models.NewSections()
	}
	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.writeAtomic(p, payload); err != nil {
		log.Err(err).Str("func", "fileDocumentStore.Save").Str("path", p).Msg("failed to write document")
		return fmt.Errorf("write document %q: %w", name, err)
	}

	return nil
}

func (s *fileDocumentStore) Remove(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	p, err := s.path(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err = s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		log.Err(err).Str("func", "fileDocumentStore.Remove").Str("path", p).Msg("failed to remove document")
		return fmt.Errorf("remove document %q: %w", name, err)
	}

	return nil
}

func (s *fileDocumentStore) writeAtomic(p string, payload []byte) error {
	dir := filepath.Dir(p)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(p)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(payload)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}

	if err = s.fs.Rename(tmpName, p); err != nil {
		_ = s.fs.Remove(tmpName)
		return err
	}

	return nil
}
