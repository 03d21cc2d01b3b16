// Package storage is the blob store behind land photo uploads. The local
// implementation writes under a directory served by the static route, so the
// returned reference is a public URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Store interface {
	// Save writes the blob and returns its public reference.
	Save(name string, src io.Reader) (string, error)
}

type Local struct {
	dir     string
	baseURL string
}

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *Local) Save(name string, src io.Reader) (string, error) {
	fname := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitize(name))
	f, err := os.Create(filepath.Join(s.dir, fname))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, src); err != nil {
		return "", err
	}
	return s.baseURL + "/" + fname, nil
}

func sanitize(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}
