package vault

// Package vault provides StateVault implementations: a single-file JSON
// store for workstation deployments and a Redis-backed store for shared
// ones.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/toolrent/admin-gateway/internal/ports"
)

// FileVault persists keys as a flat JSON object in a single file. Every
// write rewrites the whole file through a temp-file rename, so a crash
// mid-write leaves either the old or the new content, never a torn one.
type FileVault struct {
	path string

	mu   sync.Mutex
	data map[string]string
}

var _ ports.StateVault = (*FileVault)(nil)

// NewFileVault opens or creates the vault file. A missing file is an
// empty vault; an unreadable one is an error so the operator notices.
func NewFileVault(path string) (*FileVault, error) {
	if path == "" {
		return nil, errors.New("vault file path is required")
	}

	v := &FileVault{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return v, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read vault file: %w", err)
	}
	if len(raw) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v.data); err != nil {
		return nil, fmt.Errorf("parse vault file %s: %w", path, err)
	}
	return v, nil
}

func (v *FileVault) Get(_ context.Context, key string) (string, bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	val, ok := v.data[key]
	return val, ok, nil
}

func (v *FileVault) Set(_ context.Context, key, value string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[key] = value
	return v.flushLocked()
}

func (v *FileVault) Delete(_ context.Context, keys ...string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := false
	for _, key := range keys {
		if _, ok := v.data[key]; ok {
			delete(v.data, key)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return v.flushLocked()
}

// flushLocked writes the map atomically. Caller holds v.mu.
func (v *FileVault) flushLocked() error {
	raw, err := json.MarshalIndent(v.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault: %w", err)
	}

	dir := filepath.Dir(v.path)
	tmp, err := os.CreateTemp(dir, ".vault-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write vault file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close vault file: %w", err)
	}
	if err := os.Rename(tmpName, v.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replace vault file: %w", err)
	}
	return nil
}
