package store

import (
	"errors"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
)

// Backend is the durable blob storage behind a Store. Read reports ok=false
// when nothing has been written under the key yet; that is not an error.
type Backend interface {
	Read(key string) (data []byte, ok bool, err error)
	Write(key string, data []byte) error
}

// PreferencesBackend keeps blobs inside Fyne application preferences,
// JSON-in-string the same way nested config structures are stored.
type PreferencesBackend struct {
	Prefs fyne.Preferences
}

func (b PreferencesBackend) Read(key string) ([]byte, bool, error) {
	raw := b.Prefs.String(key)
	if raw == "" {
		return nil, false, nil
	}
	return []byte(raw), true, nil
}

func (b PreferencesBackend) Write(key string, data []byte) error {
	b.Prefs.SetString(key, string(data))
	return nil
}

// FileBackend keeps each key as <key>.json inside a directory, typically
// under the user config dir.
type FileBackend struct {
	Dir string
}

func (b FileBackend) path(key string) string {
	return filepath.Join(b.Dir, key+".json")
}

func (b FileBackend) Read(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (b FileBackend) Write(key string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(b.path(key), data, 0o644)
}

// MemoryBackend is an in-process backend for tests and previews.
type MemoryBackend struct {
	Blobs map[string][]byte

	// FailWrites makes every Write return an error, for exercising the
	// degraded persistence path.
	FailWrites bool
}

// NewMemoryBackend returns an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{Blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(key string) ([]byte, bool, error) {
	data, ok := b.Blobs[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (b *MemoryBackend) Write(key string, data []byte) error {
	if b.FailWrites {
		return errors.New("write disabled")
	}
	b.Blobs[key] = append([]byte(nil), data...)
	return nil
}
