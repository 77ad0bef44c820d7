package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned by a Storage when no value exists under a key.
var ErrNotFound = errors.New("session: entry not found")

// Storage is the durable mirror of the in-memory session: two string
// entries under fixed keys. It is a passive copy, not a source of truth
// except at cold start.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage keeps session entries as individual files in a directory,
// typically ~/.config/edition.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir.
func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

// DefaultStorageDir returns the per-user session directory.
func DefaultStorageDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "edition"), nil
}

func (f *FileStorage) Get(key string) (string, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read session entry %q: %w", key, err)
	}
	return string(data), nil
}

func (f *FileStorage) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(f.dir, key), []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write session entry %q: %w", key, err)
	}
	return nil
}

func (f *FileStorage) Delete(key string) error {
	if err := os.Remove(filepath.Join(f.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete session entry %q: %w", key, err)
	}
	return nil
}

// KeyringStorage keeps session entries in the OS keychain/credential
// manager so tokens never touch disk in the clear.
type KeyringStorage struct {
	service string
}

// NewKeyringStorage creates a keyring-backed storage under the given
// service name.
func NewKeyringStorage(service string) *KeyringStorage {
	return &KeyringStorage{service: service}
}

func (k *KeyringStorage) Get(key string) (string, error) {
	value, err := keyring.Get(k.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read keyring entry %q: %w", key, err)
	}
	return value, nil
}

func (k *KeyringStorage) Set(key, value string) error {
	if err := keyring.Set(k.service, key, value); err != nil {
		return fmt.Errorf("failed to write keyring entry %q: %w", key, err)
	}
	return nil
}

func (k *KeyringStorage) Delete(key string) error {
	if err := keyring.Delete(k.service, key); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete keyring entry %q: %w", key, err)
	}
	return nil
}
