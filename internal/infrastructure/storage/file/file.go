// Package file persists the session as a JSON document on disk, optionally
// encrypted at rest with ChaCha20-Poly1305.
package file

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/jobhive/portal-client/internal/core/domain"
)

const sessionFileName = "session.json"

// Config captures the settings for the file-backed store.
type Config struct {
	// Dir is the directory holding the session file. Created with 0700 if
	// missing.
	Dir string
	// Key, when non-empty, must be a hex-encoded 32-byte key; the session
	// file is then sealed with ChaCha20-Poly1305 instead of stored as
	// plaintext.
	Key string
}

// Store is a SessionStorage backed by one file. All keys live in a single
// document so token and identity mirror travel together on disk.
type Store struct {
	path string
	key  []byte // nil when encryption is off

	mu sync.Mutex
}

func New(cfg Config) (*Store, error) {
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve session dir: %w", err)
		}
		cfg.Dir = filepath.Join(home, ".jobhive")
	}
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	s := &Store{path: filepath.Join(cfg.Dir, sessionFileName)}
	if cfg.Key != "" {
		key, err := hex.DecodeString(cfg.Key)
		if err != nil || len(key) != chacha20poly1305.KeySize {
			return nil, errors.New("session key must be 32 bytes, hex-encoded")
		}
		s.key = key
	}
	return s, nil
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data[key] = value
	return s.save(data)
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return s.save(data)
}

// load reads and decodes the session document. A missing file is an empty
// session, not an error.
func (s *Store) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	if s.key != nil {
		raw, err = s.open(raw)
		if err != nil {
			return nil, fmt.Errorf("decrypt session file: %w", err)
		}
	}

	data := map[string]string{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse session file: %w", err)
	}
	return data, nil
}

// save writes the document atomically: temp file in the same directory,
// fsync-free rename.
func (s *Store) save(data map[string]string) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if s.key != nil {
		raw, err = s.seal(raw)
		if err != nil {
			return fmt.Errorf("encrypt session file: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// seal prepends the random nonce to the ciphertext.
func (s *Store) seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (s *Store) open(sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(s.key)
	if err != nil {
		return nil, err
	}
	if len(sealed) < aead.NonceSize() {
		return nil, errors.New("session file truncated")
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	return aead.Open(nil, nonce, ciphertext, nil)
}
