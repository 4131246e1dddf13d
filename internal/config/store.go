package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type Store struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	return &Store{path: Expand(path), log: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored configuration. A missing file yields the default
// configuration; only I/O failures and corrupt JSON are errors.
func (s *Store) Load() (AppConfig, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return AppConfig{}, fmt.Errorf("create config dir: %w", err)
	}
	b, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("no credentials file, using defaults")
		return Default(), nil
	}
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config: %w", err)
	}
	p, err := parse(b)
	if err != nil {
		return AppConfig{}, fmt.Errorf("decode config %s: %w", s.path, err)
	}
	s.log.Debug().Str("path", s.path).Stringer("format", p.kind).Msg("loaded credentials")
	return p.config(), nil
}

func (s *Store) Save(cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(s.path, 0o600); err != nil {
		return fmt.Errorf("chmod config: %w", err)
	}
	return nil
}
