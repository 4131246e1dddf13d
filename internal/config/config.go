package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	vendorName = "resend"
	appName    = "rusend"
	fileName   = "credentials"
)

// ErrCorrupt is returned when the credentials file looks like JSON but does
// not decode. Such content is never reinterpreted as a legacy key.
var ErrCorrupt = errors.New("credentials file is not valid JSON")

type AppConfig struct {
	APIKey      string  `json:"api_key"`
	DefaultFrom *string `json:"default_from"`
	DefaultTo   *string `json:"default_to"`
}

func Default() AppConfig {
	return AppConfig{}
}

func (c AppConfig) HasKey() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// MaskedKey returns the key with everything but the prefix and last four
// characters hidden.
func (c AppConfig) MaskedKey() string {
	k := []rune(strings.TrimSpace(c.APIKey))
	if len(k) == 0 {
		return ""
	}
	if len(k) <= 8 {
		return strings.Repeat("*", len(k))
	}
	return string(k[:3]) + "…" + string(k[len(k)-4:])
}

func Expand(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func DefaultPath() (string, error) {
	if runtime.GOOS == "linux" || strings.HasSuffix(runtime.GOOS, "bsd") {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName, fileName), nil
		}
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine configuration directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(base, "com."+vendorName+"."+appName, fileName), nil
	case "windows":
		return filepath.Join(base, vendorName, appName, "config", fileName), nil
	default:
		return filepath.Join(base, appName, fileName), nil
	}
}

type sourceKind int

const (
	sourceEmpty sourceKind = iota
	sourceStructured
	sourceLegacy
)

func (k sourceKind) String() string {
	switch k {
	case sourceStructured:
		return "structured"
	case sourceLegacy:
		return "legacy"
	default:
		return "empty"
	}
}

type parsed struct {
	kind sourceKind
	cfg  AppConfig
	key  string
}

func (p parsed) config() AppConfig {
	switch p.kind {
	case sourceStructured:
		return p.cfg
	case sourceLegacy:
		return AppConfig{APIKey: p.key}
	default:
		return Default()
	}
}

func parse(b []byte) (parsed, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return parsed{kind: sourceEmpty}, nil
	}
	var cfg AppConfig
	err := json.Unmarshal(trimmed, &cfg)
	if err == nil {
		return parsed{kind: sourceStructured, cfg: cfg}, nil
	}
	if trimmed[0] == '{' {
		return parsed{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return parsed{kind: sourceLegacy, key: string(trimmed)}, nil
}
