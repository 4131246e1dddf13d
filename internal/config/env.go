package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrParsingEnv = errors.New("failed to parse environment")

type Env struct {
	ConfigPath string        `env:"RUSEND_CONFIG"`
	APIKey     string        `env:"RESEND_API_KEY"`
	BaseURL    string        `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com"`
	Timeout    time.Duration `env:"RUSEND_TIMEOUT" envDefault:"30s"`
	Debug      bool          `env:"RUSEND_DEBUG"`
}

// LoadEnv parses the environment, after loading a .env file from the working
// directory when one exists.
func LoadEnv() (Env, error) {
	// A missing .env is the normal case.
	_ = godotenv.Load()
	return ParseEnv(nil)
}

// ParseEnv parses Env from vars, or from the process environment when vars
// is nil.
func ParseEnv(vars map[string]string) (Env, error) {
	var e Env
	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Env{}, errors.Join(ErrParsingEnv, err)
	}
	if e.Timeout <= 0 {
		return Env{}, fmt.Errorf("%w: RUSEND_TIMEOUT must be positive", ErrParsingEnv)
	}
	return e, nil
}

// ResolvePath picks the credentials path: flag, then RUSEND_CONFIG, then the
// per-user default.
func (e Env) ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if e.ConfigPath != "" {
		return e.ConfigPath, nil
	}
	return DefaultPath()
}

func (e Env) Apply(cfg AppConfig) AppConfig {
	if e.APIKey != "" {
		cfg.APIKey = e.APIKey
	}
	return cfg
}
