package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded from .env
type Config struct {
	Port            string `env:"PORT" envDefault:"8080"`
	DBPath          string `env:"DB_PATH" envDefault:"kakao_token.db"`
	UseHTTPS        bool   `env:"USE_HTTPS" envDefault:"false"`
	SessionLifetime int64  `env:"SESSION_LIFETIME" envDefault:"3600"`

	KakaoClientID     string `env:"KAKAO_CLIENT_ID,required"`
	KakaoCallbackURL  string `env:"KAKAO_CALLBACK_URL,required"`
	KakaoUserAgent    string `env:"KAKAO_USER_AGENT"`
	KakaoProfileURL   string `env:"KAKAO_PROFILE_URL"`
	KakaoOIDCIssuer   string `env:"KAKAO_OIDC_ISSUER"`
	AccessTokenField  string `env:"ACCESS_TOKEN_FIELD" envDefault:"access_token"`
	RefreshTokenField string `env:"REFRESH_TOKEN_FIELD" envDefault:"refresh_token"`
}

// LoadConfig loads the given .env files, if present, then parses the environment.
// Variables already set in the environment win over .env values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}
