package app

import (
	"os"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, keys ...string) {
		if *dst != "" {
			return
		}
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	setString(&cfg.InputPath, "QUIZ_INPUT")
	setString(&cfg.URL, "QUIZ_URL")
	setString(&cfg.OutputPath, "QUIZ_OUTPUT")
	setString(&cfg.Cookie, "QUIZ_COOKIE")
	setString(&cfg.PDFFont, "QUIZ_PDF_FONT")
	setString(&cfg.CacheDir, "QUIZ_CACHE_DIR", "CACHE_DIR")
	if cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent {
		if v := strings.TrimSpace(os.Getenv("QUIZ_UA")); v != "" {
			cfg.UserAgent = v
		}
	}

	if cfg.CacheMaxAge == 0 {
		if s := os.Getenv("CACHE_MAX_AGE"); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				cfg.CacheMaxAge = d
			}
		}
	}

	setBool := func(dst *bool, envKey string) {
		if *dst {
			return
		}
		switch strings.ToLower(strings.TrimSpace(os.Getenv(envKey))) {
		case "1", "true", "yes", "on":
			*dst = true
		}
	}
	setBool(&cfg.Copy, "QUIZ_COPY")
	setBool(&cfg.Verbose, "VERBOSE")
}
