package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// envPair is one assignment read from a dotenv file, kept in file order.
type envPair struct {
	Key, Value string
}

// LoadEnvFiles applies dotenv files to the process environment, later files
// winning. Missing files are skipped so the default ".env" is optional.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read env file: %w", err)
		}
		for _, kv := range parseDotenv(string(data)) {
			if err := os.Setenv(kv.Key, kv.Value); err != nil {
				return fmt.Errorf("set %s: %w", kv.Key, err)
			}
		}
	}
	return nil
}

// parseDotenv reads KEY=VALUE lines. Blank lines, '#' comments and an
// "export " prefix are ignored, as are lines without '='. Only the first '='
// splits, so cookie values such as "a=1; b=2" survive. Quoted values keep
// their inner text verbatim; unquoted values lose a trailing " # comment".
func parseDotenv(data string) []envPair {
	var out []envPair
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || line[0] == '#' {
			continue
		}
		key, val, ok := strings.Cut(strings.TrimPrefix(line, "export "), "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		out = append(out, envPair{Key: key, Value: dotenvValue(strings.TrimSpace(val))})
	}
	return out
}

func dotenvValue(v string) string {
	if n := len(v); n >= 2 && (v[0] == '"' || v[0] == '\'') && v[n-1] == v[0] {
		return v[1 : n-1]
	}
	if i := strings.Index(v, " #"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}
	return v
}
