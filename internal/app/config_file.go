package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/quizexport/internal/extract"
)

// FileConfig is the single-file configuration schema.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	URL    string `yaml:"url" json:"url"`
	Output string `yaml:"output" json:"output"`
	JSON   string `yaml:"json" json:"json"`
	XLSX   string `yaml:"xlsx" json:"xlsx"`

	PDF struct {
		Path string `yaml:"path" json:"path"`
		Font string `yaml:"font" json:"font"`
	} `yaml:"pdf" json:"pdf"`

	Cookie    string        `yaml:"cookie" json:"cookie"`
	UserAgent string        `yaml:"ua" json:"ua"`
	Timeout   time.Duration `yaml:"timeout" json:"timeout"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool          `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	Copy    bool `yaml:"copy" json:"copy"`
	Watch   bool `yaml:"watch" json:"watch"`
	Verbose bool `yaml:"verbose" json:"verbose"`

	Profile struct {
		Container string   `yaml:"container" json:"container"`
		Stems     []string `yaml:"stems" json:"stems"`
		Option    string   `yaml:"option" json:"option"`
		Direct    []string `yaml:"direct" json:"direct"`
		Hidden    string   `yaml:"hidden" json:"hidden"`
	} `yaml:"profile" json:"profile"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig fills fields of cfg that are still unset (or at their flag
// default) from fc, so explicit flags and env keep precedence.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	setString := func(dst *string, v string) {
		if *dst == "" && v != "" {
			*dst = v
		}
	}
	setString(&cfg.InputPath, fc.Input)
	setString(&cfg.URL, fc.URL)
	setString(&cfg.OutputPath, fc.Output)
	setString(&cfg.JSONPath, fc.JSON)
	setString(&cfg.XLSXPath, fc.XLSX)
	setString(&cfg.PDFPath, fc.PDF.Path)
	setString(&cfg.PDFFont, fc.PDF.Font)
	setString(&cfg.Cookie, fc.Cookie)
	setString(&cfg.CacheDir, fc.Cache.Dir)
	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if (cfg.Timeout == 0 || cfg.Timeout == DefaultTimeout) && fc.Timeout > 0 {
		cfg.Timeout = fc.Timeout
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	cfg.CacheClear = cfg.CacheClear || fc.Cache.Clear
	cfg.Copy = cfg.Copy || fc.Copy
	cfg.Watch = cfg.Watch || fc.Watch
	cfg.Verbose = cfg.Verbose || fc.Verbose

	cfg.Profile = extract.Profile{
		Container: fc.Profile.Container,
		Stems:     fc.Profile.Stems,
		Option:    fc.Profile.Option,
		Direct:    fc.Profile.Direct,
		Hidden:    fc.Profile.Hidden,
	}.Merge(cfg.Profile)
}

// ValidateConfig rejects configurations the pipeline cannot run.
func ValidateConfig(cfg Config) error {
	hasInput := strings.TrimSpace(cfg.InputPath) != ""
	hasURL := strings.TrimSpace(cfg.URL) != ""
	switch {
	case hasInput && hasURL:
		return errors.New("config: input and url are mutually exclusive")
	case !hasInput && !hasURL:
		return errors.New("config: an input file or url is required")
	}
	if cfg.Watch && (!hasInput || cfg.InputPath == "-") {
		return errors.New("config: watch needs an input file")
	}
	if cfg.Timeout < 0 || cfg.CacheMaxAge < 0 {
		return errors.New("config: negative durations are not allowed")
	}
	if cfg.PDFPath != "" && strings.TrimSpace(cfg.PDFFont) == "" {
		return errors.New("config: pdf output needs pdf.font (a TrueType font with CJK glyphs)")
	}
	return nil
}
