package app

import (
	"io"
	"time"

	"github.com/hyperifyio/quizexport/internal/extract"
	"github.com/hyperifyio/quizexport/internal/fetch"
)

// Defaults shared by the CLI flags and the config overlays.
const (
	DefaultTimeout   = 15 * time.Second
	DefaultUserAgent = fetch.DefaultUserAgent
)

// Config holds runtime configuration for the application.
type Config struct {
	// Source snapshot: a saved page file ("-" for stdin) or a live URL.
	InputPath string
	URL       string

	// Text report destination; empty prints to Stdout.
	OutputPath string
	JSONPath   string
	XLSXPath   string
	PDFPath    string
	PDFFont    string

	// Fetching
	Cookie    string
	UserAgent string
	Timeout   time.Duration

	// Page cache
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	// Behavior
	Copy    bool
	Watch   bool
	Verbose bool

	// Profile overrides the default selectors field by field.
	Profile extract.Profile

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}
