package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/quizexport/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath  string
		envFiles    string
		inputPath   string
		pageURL     string
		outputPath  string
		jsonPath    string
		xlsxPath    string
		pdfPath     string
		pdfFont     string
		cookie      string
		userAgent   string
		timeout     time.Duration
		cacheDir    string
		cacheMaxAge time.Duration
		cacheClear  bool
		copyOut     bool
		watchInput  bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to YAML or JSON config file")
	flag.StringVar(&envFiles, "env", ".env", "Comma-separated dotenv files to load before reading env vars")
	flag.StringVar(&inputPath, "input", "", "Saved quiz page (HTML); '-' reads stdin")
	flag.StringVar(&pageURL, "url", "", "Fetch the quiz page from this URL instead of a file")
	flag.StringVar(&outputPath, "output", "", "Write the text report here instead of stdout")
	flag.StringVar(&jsonPath, "json", "", "Also write the questions as JSON to this path")
	flag.StringVar(&xlsxPath, "xlsx", "", "Also write the questions as an Excel sheet to this path")
	flag.StringVar(&pdfPath, "pdf", "", "Also render the report as PDF to this path (needs -pdf.font)")
	flag.StringVar(&pdfFont, "pdf.font", "", "TrueType font with CJK glyphs used for PDF output")
	flag.StringVar(&cookie, "cookie", "", "Cookie header sent when fetching -url (session of a logged-in user)")
	flag.StringVar(&userAgent, "ua", app.DefaultUserAgent, "User-Agent sent when fetching -url")
	flag.DurationVar(&timeout, "timeout", app.DefaultTimeout, "Per-request timeout when fetching -url")
	flag.StringVar(&cacheDir, "cache.dir", "", "Directory for cached page snapshots (empty disables)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Purge cached pages older than this (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear the page cache before fetching")
	flag.BoolVar(&copyOut, "copy", false, "Copy the report to the clipboard")
	flag.BoolVar(&watchInput, "watch", false, "Re-export every time the -input file changes")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(app.Version())
		return
	}
	if err := app.LoadEnvFiles(splitList(envFiles)...); err != nil {
		log.Warn().Err(err).Msg("load env files")
	}

	cfg := app.Config{
		InputPath:   inputPath,
		URL:         pageURL,
		OutputPath:  outputPath,
		JSONPath:    jsonPath,
		XLSXPath:    xlsxPath,
		PDFPath:     pdfPath,
		PDFFont:     pdfFont,
		Cookie:      cookie,
		UserAgent:   userAgent,
		Timeout:     timeout,
		CacheDir:    cacheDir,
		CacheMaxAge: cacheMaxAge,
		CacheClear:  cacheClear,
		Copy:        copyOut,
		Watch:       watchInput,
		Verbose:     verbose,
	}
	// Precedence: flags > env > config file.
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("load config")
			os.Exit(1)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to the process exit status: 2 when the page had no
// questions, 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrNoQuestions):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, cfg app.Config) error {
	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}
