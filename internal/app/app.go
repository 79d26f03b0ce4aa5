// Package app wires snapshot loading, extraction and report output into one
// export run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/quizexport/internal/cache"
	"github.com/hyperifyio/quizexport/internal/clipboard"
	"github.com/hyperifyio/quizexport/internal/extract"
	"github.com/hyperifyio/quizexport/internal/fetch"
	"github.com/hyperifyio/quizexport/internal/report"
	"github.com/hyperifyio/quizexport/internal/watch"
)

// ErrNoQuestions is returned when the snapshot has no visible question
// container. No report is written in that case.
var ErrNoQuestions = errors.New("no question containers found")

type App struct {
	cfg       Config
	extractor extract.Extractor
	fetcher   *fetch.Client
	copy      func(text string) (string, error)
}

func New(ctx context.Context, cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	profile := extract.DefaultProfile().Merge(cfg.Profile)
	a := &App{
		cfg:       cfg,
		extractor: extract.ProfileExtractor{Profile: profile},
		copy: func(text string) (string, error) {
			return clipboard.Copy(text, clipboard.Default()...)
		},
	}

	if cfg.URL != "" {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		fc := &fetch.Client{UserAgent: cfg.UserAgent, MaxAttempts: 3, PerRequestTimeout: timeout}
		if cfg.Cookie != "" {
			fc.Header = http.Header{"Cookie": {cfg.Cookie}}
		}
		if cfg.CacheDir != "" {
			pc := &cache.PageCache{Dir: cfg.CacheDir, StrictPerms: true}
			if cfg.CacheClear {
				if err := pc.Clear(); err != nil {
					log.Warn().Err(err).Str("dir", cfg.CacheDir).Msg("cache clear failed")
				}
			}
			if n, err := pc.Purge(cfg.CacheMaxAge); err != nil {
				log.Warn().Err(err).Msg("cache purge failed")
			} else if n > 0 {
				log.Debug().Int("removed", n).Msg("purged cached pages")
			}
			fc.Cache = pc
		}
		a.fetcher = fc
	}
	return a, nil
}

func (a *App) Close() {
	// nothing yet
}

// Run exports once, or keeps exporting on every change of the input file
// when watch mode is on.
func (a *App) Run(ctx context.Context) error {
	if !a.cfg.Watch {
		_, err := a.Export(ctx)
		return err
	}
	if _, err := a.Export(ctx); err != nil && !errors.Is(err, ErrNoQuestions) {
		log.Warn().Err(err).Msg("export failed")
	}
	log.Info().Str("path", a.cfg.InputPath).Msg("watching for changes")
	w := &watch.Watcher{Path: a.cfg.InputPath}
	return w.Run(ctx, func(ctx context.Context) {
		if _, err := a.Export(ctx); err != nil && !errors.Is(err, ErrNoQuestions) {
			log.Warn().Err(err).Msg("export failed")
		}
	})
}

// Export runs the pipeline once over a fresh snapshot and writes every
// configured output. It returns the extracted questions.
func (a *App) Export(ctx context.Context) ([]extract.Question, error) {
	input, contentType, err := a.load(ctx)
	if err != nil {
		return nil, err
	}
	questions := a.extractor.Extract(input, contentType)
	if len(questions) == 0 {
		log.Warn().Msg("no question containers found")
		return nil, ErrNoQuestions
	}
	unknown := 0
	for _, q := range questions {
		if q.Answer == "" {
			unknown++
		}
	}
	log.Info().Int("questions", len(questions)).Int("unknown_answers", unknown).Msg("extracted questions")

	text := report.Build(questions)
	if err := a.writeReport(text); err != nil {
		return questions, err
	}
	if err := a.writeExtras(questions, text); err != nil {
		return questions, err
	}
	if a.cfg.Copy {
		if name, err := a.copy(text); err != nil {
			log.Warn().Err(err).Msg("copy to clipboard failed")
		} else {
			log.Info().Str("mechanism", name).Msg("copied report to clipboard")
		}
	}
	return questions, nil
}

func (a *App) load(ctx context.Context) ([]byte, string, error) {
	switch {
	case a.cfg.URL != "":
		page, err := a.fetcher.Get(ctx, a.cfg.URL)
		if err != nil {
			return nil, "", fmt.Errorf("fetch %s: %w", a.cfg.URL, err)
		}
		log.Debug().Str("url", a.cfg.URL).Bool("from_cache", page.FromCache).Int("bytes", len(page.Body)).Msg("fetched page")
		return page.Body, page.ContentType, nil
	case a.cfg.InputPath == "-":
		b, err := io.ReadAll(a.cfg.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return b, "", nil
	default:
		b, err := os.ReadFile(a.cfg.InputPath)
		if err != nil {
			return nil, "", fmt.Errorf("read input: %w", err)
		}
		return b, "", nil
	}
}

func (a *App) writeReport(text string) error {
	if a.cfg.OutputPath == "" {
		if _, err := io.WriteString(a.cfg.Stdout, text); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(a.cfg.OutputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).Msg("wrote report")
	return nil
}

func (a *App) writeExtras(questions []extract.Question, text string) error {
	if a.cfg.JSONPath != "" {
		f, err := os.Create(a.cfg.JSONPath)
		if err != nil {
			return fmt.Errorf("create json: %w", err)
		}
		werr := report.WriteJSON(f, questions)
		if cerr := f.Close(); werr == nil {
			werr = cerr
		}
		if werr != nil {
			return werr
		}
		log.Info().Str("out", a.cfg.JSONPath).Msg("wrote json")
	}
	if a.cfg.XLSXPath != "" {
		if err := report.WriteXLSX(a.cfg.XLSXPath, questions); err != nil {
			return err
		}
		log.Info().Str("out", a.cfg.XLSXPath).Msg("wrote xlsx")
	}
	if a.cfg.PDFPath != "" {
		if err := report.WritePDF(text, a.cfg.PDFPath, a.cfg.PDFFont); err != nil {
			return fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf")
	}
	return nil
}
