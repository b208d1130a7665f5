package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/unfurl"
	"github.com/fwojciec/unfurl/batch"
	"github.com/fwojciec/unfurl/extract"
	unfurlhttp "github.com/fwojciec/unfurl/http"
	"github.com/fwojciec/unfurl/rod"
	unfurlslog "github.com/fwojciec/unfurl/slog"
	"github.com/fwojciec/unfurl/sqlite"
	"github.com/fwojciec/unfurl/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unfurl"),
		kong.Description("Extract link previews (title, description, image, domain) from web pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.Sitemap && len(cli.URLs) != 1 {
		return fmt.Errorf("--sitemap takes exactly one site URL")
	}

	filter, err := buildFilter(cli.Include, cli.Exclude)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	var fetcher unfurl.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rodFetcher
	} else {
		fetcher = unfurlhttp.NewFetcher(unfurlhttp.WithTimeout(cli.Timeout))
	}
	loggedFetcher := unfurlslog.NewLoggingFetcher(fetcher, logger)
	defer loggedFetcher.Close()

	engine := extract.NewEngine()
	registry := extract.NewRegistry(engine)
	registry.Register(extract.NewYouTubeProfile(engine))

	var cache unfurl.PreviewCache
	if cli.DB != "" {
		db := sqlite.NewDB(cli.DB)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open cache database: %w", err)
		}
		defer db.Close()
		cache = unfurlslog.NewLoggingCache(sqlite.NewPreviewCache(db, sqlite.WithTTL(cli.TTL)), logger)
	}

	var limiter unfurl.DomainLimiter
	if cli.Rate > 0 {
		limiter = batch.NewDomainLimiter(cli.Rate)
	}

	deps.Previewer = &batch.Previewer{
		Fetcher:     loggedFetcher,
		Registry:    registry,
		Cache:       cache,
		Limiter:     limiter,
		Enricher:    trafilatura.NewFallback(),
		Concurrency: cli.Concurrency,
	}
	deps.Sitemaps = unfurlslog.NewLoggingSitemapService(unfurlhttp.NewSitemapService(nil), logger)

	cmd := &PreviewCmd{
		URLs:    cli.URLs,
		Sitemap: cli.Sitemap,
		JSON:    cli.JSON,
		Filter:  filter,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	JSON        bool          `help:"Emit previews as a JSON array"`
	Sitemap     bool          `help:"Treat the URL as a site root and preview every sitemap URL"`
	Include     []string      `help:"Keep only sitemap URLs matching this pattern (repeatable)"`
	Exclude     []string      `help:"Drop sitemap URLs matching this pattern (repeatable)"`
	Browser     bool          `help:"Render pages in a headless browser before extraction"`
	DB          string        `help:"Path to a SQLite preview cache"`
	TTL         time.Duration `default:"2h" help:"Cache entry lifetime"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
	Rate        float64       `default:"2" help:"Max requests per second per domain (0 disables limiting)"`
	Verbose     bool          `short:"v" help:"Log operations to stderr"`
	URLs        []string      `arg:"" required:"" name:"url" help:"Page URLs to preview (a single site URL with --sitemap)"`
}

// buildFilter compiles include/exclude patterns into a URL filter.
// Returns nil when no patterns were given.
func buildFilter(include, exclude []string) (*unfurl.URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}

	filter := &unfurl.URLFilter{}
	for _, pattern := range include {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	for _, pattern := range exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		filter.Exclude = append(filter.Exclude, re)
	}
	return filter, nil
}
