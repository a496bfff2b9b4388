package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mensafeed"
	"github.com/fwojciec/mensafeed/dateparser"
	"github.com/fwojciec/mensafeed/etree"
	"github.com/fwojciec/mensafeed/fs"
	"github.com/fwojciec/mensafeed/goquery"
	mensahttp "github.com/fwojciec/mensafeed/http"
	"github.com/fwojciec/mensafeed/ical"
	"github.com/fwojciec/mensafeed/rod"
	mensaslog "github.com/fwojciec/mensafeed/slog"
	"github.com/fwojciec/mensafeed/yaml"
	"github.com/sethvargo/go-envconfig"
)

// Version is set at build time.
var Version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Lookuper resolves environment variables. Defaults to the process environment.
	Lookuper envconfig.Lookuper

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Fetcher replaces the network fetcher for end-to-end testing.
	Fetcher mensafeed.Fetcher

	// Weeks replaces the week heading resolver. Defaults to dateparser.
	Weeks mensafeed.WeekResolver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Lookuper: envconfig.OsLookuper(),
		Now:      time.Now,
	}
}

// env is the configuration read from the environment.
type env struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// LogFormat is either text or json.
	LogFormat string `env:"LOG_FORMAT, default=text"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mensafeed"),
		kong.Description("Generate OpenMensa feeds from a canteen's weekly menu page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mensafeed --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	lookuper := m.Lookuper
	if lookuper == nil {
		lookuper = envconfig.OsLookuper()
	}
	var e env
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &e, Lookuper: lookuper}); err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}
	logger, err := newLogger(e, stderr)
	if err != nil {
		return err
	}

	now := m.Now
	if now == nil {
		now = time.Now
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Now:    now,
	}

	var source *SourceFlags
	switch kongCtx.Command() {
	case "default-config":
		return kongCtx.Run(deps)
	case "generate":
		source = &cli.Generate.SourceFlags
	case "preview":
		source = &cli.Preview.SourceFlags
	}

	cfg, err := yaml.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", mensafeed.ErrorMessage(err))
		return err
	}
	if source.URL != "" {
		cfg.SourceURL = source.URL
	}
	deps.Config = cfg
	origin := cfg.SourceURL
	if source.Input != "" {
		origin = source.Input
	}
	deps.Ctx = mensaslog.Ctx(ctx,
		slog.String("canteen", cfg.Canteen.Name),
		slog.String("source", origin),
	)

	// Wire the page source
	if source.Input == "" {
		if cfg.SourceURL == "" {
			return mensafeed.Errorf(mensafeed.EINVALID, "no menu page URL configured; use --url or --input")
		}
		fetcher := m.Fetcher
		if fetcher == nil {
			if fetcher, err = newFetcher(source); err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
		}
		deps.Fetcher = mensaslog.NewLoggingFetcher(fetcher, logger)
		defer deps.Fetcher.Close()
	}

	var opts []goquery.Option
	if source.DefaultCategory != "none" {
		opts = append(opts, goquery.WithDefaultCategory(mensafeed.Category(source.DefaultCategory)))
	}
	deps.Extractor = mensaslog.NewLoggingExtractor(goquery.NewExtractor(opts...), logger)
	deps.Weeks = m.Weeks
	if deps.Weeks == nil {
		deps.Weeks = dateparser.NewWeekResolver()
	}

	if kongCtx.Command() == "generate" {
		var builder mensafeed.FeedBuilder = etree.NewFeedBuilder()
		if cli.Generate.Format == "ics" {
			builder = ical.NewFeedBuilder()
		}
		deps.Builder = mensaslog.NewLoggingFeedBuilder(builder, logger)

		output := outputPath(cli.Generate.Output, cfg.Output, cli.Generate.Format)
		var writer mensafeed.FeedWriter
		if output == "-" {
			writer = fs.NewStreamWriter(stdout)
		} else {
			writer = fs.NewFileWriter(output)
		}
		deps.Writer = mensaslog.NewLoggingFeedWriter(writer, output, logger)
	}

	return kongCtx.Run(deps)
}

func newFetcher(source *SourceFlags) (mensafeed.Fetcher, error) {
	if source.Render {
		return rod.NewFetcher(rod.WithFetchTimeout(source.Timeout))
	}
	return mensahttp.NewFetcher(mensahttp.WithTimeout(source.Timeout)), nil
}

// outputPath picks the flag over the configured path. A configured path
// gets the extension of the chosen format.
func outputPath(flag, configured, format string) string {
	if flag != "" {
		return flag
	}
	if configured == "" || configured == "-" {
		return "-"
	}
	if format == "ics" {
		return strings.TrimSuffix(configured, filepath.Ext(configured)) + ".ics"
	}
	return configured
}

func newLogger(e env, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", e.LogLevel)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch e.LogFormat {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: use text or json", e.LogFormat)
	}
	return slog.New(mensaslog.NewContextHandler(handler)), nil
}
