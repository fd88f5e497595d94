package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ecotab"
	"github.com/fwojciec/ecotab/crawl"
	"github.com/fwojciec/ecotab/fred"
	"github.com/fwojciec/ecotab/fs"
	"github.com/fwojciec/ecotab/goquery"
	"github.com/fwojciec/ecotab/html"
	"github.com/fwojciec/ecotab/htmltomarkdown"
	ecohttp "github.com/fwojciec/ecotab/http"
	"github.com/fwojciec/ecotab/rod"
	ecoslog "github.com/fwojciec/ecotab/slog"
	"github.com/fwojciec/ecotab/sqlite"
	"github.com/fwojciec/ecotab/trafilatura"
	"github.com/fwojciec/ecotab/try"
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
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database holding page snapshots. Opened only by commands that
	// read or store snapshots.
	DB *sqlite.DB

	// Snapshot service for end-to-end testing.
	SnapshotService ecotab.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ecotab"),
		kong.Description("Extract tables from the FRED and TRY plant trait catalogs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ecotab --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := strings.Fields(kongCtx.Command())[0]

	logger := newLogger(stderr, cli.Verbose)
	httpOpts := []ecohttp.Option{
		ecohttp.WithTimeout(cli.Timeout),
		ecohttp.WithInsecureSkipVerify(cli.Insecure),
	}

	var base ecotab.Fetcher = ecohttp.NewFetcher(httpOpts...)
	if cli.Browser {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		base = browser
	}
	fetcher := ecoslog.NewLoggingFetcher(base, logger)
	defer fetcher.Close()

	deps.Logger = logger
	deps.Fetcher = fetcher
	deps.Variants = &crawl.VariantFetcher{
		Fetcher:     fetcher,
		Limiter:     crawl.NewHostLimiter(cli.RateLimit),
		Concurrency: crawl.DefaultConcurrency,
		RetryDelays: crawl.DefaultRetryDelays(),
		Logger:      logger,
	}
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Extractor = trafilatura.NewExtractor()
	deps.Exporter = fs.NewExporter(logger)
	deps.FRED = fred.NewParser(html.NewTokenizer(), goquery.NewTextExtractor())
	deps.TRY = try.NewParser(html.NewTokenizer())

	if usesSnapshots(command, args) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set ECOTAB_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = ecoslog.NewLoggingSnapshotService(sqlite.NewSnapshotService(m.DB), logger)
		deps.Snapshots = m.SnapshotService
	}

	if command == "essdive" {
		token, err := cli.Essdive.token()
		if err != nil {
			return err
		}
		deps.Packages = ecohttp.NewEssdiveClient(append(httpOpts,
			ecohttp.WithBaseURL(cli.Essdive.BaseURL),
			ecohttp.WithToken(token),
		)...)
	}

	return kongCtx.Run(deps)
}

// usesSnapshots reports whether the command reads or stores snapshots and
// so needs the database.
func usesSnapshots(command string, args []string) bool {
	if command == "snapshots" {
		return true
	}
	for _, arg := range args {
		if arg == "--save" || arg == "--snapshot" ||
			strings.HasPrefix(arg, "--save=") || strings.HasPrefix(arg, "--snapshot=") {
			return true
		}
	}
	return false
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("ECOTAB_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ecotab.db"
	}
	dir := filepath.Join(home, ".ecotab")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ecotab.db")
}
