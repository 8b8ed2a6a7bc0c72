package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/healthpulse"
	"github.com/fwojciec/healthpulse/bloom"
	"github.com/fwojciec/healthpulse/poll"
	"github.com/fwojciec/healthpulse/sqlite"
	"github.com/fwojciec/healthpulse/yaml"
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
	// Database path. Set before calling Run(). Overridden by --db.
	DBPath string

	// Config file path; empty means built-in defaults. Overridden by --config.
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	FeedService    healthpulse.FeedService
	ArticleService healthpulse.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("healthpulse"),
		kong.Description("Poll health news feeds and extract article content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'healthpulse --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.Verbose)

	configPath := m.ConfigPath
	if cli.Config != "" {
		configPath = cli.Config
	}
	cfg, err := yaml.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set HEALTHPULSE_CONFIG or --config to use a different config file\n")
		return fmt.Errorf("failed to load config %q: %w", configPath, err)
	}
	deps.Config = cfg

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set HEALTHPULSE_DB or --db to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.FeedService = sqlite.NewFeedService(m.DB)
	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.Feeds = m.FeedService
	deps.Articles = m.ArticleService

	p, err := newPipeline(cfg, deps.Logger)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}
	defer p.Close()

	deps.Resolver = p.Resolver
	deps.Extractor = p.Extractor
	deps.Parser = p.Parser
	deps.Converter = p.Converter
	deps.Seen = bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFPRate)
	deps.Poller = &poll.Poller{
		Feeds:    m.FeedService,
		Articles: m.ArticleService,
		Parser:   p.Parser,
		Seen:     deps.Seen,
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("HEALTHPULSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "healthpulse.db"
	}
	dir := filepath.Join(home, ".healthpulse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "healthpulse.db")
}

// defaultConfigPath returns HEALTHPULSE_CONFIG, or ~/.healthpulse/config.yaml
// when that file exists.
func defaultConfigPath() string {
	if path := os.Getenv("HEALTHPULSE_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".healthpulse", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
