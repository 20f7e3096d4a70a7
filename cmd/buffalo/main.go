// Package main is the entry point for the buffalo editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/buffalo/internal/app"
	"github.com/dshills/buffalo/internal/config"
	"github.com/dshills/buffalo/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	configPath string
	logLevel   string
	logFile    string
	store      string
	path       string

	readOnly    bool
	showVersion bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return app.ExitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return app.ExitCode(err)
	}
	if opts.showVersion {
		fmt.Printf("buffalo %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return app.ExitOK
	}

	cfg, err := opts.loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return app.ExitFailure
	}

	logger, closeLog, err := newLogger(opts.logFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return app.ExitFailure
	}
	defer closeLog()
	app.SetLogger(logger)

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return app.ExitFailure
	}

	// The file is opened before the terminal is taken over so that open
	// errors reach stderr.
	application, err := app.New(term, app.Options{
		Path:     opts.path,
		Config:   cfg,
		Logger:   logger,
		ReadOnly: opts.readOnly,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return app.ExitCode(err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("close: %v", err)
		}
	}()

	if watchPath := configWatchPath(cfg, opts); watchPath != "" {
		configLog := logger.WithComponent("config")
		reloader, err := config.Watch(watchPath,
			func(c config.Config) {
				c, err := opts.resolve(c)
				if err != nil {
					configLog.Warn("reload: %v", err)
					return
				}
				application.ApplyConfig(c)
			},
			func(err error) { configLog.Warn("reload: %v", err) },
			config.WithoutValidation(),
		)
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
		} else {
			configLog.Debug("watching %s", reloader.Path())
			defer reloader.Close()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		if _, ok := <-signals; ok {
			application.Shutdown()
		}
	}()

	if err := application.Run(); err != nil {
		logger.Error("%v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return app.ExitCode(err)
	}
	return app.ExitOK
}

// parseFlags parses args. Usage errors wrap app.ErrUsage.
func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var opts cliOptions
	var showHelp bool

	fs := flag.NewFlagSet("buffalo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file (default ./.buffalorc, then ~/.buffalorc)")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFile, "log-file", "", "Append logs to this file")
	fs.StringVar(&opts.store, "store", "", "Line storage (array, gap, rope)")
	fs.BoolVar(&opts.readOnly, "readonly", false, "Open the file for viewing only")
	fs.BoolVar(&opts.readOnly, "R", false, "Open the file for viewing only (shorthand)")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&showHelp, "help", false, "Show help message")
	fs.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "buffalo - a small terminal text editor\n\n")
		fmt.Fprintf(stderr, "Usage: buffalo [options] <file>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nKeys:\n")
		fmt.Fprintf(stderr, "  Ctrl-S save   Ctrl-Q quit   Ctrl-B build   Ctrl-T test\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, err
		}
		return opts, fmt.Errorf("%w: %v", app.ErrUsage, err)
	}

	if showHelp {
		fs.Usage()
		return opts, flag.ErrHelp
	}
	if opts.showVersion {
		return opts, nil
	}

	if opts.logLevel != "" && !app.ValidLogLevel(opts.logLevel) {
		return opts, fmt.Errorf("%w: invalid log level %q (must be debug, info, warn, or error)", app.ErrUsage, opts.logLevel)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return opts, fmt.Errorf("%w: expected exactly one file, got %d", app.ErrUsage, fs.NArg())
	}
	opts.path = fs.Arg(0)

	return opts, nil
}

// loadConfig reads the settings file and environment, applies the command
// line on top and validates the result.
func (o cliOptions) loadConfig() (config.Config, error) {
	loadOpts := []config.Option{config.WithoutValidation()}
	if o.configPath != "" {
		loadOpts = append(loadOpts, config.WithPath(o.configPath))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return cfg, fmt.Errorf("failed to load configuration: %w", err)
	}
	return o.resolve(cfg)
}

// resolve applies the command line to cfg and validates the result.
func (o cliOptions) resolve(cfg config.Config) (config.Config, error) {
	cfg = o.override(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// override applies command line settings on top of cfg.
func (o cliOptions) override(cfg config.Config) config.Config {
	if o.store != "" {
		cfg.Store = o.store
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg
}

// configWatchPath returns the settings file to watch for changes.
func configWatchPath(cfg config.Config, o cliOptions) string {
	if cfg.Path != "" {
		return cfg.Path
	}
	return o.configPath
}

// newLogger builds the process logger. Without a log file output is
// discarded, since the terminal owns stdout and stderr.
func newLogger(path, level string) (*app.Logger, func(), error) {
	cfg := app.DefaultLoggerConfig()
	cfg.Level = app.ParseLogLevel(level)

	if path == "" {
		return app.NewLogger(cfg), func() {}, nil
	}

	f, err := app.OpenLogFile(path)
	if err != nil {
		return nil, nil, err
	}
	cfg.Output = f
	return app.NewLogger(cfg), func() { _ = f.Close() }, nil
}
