package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/analytics"
	"folio/internal/config"
	"folio/internal/mailer"
	"folio/internal/submit"
	"folio/internal/ui"
)

// options holds the parsed CLI flags.
type options struct {
	configPath string
	logFile    string
	theme      string
	noIntro    bool
	dryRun     bool
	printCfg   bool
}

func parseFlags() options {
	var opts options

	defaultConfig := os.Getenv("FOLIO_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "folio.yaml"
	}
	flag.StringVar(&opts.configPath, "config", defaultConfig, "path to the site configuration (env FOLIO_CONFIG)")
	flag.StringVar(&opts.logFile, "log-file", "", "write logs to this file (default: discard)")
	flag.StringVar(&opts.theme, "theme", "", "initial theme: dark or light")
	flag.BoolVar(&opts.noIntro, "no-intro", false, "skip the connecting screen")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "accept form submissions without sending them")
	flag.BoolVar(&opts.printCfg, "print-config", false, "print an example configuration and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: folio [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Folio renders an interactive portfolio page in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

// loadConfig applies flag overrides on top of the file and environment.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.noIntro {
		cfg.Motion.Intro = false
	}
	return cfg, cfg.Validate()
}

// newSender picks the dispatcher for form submissions.
func newSender(cfg config.Config, dryRun bool) submit.Sender {
	if dryRun || cfg.Email.Endpoint == "" {
		log.Printf("mailer: offline, submissions are echoed")
		return mailer.Echo{Delay: 600 * time.Millisecond}
	}
	log.Printf("mailer: posting to %s", cfg.Email.Endpoint)
	return mailer.NewClient(cfg.Email.Endpoint, cfg.Email.Timeout)
}

func run(opts options) error {
	if opts.printCfg {
		_, err := os.Stdout.Write(config.Example())
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// Logging must never reach the terminal while the UI owns it.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "folio")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	tracker, err := analytics.NewOTelTracker(ctx)
	if err != nil {
		return fmt.Errorf("analytics: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := analytics.Shutdown(sctx, tracker); err != nil {
			log.Printf("analytics: shutdown: %v", err)
		}
	}()

	model := ui.NewAppModel(cfg, ui.AppDeps{
		Sender:  newSender(cfg, opts.dryRun),
		Tracker: tracker,
	}).AsTeaModel()
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	_, err = p.Run()
	return err
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}
