package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"permit/internal/config"
	"permit/internal/logger"
	"permit/internal/preview"
	"permit/internal/render"
	"permit/internal/tui"
)

var log = logger.Named("cli")

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// realMain returns the process exit code so deferred cleanup runs on every path.
func realMain(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cli, err := parseArgs(argv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		if errors.Is(err, errUsage) {
			return 2
		}
		fmt.Fprintf(stderr, "permit-preview: %v\n", err)
		return 2
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "permit-preview: failed to load config: %v\n", err)
		return 1
	}
	logger.Configure(cfg.LogLevel)
	if logFile, _, err := logger.SetupFile(cfg.LogPath); err != nil {
		fmt.Fprintf(stderr, "permit-preview: failed to initialize log file: %v\n", err)
		logger.Discard()
	} else {
		defer logFile.Close()
	}

	if cli.saveConfig {
		if err := config.Save(cli.cfgPath, cfg); err != nil {
			log.Errorf("save config: %v", err)
			fmt.Fprintf(stderr, "permit-preview: save config: %v\n", err)
			return 1
		}
		log.WithField("path", cfg.Source).Info("config saved")
		return 0
	}

	if err := run(cli, cfg, stdin, stdout); err != nil {
		log.Errorf("preview failed: %v", err)
		fmt.Fprintf(stderr, "permit-preview: %v\n", err)
		return 1
	}
	return 0
}

func loadConfig(cli *cliArgs) (config.Config, error) {
	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return cfg, err
	}
	return config.ApplyKVOverrides(cfg, []string(cli.configOverrides)), nil
}

func run(cli *cliArgs, cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	inv, err := readInvocation(cli.inPath, stdin)
	if err != nil {
		return err
	}
	p, err := preview.New(preview.Options{SummaryWidth: cfg.SummaryWidth}).Build(inv)
	if err != nil {
		return err
	}
	palette := render.DefaultPalette(cfg.Theme).With(cfg.Palette)

	switch {
	case cli.summary:
		_, err = fmt.Fprintln(stdout, p.Summary)
	case cli.plain:
		_, err = fmt.Fprintln(stdout, p.Plain())
	case cli.view:
		var res tui.Result
		res, err = tui.Run(tui.Options{Preview: p, Palette: palette})
		if err == nil {
			log.WithField("request_id", p.RequestID).Infof("viewer closed copied=%t", res.Copied)
		}
	default:
		_, err = fmt.Fprintln(stdout, p.ANSI(palette))
	}
	return err
}

func readInvocation(path string, stdin io.Reader) (preview.Invocation, error) {
	if path == "" {
		return preview.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return preview.Invocation{}, fmt.Errorf("open payload: %w", err)
	}
	defer f.Close()
	return preview.Decode(f)
}
