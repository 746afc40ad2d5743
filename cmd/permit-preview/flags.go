package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// errUsage marks parse failures the flag package has already reported.
var errUsage = errors.New("usage")

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type cliArgs struct {
	cfgPath         string
	configOverrides stringSlice
	inPath          string
	summary         bool
	plain           bool
	view            bool
	saveConfig      bool
}

func newFlagSet(name string) (*flag.FlagSet, *cliArgs) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	args := &cliArgs{}

	fs.StringVar(&args.cfgPath, "config", "", "Path to config file (default ~/.permit/config.toml)")
	fs.Var(&args.configOverrides, "c", "Override config value key=value (repeatable)")
	fs.StringVar(&args.inPath, "in", "", "Read the hook payload from file instead of stdin")
	fs.BoolVar(&args.summary, "summary", false, "Print a one-line summary only")
	fs.BoolVar(&args.plain, "plain", false, "Print without ANSI styling")
	fs.BoolVar(&args.view, "view", false, "Open the interactive viewer")
	fs.BoolVar(&args.saveConfig, "save-config", false, "Write the config with -c overrides applied back to -config and exit")

	return fs, args
}

func parseArgs(argv []string, output io.Writer) (*cliArgs, error) {
	fs, args := newFlagSet("permit-preview")
	fs.SetOutput(output)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if args.saveConfig && (args.view || args.summary || args.plain || args.inPath != "") {
		return nil, errors.New("-save-config cannot be combined with output flags or -in")
	}
	if args.view && (args.summary || args.plain) {
		return nil, errors.New("-view cannot be combined with -summary or -plain")
	}
	return args, nil
}
