// FILE: lixenwraith/xrmconfig/cmd/xrmdump/main.go

// Command xrmdump resolves the launcher configuration the same way the
// launcher does and prints the result.
//
//	xrmdump -r ~/.config/rofi/config -- -lines 3 -fg '#FFFFFF'
//
// Launcher flags go after "--". Extra launcher flags may also be given in
// XRMDUMP_ARGS using shell quoting.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/xrmconfig"
	"github.com/lixenwraith/xrmconfig/xrdb"
)

// EnvArgs holds extra launcher flags, appended after the command line ones.
const EnvArgs = "XRMDUMP_ARGS"

type flags struct {
	resources []string
	format    string
	prefix    string
	verbose   bool
	json      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "xrmdump [flags] [-- launcher flags]",
		Short: "Print the resolved launcher configuration",
		Long: `xrmdump loads the launcher options from the X resource database and
the launcher command line, then prints one line per option.

Resource files are layered in the order given; later files win. Without
--resources the usual locations are searched ($XENVIRONMENT, the XDG config
directories, ~/.Xresources, ~/.Xdefaults).`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args)
		},
	}

	cmd.Flags().StringSliceVarP(&f.resources, "resources", "r", nil, "Resource file(s) to load")
	cmd.Flags().StringVar(&f.format, "format", string(xrdb.FormatAuto), "Resource file format (auto, xresources, toml, yaml, json)")
	cmd.Flags().StringVar(&f.prefix, "prefix", xrmconfig.DefaultPrefix, "Resource name and class prefix")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
	cmd.Flags().BoolVar(&f.json, "json", false, "Output logs in JSON format")
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func run(cmd *cobra.Command, f flags, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), f.verbose, f.json)

	src, err := resourceSource(f)
	if err != nil {
		return err
	}

	launcherArgs, err := withEnvArgs(args)
	if err != nil {
		return err
	}

	settings := xrmconfig.DefaultSettings()
	var combiModi string
	sep := byte('\n')

	reg, err := xrmconfig.NewBuilder().
		WithSettings(settings).
		WithDynamic(xrmconfig.TypeString, "combi-modi", &combiModi).
		WithDynamic(xrmconfig.TypeChar, "sep", &sep).
		WithPrefix(f.prefix).
		WithResources(src).
		WithArgs(launcherArgs).
		WithLogger(logger).
		WithReleaseHook(func(key, value string) {
			logger.Debug("Released option value", "key", key, "value", value)
		}).
		Build()
	if err != nil {
		return err
	}
	defer reg.Close()

	return reg.Dump(cmd.OutOrStdout())
}

// resourceSource layers the --resources files, or falls back to discovery.
func resourceSource(f flags) (xrmconfig.ResourceSource, error) {
	format, err := xrdb.ParseFormat(f.format)
	if err != nil {
		return nil, err
	}

	if len(f.resources) == 0 {
		src := xrdb.Discover(f.prefix)
		src.Format = format
		return src, nil
	}

	sources := make(xrdb.MultiSource, 0, len(f.resources))
	for _, path := range f.resources {
		sources = append(sources, xrdb.FileSource{Path: path, Format: format})
	}
	return sources, nil
}

func withEnvArgs(args []string) ([]string, error) {
	extra := os.Getenv(EnvArgs)
	if extra == "" {
		return args, nil
	}
	words, err := shellquote.Split(extra)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", EnvArgs, err)
	}
	return append(append([]string(nil), args...), words...), nil
}

func newLogger(w io.Writer, verbose, jsonOutput bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
