package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/handiism/playlist-filter/internal/config"
	"github.com/handiism/playlist-filter/internal/pipeline"
	"github.com/spf13/cobra"
)

type options struct {
	sourceURLs    []string
	groupKeywords []string
	output        string
	configPath    string
	timeout       time.Duration
	verbose       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "playlist-filter",
		Short:         "Filter an M3U playlist by group-title keywords",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.Context(), settings, opts.verbose, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.sourceURLs, "source-url", nil, "Source M3U URL. Can be provided multiple times.")
	flags.StringArrayVar(&opts.groupKeywords, "group-keyword", nil, "group-title keyword to keep. Can be provided multiple times.")
	flags.StringVar(&opts.output, "output", "playlist.m3u", "Output playlist file path.")
	flags.StringVar(&opts.configPath, "config", "", "Path to JSON config file")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Timeout for each source request")
	flags.BoolVar(&opts.verbose, "verbose", false, "Show progress output on stderr")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// loadSettings starts from the defaults or the config file and applies
// every flag that was set explicitly.
func loadSettings(cmd *cobra.Command, opts *options) (*config.Settings, error) {
	settings := config.DefaultSettings()
	if opts.configPath != "" {
		var err error
		settings, err = config.Load(opts.configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("source-url") {
		settings.SourceURLs = opts.sourceURLs
	}
	if flags.Changed("group-keyword") {
		settings.GroupKeywords = opts.groupKeywords
	}
	if flags.Changed("output") || opts.configPath == "" {
		settings.OutputPath = opts.output
	}
	if flags.Changed("timeout") {
		settings.SetTimeout(opts.timeout)
	}

	return settings, settings.Validate()
}

func run(ctx context.Context, settings *config.Settings, verbose bool, stdout, stderr io.Writer) error {
	manager := pipeline.NewManager(settings, func(event pipeline.ProgressEvent) {
		switch event.Level {
		case pipeline.LevelError:
			// main prints fatal errors once
		case pipeline.LevelWarning:
			if verbose {
				fmt.Fprintln(stderr, "warning: "+event.Message)
			}
		default:
			if verbose {
				fmt.Fprintln(stderr, event.Message)
			}
		}
	})

	summary, err := manager.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "source: %s\n", summary.Source)
	fmt.Fprintf(stdout, "output: %s\n", summary.OutputPath)
	fmt.Fprintf(stdout, "kept entries: %d\n", summary.Total)
	for _, gc := range summary.Groups {
		fmt.Fprintf(stdout, "  %s: %d\n", gc.Group, gc.Count)
	}

	if summary.Total == 0 && !verbose {
		fmt.Fprintln(stderr, "warning: no entries matched the configured group keywords")
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
