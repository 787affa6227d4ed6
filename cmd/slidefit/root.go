// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/slidefit/pkg/config"
	"github.com/walteh/slidefit/pkg/log"
	"github.com/walteh/slidefit/pkg/operation"
	"github.com/walteh/slidefit/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// rootOpts holds the persistent flags
type rootOpts struct {
	configFile string
	dir        string
	debug      bool
	dryRun     bool
	strict     bool
}

// 🌱 newRootCmd builds the slidefit command tree
func newRootCmd() *cobra.Command {
	opts := &rootOpts{}

	cmd := &cobra.Command{
		Use:   "slidefit",
		Short: "Make fixed-size HTML slide decks responsive",
		Long: `slidefit rewrites the embedded CSS of every *.html file in a directory so
that slides designed at a fixed pixel size scale with the viewport. Sizes
become vw/vh units or clamp() expressions and a set of mobile breakpoints
is appended. Files are overwritten in place.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	addRootFlags(cmd, opts)
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, opts *rootOpts) {
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file, or a directory to search for .slidefit.* (default: built-in settings)")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", ".", "directory holding the slides")
	cmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "preview the rewrite as a diff and write nothing")
	cmd.PersistentFlags().BoolVar(&opts.strict, "strict", false, "exit non-zero when any file fails")
}

// setupLogging returns the stderr logger for the chosen level
func (o *rootOpts) setupLogging(stderr io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if o.debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(stderr).Level(level).With().Timestamp().Logger()
}

// loadConfig never reads a file unless --config names one
func (o *rootOpts) loadConfig(ctx context.Context) (*config.Config, error) {
	if o.configFile == "" {
		return config.Default(), nil
	}

	info, err := os.Stat(o.configFile)
	if err != nil {
		return nil, errors.Errorf("checking %s: %w", o.configFile, err)
	}
	if info.IsDir() {
		return config.Discover(ctx, o.configFile)
	}
	return config.Load(ctx, o.configFile)
}

func (o *rootOpts) run(ctx context.Context, stdout, stderr io.Writer) error {
	logger := o.setupLogging(stderr)
	ctx = logger.WithContext(ctx)

	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return errors.Errorf("resolving directory %s: %w", o.dir, err)
	}

	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	logger.Debug().Str("config", cfg.String()).Str("dir", dir).Msg("configuration loaded")

	ctx = log.NewContext(ctx, log.New(stdout, logger))

	runner, err := operation.New(operation.Options{
		Config: cfg,
		Files:  status.New(dir, cfg.AtomicWrites()),
		DryRun: o.dryRun,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	summary, err := runner.Run(ctx)
	if err != nil {
		return errors.Errorf("running: %w", err)
	}

	logger.Info().
		Int("total", summary.Total).
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Int("unchanged", summary.Unchanged).
		Msg("batch finished")

	if o.strict && summary.Failed > 0 {
		return errors.Errorf("%d of %d files failed: %w", summary.Failed, summary.Total, summary.Err)
	}

	return nil
}
