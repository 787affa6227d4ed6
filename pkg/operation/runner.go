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

package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/slidefit/pkg/config"
	"github.com/walteh/slidefit/pkg/log"
	"github.com/walteh/slidefit/pkg/status"
	"gitlab.com/tozd/go/errors"
	"go.uber.org/multierr"
)

// 🏃 Runner processes the discovered files one at a time
type Runner struct {
	config   *config.Config
	files    *status.Manager
	console  *log.Logger
	rewriter Rewriter
	dryRun   bool
}

// 🏃 Run discovers the slide files and processes each of them in order.
// Per-file failures are reported and collected in Summary.Err.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	logger := zerolog.Ctx(ctx)
	console := r.console
	if console == nil {
		console = log.FromContext(ctx)
	}

	paths, err := Discover(os.DirFS(r.files.BaseDir()), r.config.Include, r.config.Exclude)
	if err != nil {
		return nil, errors.Errorf("discovering files: %w", err)
	}

	logger.Debug().
		Str("dir", r.files.BaseDir()).
		Int("files", len(paths)).
		Bool("dry_run", r.dryRun).
		Msg("starting batch")

	if r.dryRun {
		console.Header("dry run, nothing will be written")
	}

	summary := &Summary{Total: len(paths)}
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			console.Summary(summary.Processed)
			return summary, errors.Errorf("cancelled before %s: %w", path, err)
		}

		console.Processing(path)

		info := r.process(ctx, console, path)
		r.files.TrackFile(ctx, info)

		switch {
		case info.Status == status.StatusFailed:
			summary.Failed++
			summary.Err = multierr.Append(summary.Err, errors.Errorf("%s: %w", path, info.Error))
			console.Failure(path, info.Error)
		case r.dryRun:
			summary.Processed++
			if info.Status == status.StatusUnchanged {
				summary.Unchanged++
				console.Warningf("%s: no rule matched, the file would be written back unchanged", path)
			}
		default:
			summary.Processed++
			if info.Status == status.StatusUnchanged {
				summary.Unchanged++
			}
			console.Success(path, info.Replacements)
		}

		logger.Debug().Msg(status.FormatProgress(i+1, len(paths)))
	}

	counts := r.files.Counts(ctx)
	if r.dryRun {
		r.listPreview(ctx, console, counts)
	}

	console.Summary(summary.Processed)

	logger.Debug().
		Int("processed", summary.Processed).
		Int("failed", summary.Failed).
		Int("unchanged", summary.Unchanged).
		Int("tracked_modified", counts[status.StatusModified]).
		Int("tracked_previewed", counts[status.StatusPreviewed]).
		Int("tracked_unchanged", counts[status.StatusUnchanged]).
		Int("tracked_failed", counts[status.StatusFailed]).
		Msg("batch finished")

	return summary, nil
}

// 📋 listPreview prints one row per tracked file and what a real run would do
func (r *Runner) listPreview(ctx context.Context, console *log.Logger, counts map[status.FileStatus]int) {
	console.LogNewline()
	for _, info := range r.files.ListFiles(ctx) {
		console.FileInfo(info)
	}
	console.LogNewline()
	console.Infof("%d would change, %d would stay the same, %d failed",
		counts[status.StatusPreviewed], counts[status.StatusUnchanged], counts[status.StatusFailed])
}

// 📄 process rewrites (or previews) a single file and describes the outcome
func (r *Runner) process(ctx context.Context, console *log.Logger, path string) status.FileInfo {
	info := status.FileInfo{Path: path}

	rewrite := r.rewriter.ProcessFile
	if r.dryRun {
		rewrite = r.rewriter.Preview
	}

	result, err := rewrite(ctx, path)
	if err != nil {
		info.Status = status.StatusFailed
		info.Error = err
		return info
	}

	info.Replacements = result.ReplacementCount
	info.Size = int64(len(result.ModifiedContent))
	info.Checksum = status.Checksum(result.ModifiedContent)

	unchanged := bytes.Equal(result.OriginalContent, result.ModifiedContent)
	switch {
	case unchanged:
		info.Status = status.StatusUnchanged
	case r.dryRun:
		info.Status = status.StatusPreviewed
	default:
		info.Status = status.StatusModified
	}

	if r.dryRun && !unchanged {
		console.Diff(path, string(result.OriginalContent), string(result.ModifiedContent))
	}

	return info
}
