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
	"context"

	"github.com/walteh/slidefit/pkg/config"
	"github.com/walteh/slidefit/pkg/log"
	"github.com/walteh/slidefit/pkg/responsive"
	"github.com/walteh/slidefit/pkg/status"
	"github.com/walteh/slidefit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ✏️ Rewriter rewrites one file in place, or previews the rewrite
type Rewriter interface {
	ProcessFile(ctx context.Context, path string) (*text.ReplacementResult, error)
	Preview(ctx context.Context, path string) (*text.ReplacementResult, error)
}

var (
	_ Rewriter             = (*responsive.Rewriter)(nil)
	_ responsive.FileStore = (*status.Manager)(nil)
)

// 🔧 Options contains configuration for the runner
type Options struct {
	// Config supplies the globs and the rule options
	Config *config.Config
	// Files reads and writes relative to the slide directory and tracks outcomes
	Files *status.Manager
	// Console prints the per-file lines. The one in the run's context is used when nil.
	Console *log.Logger
	// Rewriter is built from Config and Files when nil
	Rewriter Rewriter
	// DryRun previews every rewrite and writes nothing
	DryRun bool
}

// 📊 Summary is the outcome of a batch run
type Summary struct {
	Total     int   // Files discovered
	Processed int   // Files rewritten (or previewed) without error
	Failed    int   // Files that could not be processed
	Unchanged int   // Processed files whose rewrite matched the original content
	Err       error // Every per-file failure, combined with multierr
}

// 🏭 New creates a new runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return nil, errors.Errorf("file manager is required")
	}

	rw := opts.Rewriter
	if rw == nil {
		r, err := responsive.New(opts.Config.Options(), opts.Files)
		if err != nil {
			return nil, errors.Errorf("creating rewriter: %w", err)
		}
		rw = r
	}

	return &Runner{
		config:   opts.Config,
		files:    opts.Files,
		console:  opts.Console,
		rewriter: rw,
		dryRun:   opts.DryRun,
	}, nil
}
