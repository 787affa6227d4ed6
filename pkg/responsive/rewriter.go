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

package responsive

import (
	"bytes"
	"context"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/walteh/slidefit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileStore reads and writes whole files
type FileStore interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
}

// 🎯 Rewriter runs the responsive rule set over slide files
type Rewriter struct {
	rules text.Pipeline
	files FileStore
}

// New creates a rewriter for the given options
func New(opts Options, files FileStore) (*Rewriter, error) {
	if files == nil {
		return nil, errors.Errorf("file store is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	rules := Rules(opts)
	if err := rules.ValidateRules(); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	return &Rewriter{rules: rules, files: files}, nil
}

// Rewrite applies the rule set to content without touching the filesystem
func (r *Rewriter) Rewrite(ctx context.Context, content io.Reader) (*text.ReplacementResult, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}
	if !utf8.Valid(data) {
		return nil, errors.Errorf("content is not valid UTF-8")
	}

	result, err := r.rules.Run(ctx, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Errorf("running rules: %w", err)
	}
	return result, nil
}

// Preview reads path and returns what ProcessFile would write, without writing
func (r *Rewriter) Preview(ctx context.Context, path string) (*text.ReplacementResult, error) {
	content, err := r.files.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}

	result, err := r.Rewrite(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, errors.Errorf("rewriting %s: %w", path, err)
	}
	return result, nil
}

// ProcessFile rewrites path in place. The file is always written back, even
// when no rule matched.
func (r *Rewriter) ProcessFile(ctx context.Context, path string) (*text.ReplacementResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()
	ctx = logger.WithContext(ctx)

	result, err := r.Preview(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := r.files.WriteFile(ctx, path, result.ModifiedContent); err != nil {
		return nil, errors.Errorf("writing %s: %w", path, err)
	}

	logger.Debug().
		Int("replacements", result.ReplacementCount).
		Bool("modified", result.WasModified).
		Msg("file rewritten")

	return result, nil
}
