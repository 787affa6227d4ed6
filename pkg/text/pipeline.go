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

package text

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 RuleResult records what a single rule did
type RuleResult struct {
	Name         string
	Replacements int
}

// 📄 ReplacementResult is the outcome of running a Pipeline over some content
type ReplacementResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	ReplacementCount int
	WasModified      bool
	Applied          []RuleResult
}

// 🔄 Pipeline is an ordered rule set. Every rule sees the output of the one before it.
type Pipeline []Rule

// NewPipeline creates a pipeline from rules, in order
func NewPipeline(rules ...Rule) Pipeline {
	return Pipeline(rules)
}

// Run reads all of content and applies each rule in order
func (p Pipeline) Run(ctx context.Context, content io.Reader) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Applied:         make([]RuleResult, 0, len(p)),
	}

	modified, err := p.apply(ctx, string(originalContent), result)
	if err != nil {
		return nil, err
	}

	result.ModifiedContent = []byte(modified)
	result.WasModified = modified != string(originalContent)
	return result, nil
}

func (p Pipeline) apply(ctx context.Context, current string, result *ReplacementResult) (string, error) {
	logger := zerolog.Ctx(ctx)

	for _, rule := range p {
		next, n, err := rule.Apply(ctx, current)
		if err != nil {
			return "", errors.Errorf("applying rule %s: %w", rule.Name(), err)
		}

		if n > 0 {
			logger.Debug().Str("rule", rule.Name()).Int("replacements", n).Msg("rule applied")
		}

		result.ReplacementCount += n
		result.Applied = append(result.Applied, RuleResult{Name: rule.Name(), Replacements: n})
		current = next
	}

	return current, nil
}

// ValidateRules checks that every rule is named and that names are unique
func (p Pipeline) ValidateRules() error {
	seen := make(map[string]int, len(p))
	for i, rule := range p {
		if rule == nil {
			return errors.Errorf("rule %d: rule is nil", i)
		}
		if rule.Name() == "" {
			return errors.Errorf("rule %d: name is required", i)
		}
		if j, ok := seen[rule.Name()]; ok {
			return errors.Errorf("rule %d: name %q already used by rule %d", i, rule.Name(), j)
		}
		seen[rule.Name()] = i
	}
	return nil
}
