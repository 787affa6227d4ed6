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
	"regexp"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔧 Rule is a single step of a Pipeline
type Rule interface {
	// Name identifies the rule in logs and results
	Name() string
	// Apply returns the rewritten content and how many replacements were made.
	// A rule that finds nothing returns the content unchanged and a zero count.
	Apply(ctx context.Context, content string) (string, int, error)
}

// 🧩 RuleFunc adapts a function into a Rule
type RuleFunc struct {
	RuleName string
	Fn       func(ctx context.Context, content string) (string, int, error)
}

func (r RuleFunc) Name() string { return r.RuleName }

func (r RuleFunc) Apply(ctx context.Context, content string) (string, int, error) {
	return r.Fn(ctx, content)
}

// 🔍 RegexpRule replaces every match of a pattern with the output of Replace.
// Replace receives the submatches (index 0 is the full match) and may decline
// a match by returning ok=false, which leaves that match as it was.
type RegexpRule struct {
	RuleName string
	Pattern  *regexp.Regexp
	Replace  func(content string, loc []int, groups []string) (repl string, ok bool, err error)
}

// NewRegexpRule compiles pattern and returns a RegexpRule
func NewRegexpRule(name, pattern string, replace func(content string, loc []int, groups []string) (string, bool, error)) *RegexpRule {
	return &RegexpRule{
		RuleName: name,
		Pattern:  regexp.MustCompile(pattern),
		Replace:  replace,
	}
}

func (r *RegexpRule) Name() string { return r.RuleName }

func (r *RegexpRule) Apply(ctx context.Context, content string) (string, int, error) {
	locs := r.Pattern.FindAllStringSubmatchIndex(content, -1)
	if len(locs) == 0 {
		return content, 0, nil
	}

	var sb strings.Builder
	sb.Grow(len(content))

	count := 0
	last := 0
	for _, loc := range locs {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = content[loc[2*i]:loc[2*i+1]]
			}
		}

		repl, ok, err := r.Replace(content, loc, groups)
		if err != nil {
			return "", 0, errors.Errorf("rule %s at offset %d: %w", r.RuleName, loc[0], err)
		}
		if !ok {
			continue
		}

		sb.WriteString(content[last:loc[0]])
		sb.WriteString(repl)
		last = loc[1]
		count++
	}
	sb.WriteString(content[last:])

	return sb.String(), count, nil
}
