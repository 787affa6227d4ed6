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
	"context"
	"strings"

	"github.com/walteh/slidefit/pkg/stylesheet"
	"github.com/walteh/slidefit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// blockRule indexes the current document, asks fn for edits and applies them.
// The replacement count is the number of edits.
func blockRule(name string, fn func(doc *stylesheet.Document) ([]stylesheet.Edit, error)) text.Rule {
	return text.RuleFunc{
		RuleName: name,
		Fn: func(ctx context.Context, content string) (string, int, error) {
			doc, err := stylesheet.Index(content)
			if err != nil {
				return "", 0, errors.Errorf("indexing styles: %w", err)
			}

			edits, err := fn(doc)
			if err != nil {
				return "", 0, err
			}

			out, err := stylesheet.Apply(content, edits)
			if err != nil {
				return "", 0, errors.Errorf("applying edits: %w", err)
			}

			return out, len(edits), nil
		},
	}
}

// replaceValue swaps a declaration's value and keeps everything around it
func replaceValue(d *stylesheet.Declaration, value string) stylesheet.Edit {
	return stylesheet.Edit{Start: d.ValueStart, End: d.ValueEnd, Text: value}
}

// replaceDeclaration swaps `property: value` and keeps the terminating ';'
func replaceDeclaration(d *stylesheet.Declaration, declaration string) stylesheet.Edit {
	return stylesheet.Edit{Start: d.Start, End: d.ValueEnd, Text: declaration}
}

// appendDeclarations adds declarations, one per line, right before the block's closing brace
func appendDeclarations(content string, b *stylesheet.Block, declarations ...string) stylesheet.Edit {
	end := b.Close
	for end > b.Open+1 && strings.ContainsRune(" \t\r\n\f", rune(content[end-1])) {
		end--
	}

	indent := b.DeclarationIndent(content)

	var sb strings.Builder
	if n := len(b.Declarations); n > 0 && !b.Declarations[n-1].Terminated {
		sb.WriteString(";")
	}
	for _, d := range declarations {
		sb.WriteString("\n")
		sb.WriteString(indent)
		sb.WriteString(d)
		sb.WriteString(";")
	}
	sb.WriteString("\n")
	sb.WriteString(b.Indent(content))

	return stylesheet.Edit{Start: end, End: b.Close, Text: sb.String()}
}
