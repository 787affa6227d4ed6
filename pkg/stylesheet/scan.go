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

package stylesheet

import (
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"gitlab.com/tozd/go/errors"
)

// scanBlocks walks the CSS tokens of text and records every block with its
// declarations. base is the offset of text inside the whole document.
func scanBlocks(text string, base int) ([]*Block, error) {
	lexer := css.NewLexer(parse.NewInputString(text))

	var (
		blocks   []*Block
		stack    []*Block
		offset   int
		segStart int
		segBlank = true
	)

	top := func() *Block {
		if len(stack) == 0 {
			return nil
		}
		return stack[len(stack)-1]
	}

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, errors.Errorf("lexing stylesheet: %w", err)
			}
			break
		}

		start := offset
		offset += len(data)

		switch tt {
		case css.WhitespaceToken, css.CommentToken, css.CDOToken, css.CDCToken:
			if segBlank {
				segStart = offset
			}
			continue

		case css.LeftBraceToken:
			prelude := strings.TrimSpace(text[segStart:start])
			b := &Block{
				Prelude: prelude,
				AtRule:  strings.HasPrefix(prelude, "@"),
				Start:   base + segStart,
				Open:    base + start,
				Close:   -1,
				Depth:   len(stack),
				Parent:  top(),
			}
			if !b.AtRule {
				b.Selectors = splitSelectors(prelude)
			}
			blocks = append(blocks, b)
			stack = append(stack, b)

		case css.SemicolonToken:
			if b := top(); b != nil && !segBlank {
				addDeclaration(b, text, base, segStart, offset, true)
			}

		case css.RightBraceToken:
			b := top()
			if b == nil {
				return nil, errors.Errorf("unexpected '}' at offset %d", base+start)
			}
			if !segBlank {
				addDeclaration(b, text, base, segStart, start, false)
			}
			b.Close = base + start
			stack = stack[:len(stack)-1]

		default:
			segBlank = false
			continue
		}

		segStart = offset
		segBlank = true
	}

	if b := top(); b != nil {
		return nil, errors.Errorf("block %q opened at offset %d has no closing brace", b.Prelude, b.Open)
	}

	return blocks, nil
}

// addDeclaration records text[start:end] as a declaration of b when it has
// the shape `property: value`. Anything else (a stray token) is ignored.
func addDeclaration(b *Block, text string, base, start, end int, terminated bool) {
	body := text[start:end]
	if terminated {
		body = body[:len(body)-1]
	}

	colon := strings.IndexByte(body, ':')
	if colon <= 0 {
		return
	}

	property := strings.ToLower(strings.TrimSpace(body[:colon]))
	if property == "" || strings.ContainsAny(property, " \t\n") {
		return
	}

	valueStart := colon + 1
	for valueStart < len(body) && isSpace(body[valueStart]) {
		valueStart++
	}
	valueEnd := len(body)
	for valueEnd > valueStart && isSpace(body[valueEnd-1]) {
		valueEnd--
	}

	d := &Declaration{
		Property:   property,
		Value:      body[valueStart:valueEnd],
		Start:      base + start,
		End:        base + end,
		ValueStart: base + start + valueStart,
		ValueEnd:   base + start + valueEnd,
		Terminated: terminated,
	}
	if !terminated {
		d.End = d.ValueEnd
	}

	b.Declarations = append(b.Declarations, d)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
