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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 📝 Declaration is one `property: value` pair inside a block.
// Offsets are byte offsets into the whole document.
type Declaration struct {
	Property   string // lower-cased property name
	Value      string // value text with surrounding whitespace trimmed
	Start      int    // first byte of the property name
	End        int    // one past the ';' when Terminated, else one past the value
	ValueStart int
	ValueEnd   int
	Terminated bool // whether a ';' ends the declaration
}

// 📦 Block is a brace-delimited group: a ruleset or an at-rule body
type Block struct {
	Prelude      string   // selector list or at-rule text, trimmed
	Selectors    []string // comma-separated selectors with whitespace collapsed
	AtRule       bool
	Start        int // first byte of the prelude
	Open         int // offset of '{'
	Close        int // offset of '}'
	Depth        int // 0 for top-level blocks
	Parent       *Block
	Declarations []*Declaration
}

// 🎨 Sheet is the text of one <style> element
type Sheet struct {
	Start    int // first byte of the style text
	End      int // one past the last byte of the style text
	CloseTag int // offset of the closing </style> tag, -1 when missing
	Blocks   []*Block
}

// 📚 Document is an index over the style elements of an HTML document
type Document struct {
	Content string
	Sheets  []*Sheet
}

// Index locates every <style> element in content and indexes its blocks.
// It fails when a block is never closed or a '}' has no matching '{'.
func Index(content string) (*Document, error) {
	doc := &Document{
		Content: content,
		Sheets:  findStyleElements(content),
	}

	for _, sheet := range doc.Sheets {
		blocks, err := scanBlocks(content[sheet.Start:sheet.End], sheet.Start)
		if err != nil {
			return nil, errors.Errorf("indexing style element at offset %d: %w", sheet.Start, err)
		}
		sheet.Blocks = blocks
	}

	return doc, nil
}

// TopLevel returns the depth-0 blocks of every sheet that match selector
func (d *Document) TopLevel(selector string) []*Block {
	var out []*Block
	for _, sheet := range d.Sheets {
		out = append(out, sheet.TopLevel(selector)...)
	}
	return out
}

// Rulesets returns the rulesets of every sheet that match selector at any depth,
// including those nested in @media and other at-rules
func (d *Document) Rulesets(selector string) []*Block {
	var out []*Block
	for _, sheet := range d.Sheets {
		for _, b := range sheet.Blocks {
			if !b.AtRule && b.Matches(selector) {
				out = append(out, b)
			}
		}
	}
	return out
}

// TopLevel returns the depth-0 rulesets of the sheet that match selector
func (s *Sheet) TopLevel(selector string) []*Block {
	var out []*Block
	for _, b := range s.Blocks {
		if b.Depth == 0 && !b.AtRule && b.Matches(selector) {
			out = append(out, b)
		}
	}
	return out
}

// Matches reports whether one of the block's selectors is selector itself
// or ends with it as a descendant (".deck .slide" matches ".slide").
func (b *Block) Matches(selector string) bool {
	for _, s := range b.Selectors {
		if s == selector || strings.HasSuffix(s, " "+selector) {
			return true
		}
	}
	return false
}

// IsExactly reports whether the block's only selector is selector
func (b *Block) IsExactly(selector string) bool {
	return len(b.Selectors) == 1 && b.Selectors[0] == selector
}

// Declaration returns the first declaration of property, or nil
func (b *Block) Declaration(property string) *Declaration {
	for _, d := range b.Declarations {
		if d.Property == property {
			return d
		}
	}
	return nil
}

// Has reports whether the block declares property with exactly value
func (b *Block) Has(property, value string) bool {
	for _, d := range b.Declarations {
		if d.Property == property && d.Value == value {
			return true
		}
	}
	return false
}

// Indent is the whitespace before the block's prelude on its line.
// It is empty when the prelude does not start its line.
func (b *Block) Indent(content string) string {
	return lineIndent(content, b.Start)
}

// DeclarationIndent is the indentation used by the block's declarations,
// falling back to the block indent plus four spaces.
func (b *Block) DeclarationIndent(content string) string {
	for _, d := range b.Declarations {
		if in := lineIndent(content, d.Start); in != "" {
			return in
		}
	}
	return b.Indent(content) + "    "
}

func lineIndent(content string, at int) string {
	i := at
	for i > 0 && (content[i-1] == ' ' || content[i-1] == '\t') {
		i--
	}
	if i == 0 || content[i-1] == '\n' {
		return content[i:at]
	}
	return ""
}

func splitSelectors(prelude string) []string {
	var out []string
	for _, s := range strings.Split(prelude, ",") {
		s = strings.Join(strings.Fields(s), " ")
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
