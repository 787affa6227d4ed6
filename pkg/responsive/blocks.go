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
	"fmt"
	"regexp"

	"github.com/walteh/slidefit/pkg/stylesheet"
	"github.com/walteh/slidefit/pkg/text"
)

const (
	containerSelector = ".slide"

	// container padding shrinks to at least this many px at 3vw
	containerPaddingFloor = 20
	containerPaddingVW    = "3vw"
)

var marginAuto = regexp.MustCompile(`^\d+px auto$`)

// 🖼️ containerRule makes the fixed-size slide container fill the viewport.
// Blocks that already declare aspect-ratio have been converted and are skipped.
func containerRule(o Options) text.Rule {
	width, height := px(o.ReferenceWidth), px(o.ReferenceHeight)

	return blockRule("container", func(doc *stylesheet.Document) ([]stylesheet.Edit, error) {
		var edits []stylesheet.Edit

		for _, b := range doc.TopLevel(containerSelector) {
			w, h := b.Declaration("width"), b.Declaration("height")
			if w == nil || h == nil || w.Value != width || h.Value != height {
				continue
			}
			if b.Declaration("aspect-ratio") != nil {
				continue
			}

			edits = append(edits,
				replaceDeclaration(w, fmt.Sprintf("width: 100vw; max-width: %s", width)),
				replaceDeclaration(h, fmt.Sprintf("height: 100vh; max-height: %s", height)),
			)

			for _, d := range b.Declarations {
				switch d.Property {
				case "margin":
					if marginAuto.MatchString(d.Value) {
						edits = append(edits, replaceValue(d, "0 auto"))
					}
				case "padding":
					n, ok, err := parsePx(d.Value)
					if err != nil {
						return nil, err
					}
					if ok && n > containerPaddingFloor {
						edits = append(edits, replaceValue(d, clamp(px(containerPaddingFloor), containerPaddingVW, px(n))))
					}
				}
			}

			edits = append(edits, appendDeclarations(doc.Content, b,
				"aspect-ratio: "+aspectRatio(o.ReferenceWidth, o.ReferenceHeight)))
		}

		return edits, nil
	})
}

var bodyDeclarations = [][2]string{
	{"margin", "0"},
	{"padding", "0"},
	{"overflow-x", "hidden"},
}

// 📄 bodyRule appends the page reset to body. Declarations already present are not repeated.
func bodyRule() text.Rule {
	return blockRule("body", func(doc *stylesheet.Document) ([]stylesheet.Edit, error) {
		var edits []stylesheet.Edit

		for _, b := range doc.TopLevel("body") {
			var missing []string
			for _, d := range bodyDeclarations {
				if !b.Has(d[0], d[1]) {
					missing = append(missing, d[0]+": "+d[1])
				}
			}
			if len(missing) == 0 {
				continue
			}
			edits = append(edits, appendDeclarations(doc.Content, b, missing...))
		}

		return edits, nil
	})
}

// 🔠 fontSizeRule converts every px font-size of the selector into a clamp,
// including rulesets nested in the author's own media queries
func fontSizeRule(h HeadingFloor, divisor float64) text.Rule {
	return blockRule("font-size "+h.Selector, func(doc *stylesheet.Document) ([]stylesheet.Edit, error) {
		var edits []stylesheet.Edit

		for _, b := range doc.Rulesets(h.Selector) {
			for _, d := range b.Declarations {
				if d.Property != "font-size" {
					continue
				}
				n, ok, err := parsePx(d.Value)
				if err != nil {
					return nil, err
				}
				if !ok {
					continue
				}
				edits = append(edits, replaceValue(d, scaledClamp(n, h.Floor, divisor)))
			}
		}

		return edits, nil
	})
}

// offsetRule converts a single px offset (left/right) into
// clamp(n/2 px, n/20 vw, n px), the same curve as the slide-number offsets.
func offsetRule(selector, property string) text.Rule {
	return blockRule("offset "+selector, func(doc *stylesheet.Document) ([]stylesheet.Edit, error) {
		var edits []stylesheet.Edit

		for _, b := range doc.TopLevel(selector) {
			d := b.Declaration(property)
			if d == nil {
				continue
			}
			n, ok, err := parsePx(d.Value)
			if err != nil {
				return nil, err
			}
			if !ok || n == 0 {
				continue
			}
			edits = append(edits, replaceValue(d, clamp(px(n/2), vw(n, 20), px(n))))
		}

		return edits, nil
	})
}
