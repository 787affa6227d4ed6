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
	"strings"

	"github.com/walteh/slidefit/pkg/stylesheet"
	"github.com/walteh/slidefit/pkg/text"
)

// 🧱 canonicalBlock is a hand-written responsive block that replaces an existing one wholesale
type canonicalBlock struct {
	Selector     string
	Declarations []string
}

func (c canonicalBlock) render(indent string) string {
	var sb strings.Builder
	sb.WriteString(c.Selector)
	sb.WriteString(" {\n")
	for _, d := range c.Declarations {
		sb.WriteString(indent)
		sb.WriteString("    ")
		sb.WriteString(d)
		sb.WriteString(";\n")
	}
	sb.WriteString(indent)
	sb.WriteString("}")
	return sb.String()
}

var (
	slideNumberBlock = canonicalBlock{
		Selector: ".slide-number",
		Declarations: []string{
			"position: absolute",
			"top: clamp(15px, 1.5vw, 30px)",
			"left: clamp(15px, 1.5vw, 30px)",
			"font-size: clamp(12px, 0.8vw, 16px)",
			"color: #999",
			"font-weight: 500",
		},
	}

	navContainerBlock = canonicalBlock{
		Selector: ".nav-container",
		Declarations: []string{
			"position: fixed",
			"top: clamp(10px, 1vw, 20px)",
			"left: 50%",
			"transform: translateX(-50%)",
			"z-index: 1000",
			"display: flex",
			"align-items: center",
			"gap: clamp(8px, 0.8vw, 15px)",
			"background: rgba(255, 255, 255, 0.95)",
			"padding: clamp(8px, 0.6vw, 12px) clamp(12px, 1vw, 20px)",
			"border-radius: clamp(15px, 1.3vw, 25px)",
			"box-shadow: 0 0.4vw 1.3vw rgba(0, 0, 0, 0.15)",
			"backdrop-filter: blur(10px)",
		},
	}

	slideCounterBlock = canonicalBlock{
		Selector: ".slide-counter",
		Declarations: []string{
			"font-size: clamp(11px, 0.7vw, 14px)",
			"font-weight: 600",
			"color: #0047AB",
			"min-width: clamp(60px, 4vw, 80px)",
			"text-align: center",
		},
	}

	slideSelectBlock = canonicalBlock{
		Selector: ".slide-select",
		Declarations: []string{
			"padding: clamp(6px, 0.4vw, 8px) clamp(8px, 0.6vw, 12px)",
			"border: 1px solid #ddd",
			"border-radius: clamp(4px, 0.3vw, 6px)",
			"font-size: clamp(11px, 0.7vw, 14px)",
			"background: white",
			"cursor: pointer",
			"outline: none",
		},
	}

	navButtonBlock = canonicalBlock{
		Selector: ".nav-btn",
		Declarations: []string{
			"position: fixed",
			"top: 50%",
			"transform: translateY(-50%)",
			"z-index: 1000",
			"background: rgba(0, 71, 171, 0.9)",
			"color: white",
			"border: none",
			"width: clamp(35px, 2.6vw, 50px)",
			"height: clamp(35px, 2.6vw, 50px)",
			"border-radius: 50%",
			"font-size: clamp(14px, 1vw, 20px)",
			"cursor: pointer",
			"transition: all 0.3s ease",
			"display: flex",
			"align-items: center",
			"justify-content: center",
			"box-shadow: 0 0.2vw 0.8vw rgba(0, 71, 171, 0.3)",
		},
	}
)

// replaceBlockRule replaces every top-level block whose only selector is c.Selector.
// A block that already reads exactly like the canonical one is left alone.
func replaceBlockRule(c canonicalBlock) text.Rule {
	return blockRule("replace "+c.Selector, func(doc *stylesheet.Document) ([]stylesheet.Edit, error) {
		var edits []stylesheet.Edit

		for _, b := range doc.TopLevel(c.Selector) {
			if !b.IsExactly(c.Selector) {
				continue
			}
			rendered := c.render(b.Indent(doc.Content))
			if doc.Content[b.Start:b.Close+1] == rendered {
				continue
			}
			edits = append(edits, stylesheet.Edit{Start: b.Start, End: b.Close + 1, Text: rendered})
		}

		return edits, nil
	})
}
