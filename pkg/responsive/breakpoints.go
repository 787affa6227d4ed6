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

// BreakpointMarker is present once the breakpoint block has been inserted
const BreakpointMarker = "@media (max-width: 1366px)"

const breakpointCSS = `
        /* Enhanced Responsive Design */
        @media (max-width: 1366px) {
            .slide {
                padding: clamp(15px, 2.5vw, 40px);
            }
        }

        @media (max-width: 768px) {
            .slide {
                padding: clamp(10px, 2vw, 25px);
            }

            h1 {
                font-size: clamp(24px, 5vw, 48px) !important;
            }

            h2 {
                font-size: clamp(20px, 4vw, 36px) !important;
            }

            h3 {
                font-size: clamp(18px, 3.5vw, 28px) !important;
            }
        }

        @media (max-width: 480px) {
            .nav-container {
                padding: 6px 10px;
                gap: 6px;
            }

            .slide-counter {
                min-width: 50px;
                font-size: 10px;
            }

            .slide-select {
                font-size: 10px;
                padding: 4px 6px;
            }
        }
    `

// 📱 breakpointRule inserts the breakpoint block before </style> unless it is already there.
// It anchors on the style element that holds the slide container, or the first
// closed style element when no container is styled.
func breakpointRule() text.Rule {
	return text.RuleFunc{
		RuleName: "breakpoints",
		Fn: func(ctx context.Context, content string) (string, int, error) {
			if strings.Contains(content, BreakpointMarker) {
				return content, 0, nil
			}

			doc, err := stylesheet.Index(content)
			if err != nil {
				return "", 0, errors.Errorf("indexing styles: %w", err)
			}

			anchor := anchorSheet(doc)
			if anchor == nil {
				return content, 0, nil
			}

			out, err := stylesheet.Apply(content, []stylesheet.Edit{
				{Start: anchor.CloseTag, End: anchor.CloseTag, Text: breakpointCSS},
			})
			if err != nil {
				return "", 0, errors.Errorf("inserting breakpoints: %w", err)
			}
			return out, 1, nil
		},
	}
}

func anchorSheet(doc *stylesheet.Document) *stylesheet.Sheet {
	var first *stylesheet.Sheet
	for _, sheet := range doc.Sheets {
		if sheet.CloseTag < 0 {
			continue
		}
		if len(sheet.TopLevel(containerSelector)) > 0 {
			return sheet
		}
		if first == nil {
			first = sheet
		}
	}
	return first
}
