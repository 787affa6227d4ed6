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
	"strconv"
	"strings"

	"github.com/walteh/slidefit/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🌫️ shadowRule rewrites `box-shadow: 0 Apx Bpx` anywhere in the document,
// inline style attributes included, into vw offsets.
func shadowRule(divisor float64) text.Rule {
	return text.NewRegexpRule("box-shadow", `box-shadow:(\s*)0\s+(\d+)px\s+(\d+)px`,
		func(content string, loc []int, groups []string) (string, bool, error) {
			y, err := strconv.Atoi(groups[2])
			if err != nil {
				return "", false, errors.Errorf("parsing shadow offset %q: %w", groups[2], err)
			}
			blur, err := strconv.Atoi(groups[3])
			if err != nil {
				return "", false, errors.Errorf("parsing shadow blur %q: %w", groups[3], err)
			}
			return "box-shadow:" + groups[1] + "0 " + vw(y, divisor) + " " + vw(blur, divisor), true, nil
		})
}

// ⭕ radiusRule rewrites single-value px border radii anywhere in the document.
// Shorthands with more than one length are left alone.
func radiusRule(divisor float64) text.Rule {
	return text.NewRegexpRule("border-radius", `border-radius:(\s*)(\d+)px`,
		func(content string, loc []int, groups []string) (string, bool, error) {
			if hasMoreLengths(content[loc[1]:]) {
				return "", false, nil
			}
			n, err := strconv.Atoi(groups[2])
			if err != nil {
				return "", false, errors.Errorf("parsing border radius %q: %w", groups[2], err)
			}
			return "border-radius:" + groups[1] + scaledClamp(n, 4, divisor), true, nil
		})
}

// hasMoreLengths reports whether rest continues a multi-value length list
func hasMoreLengths(rest string) bool {
	rest = strings.TrimLeft(rest, " \t")
	if rest == "" {
		return false
	}
	switch c := rest[0]; {
	case c >= '0' && c <= '9', c == '.', c == '-', c == '/':
		return true
	case strings.HasPrefix(rest, "calc(") || strings.HasPrefix(rest, "var("):
		return true
	}
	return false
}
