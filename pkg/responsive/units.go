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
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// 📐 HeadingFloor pairs a selector with the smallest font size its clamp may shrink to
type HeadingFloor struct {
	Selector string
	Floor    int
}

// ⚙️ Options parameterize the rule set
type Options struct {
	// ReferenceWidth and ReferenceHeight are the fixed slide dimensions in px.
	// One percent of ReferenceWidth is the divisor for px to vw conversion.
	ReferenceWidth  int
	ReferenceHeight int

	// Headings lists the font-size rules, applied in order
	Headings []HeadingFloor
}

// DefaultHeadings is the heading table for a 1920x1080 deck
func DefaultHeadings() []HeadingFloor {
	return []HeadingFloor{
		{Selector: "h1", Floor: 24},
		{Selector: "h2", Floor: 18},
		{Selector: "h3", Floor: 16},
		{Selector: "h4", Floor: 14},
		{Selector: ".subtitle", Floor: 14},
	}
}

// DefaultOptions returns the options for 1920x1080 slides
func DefaultOptions() Options {
	return Options{
		ReferenceWidth:  1920,
		ReferenceHeight: 1080,
		Headings:        DefaultHeadings(),
	}
}

// Validate rejects options that would produce broken clamps
func (o Options) Validate() error {
	if o.ReferenceWidth <= 0 {
		return errors.Errorf("reference width must be positive, got %d", o.ReferenceWidth)
	}
	if o.ReferenceHeight <= 0 {
		return errors.Errorf("reference height must be positive, got %d", o.ReferenceHeight)
	}
	for i, h := range o.Headings {
		if h.Selector == "" {
			return errors.Errorf("heading %d: selector is required", i)
		}
		if h.Floor <= 0 {
			return errors.Errorf("heading %d (%s): floor must be positive, got %d", i, h.Selector, h.Floor)
		}
	}
	return nil
}

// divisor is 1vw of the reference width, in px (19.2 for 1920)
func (o Options) divisor() float64 {
	return float64(o.ReferenceWidth) / 100
}

var pxValue = regexp.MustCompile(`^(\d+)px$`)

// parsePx parses a declaration value that is a single integer px length
func parsePx(value string) (int, bool, error) {
	m := pxValue.FindStringSubmatch(value)
	if m == nil {
		return 0, false, nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false, errors.Errorf("parsing %q: %w", value, err)
	}
	return n, true, nil
}

func px(n int) string {
	return strconv.Itoa(n) + "px"
}

// vw converts a px length into vw with one decimal place
func vw(n int, divisor float64) string {
	return strconv.FormatFloat(float64(n)/divisor, 'f', 1, 64) + "vw"
}

func clamp(lo, preferred, hi string) string {
	return fmt.Sprintf("clamp(%s, %s, %s)", lo, preferred, hi)
}

// scaledClamp is clamp(max(floor, n/2)px, n/divisor vw, n px)
func scaledClamp(n, floor int, divisor float64) string {
	return clamp(px(max(floor, n/2)), vw(n, divisor), px(n))
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// aspectRatio reduces w:h, so 1920x1080 gives "16/9"
func aspectRatio(w, h int) string {
	g := gcd(w, h)
	return fmt.Sprintf("%d/%d", w/g, h/g)
}
