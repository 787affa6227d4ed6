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

package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

// 🧪 TestFormatFileInfo tests the aligned status rows
func TestFormatFileInfo(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name        string
		info        FileInfo
		want        string
		description string
	}{
		{
			name:        "modified_file",
			info:        FileInfo{Path: "slide1.html", Status: StatusModified, Replacements: 12},
			want:        "    ✓ slide1.html                         modified     12",
			description: "should show a check for rewritten files",
		},
		{
			name:        "previewed_file",
			info:        FileInfo{Path: "slide2.html", Status: StatusPreviewed, Replacements: 3},
			want:        "    ⟳ slide2.html                         previewed     3",
			description: "should show a cycle for dry-run files",
		},
		{
			name:        "failed_file",
			info:        FileInfo{Path: "broken.html", Status: StatusFailed, Error: errors.New("boom")},
			want:        "    ✗ broken.html                         failed        0 boom",
			description: "should show a cross and the cause for failed files",
		},
		{
			name:        "unchanged_file",
			info:        FileInfo{Path: "plain.html", Status: StatusUnchanged},
			want:        "    - plain.html                          unchanged     0",
			description: "should show a dash for unchanged files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFileInfo(tt.info)
			assert.Equal(t, tt.want, got, tt.description)
		})
	}
}

// 🧪 TestFormatProgress tests progress message formatting
func TestFormatProgress(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		total    int
		expected string
		msg      string
	}{
		{
			name:     "zero_progress",
			current:  0,
			total:    10,
			expected: "⏳ Progress: 0/10 (0%)",
			msg:      "should show 0% progress",
		},
		{
			name:     "half_progress",
			current:  5,
			total:    10,
			expected: "⏳ Progress: 5/10 (50%)",
			msg:      "should show 50% progress",
		},
		{
			name:     "complete",
			current:  10,
			total:    10,
			expected: "✅ Progress: 10/10 (100%)",
			msg:      "should show 100% progress",
		},
		{
			name:     "zero_total",
			current:  0,
			total:    0,
			expected: "✅ Progress: 0/0 (0%)",
			msg:      "should handle zero total",
		},
		{
			name:     "zero_total_with_current",
			current:  5,
			total:    0,
			expected: "✅ Progress: 5/0 (100%)",
			msg:      "should handle zero total with positive current",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatProgress(tt.current, tt.total), tt.msg)
		})
	}
}
