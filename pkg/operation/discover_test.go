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

package operation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	fsys := fstest.MapFS{
		"a.html":              {Data: []byte("a")},
		"b.html":              {Data: []byte("b")},
		"draft-c.html":        {Data: []byte("c")},
		"notes.txt":           {Data: []byte("n")},
		"b.html.tmp":          {Data: []byte("t")},
		"decks/intro.html":    {Data: []byte("i")},
		"decks/old/past.html": {Data: []byte("p")},
	}

	tests := []struct {
		name        string
		include     []string
		exclude     []string
		want        []string
		wantErr     bool
		errContains string
	}{
		{
			name:    "top_level_html_only",
			include: []string{"*.html"},
			want:    []string{"a.html", "b.html", "draft-c.html"},
		},
		{
			name:    "exclude_drafts",
			include: []string{"*.html"},
			exclude: []string{"draft-*.html"},
			want:    []string{"a.html", "b.html"},
		},
		{
			name:    "recursive_without_duplicates",
			include: []string{"*.html", "**/*.html"},
			exclude: []string{"decks/old/**"},
			want:    []string{"a.html", "b.html", "draft-c.html", "decks/intro.html"},
		},
		{
			name:    "no_matches",
			include: []string{"*.htm"},
			want:    nil,
		},
		{
			name:        "bad_include",
			include:     []string{"[*.html"},
			wantErr:     true,
			errContains: "globbing",
		},
		{
			name:        "bad_exclude",
			include:     []string{"*.html"},
			exclude:     []string{"[a"},
			wantErr:     true,
			errContains: "matching exclude",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Discover(fsys, tt.include, tt.exclude)
			if tt.wantErr {
				require.Error(t, err, "Discover should fail")
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err, "Discover should succeed")
			assert.Equal(t, tt.want, got)
		})
	}
}
