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
	"io/fs"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 Discover returns the paths in fsys matched by any include pattern and by
// no exclude pattern. Paths keep the order of their first match and appear once.
func Discover(fsys fs.FS, include, exclude []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Errorf("globbing %q: %w", pattern, err)
		}

		for _, path := range matches {
			if seen[path] {
				continue
			}
			seen[path] = true

			excluded, err := shouldExclude(exclude, path)
			if err != nil {
				return nil, err
			}
			if !excluded {
				paths = append(paths, path)
			}
		}
	}

	return slices.Clip(paths), nil
}

// 🔍 shouldExclude checks if a path matches any exclude pattern
func shouldExclude(patterns []string, path string) (bool, error) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, errors.Errorf("matching exclude %q: %w", pattern, err)
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
