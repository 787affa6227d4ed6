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
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ✏️ Edit replaces content[Start:End] with Text. Start == End inserts.
type Edit struct {
	Start int
	End   int
	Text  string
}

// Apply performs edits against content. Edits must not overlap; they may be
// given in any order.
func Apply(content string, edits []Edit) (string, error) {
	if len(edits) == 0 {
		return content, nil
	}

	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var sb strings.Builder
	last := 0
	for _, e := range sorted {
		if e.Start < last || e.End < e.Start || e.End > len(content) {
			return "", errors.Errorf("invalid edit [%d,%d) after offset %d", e.Start, e.End, last)
		}
		sb.WriteString(content[last:e.Start])
		sb.WriteString(e.Text)
		last = e.End
	}
	sb.WriteString(content[last:])

	return sb.String(), nil
}
