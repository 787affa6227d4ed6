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

package log

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// 📐 DiffStats counts the lines a preview would change
type DiffStats struct {
	Added   int
	Removed int
}

// 🔍 Diff prints a line diff of original against modified under a section
// titled path. Unchanged lines are not printed.
func (l *Logger) Diff(path, original, modified string) DiffStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	pterm.DefaultSection.WithLevel(2).WithWriter(l.console).Println(path)

	var stats DiffStats
	if original == modified {
		pterm.Info.WithPrefix(pterm.Prefix{Text: "=", Style: pterm.Info.Prefix.Style}).
			WithWriter(l.console).Println("no changes")
		return stats
	}

	added := pterm.Success.WithPrefix(pterm.Prefix{Text: "+", Style: pterm.Success.Prefix.Style}).WithWriter(l.console)
	removed := pterm.Error.WithPrefix(pterm.Prefix{Text: "-", Style: pterm.Error.Prefix.Style}).WithWriter(l.console)

	for _, d := range lineDiff(original, modified) {
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				added.Println(line)
				stats.Added++
			case diffmatchpatch.DiffDelete:
				removed.Println(line)
				stats.Removed++
			}
		}
	}

	l.zlog.Debug().
		Str("file", path).
		Int("added", stats.Added).
		Int("removed", stats.Removed).
		Msg("previewed changes")

	return stats
}

// lineDiff diffs whole lines, so a changed declaration shows up as one removed and one added line
func lineDiff(original, modified string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lines := dmp.DiffLinesToChars(original, modified)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
