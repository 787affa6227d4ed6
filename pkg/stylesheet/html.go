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
	"strings"

	"golang.org/x/net/html"
)

// findStyleElements returns the text span of every <style> element.
// Offsets come from the tokenizer's raw token lengths, so they index content directly.
func findStyleElements(content string) []*Sheet {
	z := html.NewTokenizer(strings.NewReader(content))

	var (
		sheets []*Sheet
		open   *Sheet
		offset int
	)

	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.ErrorToken:
			if open != nil {
				open.End = len(content)
				sheets = append(sheets, open)
			}
			return sheets

		case html.StartTagToken:
			name, _ := z.TagName()
			if open == nil && string(name) == "style" {
				open = &Sheet{Start: offset, End: offset, CloseTag: -1}
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if open != nil && string(name) == "style" {
				open.End = start
				open.CloseTag = start
				sheets = append(sheets, open)
				open = nil
			}
		}
	}
}
