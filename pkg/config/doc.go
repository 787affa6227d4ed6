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

// Package config loads the optional slidefit configuration file.
//
//	            +-------------+
//	            |   Config    |
//	            | (Settings)  |
//	            +------+------+
//	                   |
//	    +--------+-----+-----+--------+
//	    |        |           |        |
//	+---+--+ +---+--+    +---+--+ +---+--+
//	| YAML | | HCL  |    | JSON | | TOML |
//	+------+ +------+    +------+ +------+
//
// 🎯 Purpose:
// - Finds .slidefit.{yaml,yml,hcl,json,toml} in the working directory
// - Parses it with the parser registered for its extension
// - Fills defaults and validates values
// - Converts the result into responsive.Options
//
// Without a file every value is the default: *.html in the directory, a
// 1920x1080 reference size, atomic writes and the built-in heading floors.
//
// 📝 Example (YAML):
//
//	include:
//	  - "*.html"
//	  - "decks/**/*.html"
//	exclude:
//	  - "draft-*.html"
//	reference_width: 1920
//	reference_height: 1080
//	atomic: true
//	headings:
//	  - selector: h1
//	    floor: 24
//
// 📝 Example (HCL):
//
//	include          = [defaults.include]
//	reference_height = defaults.reference_width * 9 / 16
//
//	heading "h1" {
//	  floor = defaults.floor["h1"]
//	}
//
// Unknown fields are rejected in every format.
package config
