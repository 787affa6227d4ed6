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

/*
Package operation drives a batch run over the slide files of a directory.

	+-----------+     +-------------+     +-------------+
	|  config   | --> |   Runner    | --> |  responsive |
	| (globs)   |     | (sequential)|     |  (rewrite)  |
	+-----------+     +------+------+     +-------------+
	                         |
	               +---------+---------+
	               |                   |
	         +-----+-----+       +-----+-----+
	         |  status   |       |    log    |
	         | (files)   |       | (console) |
	         +-----------+       +-----------+

🎯 Purpose:
- Discovers slide files with doublestar include/exclude globs
- Rewrites them one at a time, in discovery order
- Prints one status line per file and a closing summary
- Aggregates per-file failures without stopping the batch

🔄 Flow:
1. Discover resolves the include patterns against the directory
2. Each file is announced, rewritten and written back (or previewed)
3. The outcome is tracked in the status manager and printed
4. A dry run then lists every tracked file, sorted, with a tally
5. The summary counts what succeeded and carries every failure

⚡ Key Responsibilities:
- File discovery
- Sequencing and cancellation
- Failure isolation and aggregation

A failed file never aborts the batch. Run only returns an error when
discovery fails or the context is cancelled. A cancelled run still prints
the summary line for the files it finished.
*/
package operation
