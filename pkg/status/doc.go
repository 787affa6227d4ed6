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
Package status owns the slide files on disk and what happened to each of them.

	+-------------+        +-------------+
	|  operation  | -----> |   Manager   |
	|  (runner)   |        | read/write  |
	+-------------+        +------+------+
	                              |
	                      +-------+-------+
	                      |               |
	                +-----+-----+   +-----+-----+
	                |   Files   |   |  Tracked  |
	                |  (disk)   |   |  status   |
	                +-----------+   +-----------+

🎯 Purpose:
- Reads and writes whole slide files relative to a base directory
- Writes atomically (hidden temp file + rename) unless told otherwise,
  following symlinks so the linked file is the one rewritten
- Records a FileStatus per processed file for the batch summary

🔄 Flow:
1. The runner asks the Manager for a file's content
2. The rewriter hands back new content and the Manager writes it in place
3. The runner records the outcome with TrackFile
4. Counts feeds the runner's closing log event and the dry-run tally
5. ListFiles feeds the sorted dry-run listing

⚡ Key Responsibilities:
- File system operations
- Status tracking
- Formatting status rows for the console

📝 Notes:
Files are always written back, even when the content did not change. The
original permission bits are kept on atomic writes. No backup is made.
*/
package status
