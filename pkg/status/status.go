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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📊 FileStatus represents what happened to a file during a run
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusModified             // File was rewritten with new content
	StatusUnchanged            // File was written back with identical content
	StatusPreviewed            // File was rewritten in memory only (dry run)
	StatusFailed               // File could not be read, rewritten or written
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusModified:
		return "modified"
	case StatusUnchanged:
		return "unchanged"
	case StatusPreviewed:
		return "previewed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileInfo contains the outcome for a single file
type FileInfo struct {
	Path         string     // Path relative to the base directory
	Status       FileStatus // Outcome
	Size         int64      // Size of the content written (or previewed)
	Checksum     string     // SHA-256 of the content written (or previewed)
	Replacements int        // Number of rule replacements
	Error        error      // Failure cause when Status is StatusFailed
}

// 🔧 Manager reads and writes slide files and records what happened to each
type Manager struct {
	baseDir string // Base directory for all operations
	atomic  bool   // Write through a temp file and rename

	mu    sync.RWMutex
	files map[string]FileInfo
}

// 🏭 New creates a new status manager rooted at baseDir
func New(baseDir string, atomic bool) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
		atomic:  atomic,
		files:   make(map[string]FileInfo),
	}
}

// BaseDir returns the directory every path is relative to
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath returns the path for a given relative path. Absolute paths pass through.
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 Checksum generates a SHA-256 hash of the content
func Checksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile overwrites an existing file, atomically when the manager was created that way
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	if m.atomic {
		return m.WriteFileAtomic(ctx, path, content)
	}

	absPath := m.getAbsPath(path)
	mode, err := fileMode(absPath)
	if err != nil {
		return err
	}

	if err := os.WriteFile(absPath, content, mode); err != nil {
		return errors.Errorf("writing file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", absPath).Int("bytes", len(content)).Msg("wrote file in place")
	return nil
}

// WriteFileAtomic writes content to a hidden temp file beside the target and
// renames it over the target. Symlinks are resolved first so the link stays a
// link and the file it points at receives the content.
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	target, err := resolveTarget(m.getAbsPath(path))
	if err != nil {
		return err
	}

	mode, err := fileMode(target)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}

	// CreateTemp always uses 0600
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, target); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Trace().Str("path", target).Int("bytes", len(content)).Msg("wrote file atomically")
	return nil
}

// resolveTarget follows symlinks. A path that does not exist yet is its own target.
func resolveTarget(path string) (string, error) {
	target, err := filepath.EvalSymlinks(path)
	if errors.Is(err, fs.ErrNotExist) {
		return path, nil
	}
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", path, err)
	}
	return target, nil
}

// fileMode returns the permission bits of an existing file, or 0644 for a new one
func fileMode(path string) (os.FileMode, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return 0644, nil
	}
	if err != nil {
		return 0, errors.Errorf("checking file mode: %w", err)
	}
	if info.IsDir() {
		return 0, errors.Errorf("%s is a directory", path)
	}
	return info.Mode().Perm(), nil
}

// TrackFile records the outcome for info.Path, replacing any earlier record
func (m *Manager) TrackFile(ctx context.Context, info FileInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[info.Path] = info

	evt := zerolog.Ctx(ctx).Debug()
	if info.Error != nil {
		evt = evt.AnErr("cause", info.Error)
	}
	evt.Str("path", info.Path).
		Str("status", info.Status.String()).
		Int("replacements", info.Replacements).
		Msg("tracked file")
}

// ListFiles returns every tracked file, sorted by path
func (m *Manager) ListFiles(ctx context.Context) []FileInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	files := make([]FileInfo, 0, len(m.files))
	for _, info := range m.files {
		files = append(files, info)
	}
	slices.SortFunc(files, func(a, b FileInfo) int {
		return strings.Compare(a.Path, b.Path)
	})
	return files
}

// Counts returns the number of tracked files per status
func (m *Manager) Counts(ctx context.Context) map[FileStatus]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[FileStatus]int)
	for _, info := range m.files {
		counts[info.Status]++
	}
	return counts
}
