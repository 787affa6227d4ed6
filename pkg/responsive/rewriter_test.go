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

package responsive

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockFileStore is a mock implementation of the FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	result := m.Called(ctx, path)
	data, _ := result.Get(0).([]byte)
	return data, result.Error(1)
}

func (m *MockFileStore) WriteFile(ctx context.Context, path string, content []byte) error {
	result := m.Called(ctx, path, content)
	return result.Error(0)
}

const deck = `<style>
    h1 {
        font-size: 40px;
    }
</style>`

func TestNew(t *testing.T) {
	_, err := New(DefaultOptions(), nil)
	require.Error(t, err, "file store is required")

	opts := DefaultOptions()
	opts.ReferenceWidth = 0
	_, err = New(opts, &MockFileStore{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reference width must be positive")

	opts = DefaultOptions()
	opts.Headings = append(opts.Headings, HeadingFloor{Selector: "h1", Floor: 10})
	_, err = New(opts, &MockFileStore{})
	require.Error(t, err, "duplicate heading selector should produce duplicate rule names")
	assert.Contains(t, err.Error(), "already used")
}

func TestRewriter_ProcessFile(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		setup       func(m *MockFileStore)
		check       func(t *testing.T, m *MockFileStore)
		wantErr     bool
		errContains string
	}{
		{
			name: "rewrites_and_writes",
			path: "deck.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "deck.html").Return([]byte(deck), nil)
				m.On("WriteFile", mock.Anything, "deck.html", mock.MatchedBy(func(b []byte) bool {
					return strings.Contains(string(b), "font-size: clamp(24px, 2.1vw, 40px);") &&
						strings.Contains(string(b), BreakpointMarker)
				})).Return(nil)
			},
		},
		{
			name: "writes_unchanged_content",
			path: "plain.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "plain.html").Return([]byte("<p>hello</p>"), nil)
				m.On("WriteFile", mock.Anything, "plain.html", []byte("<p>hello</p>")).Return(nil)
			},
		},
		{
			name: "read_error",
			path: "missing.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "missing.html").Return(nil, errors.New("no such file"))
			},
			check: func(t *testing.T, m *MockFileStore) {
				m.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
			},
			wantErr:     true,
			errContains: "reading missing.html",
		},
		{
			name: "invalid_utf8",
			path: "binary.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "binary.html").Return([]byte{0xff, 0xfe, 0x00}, nil)
			},
			check: func(t *testing.T, m *MockFileStore) {
				m.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
			},
			wantErr:     true,
			errContains: "not valid UTF-8",
		},
		{
			name: "malformed_css_is_not_written",
			path: "broken.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "broken.html").Return([]byte("<style>.slide { width: 1920px;</style>"), nil)
			},
			check: func(t *testing.T, m *MockFileStore) {
				m.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
			},
			wantErr:     true,
			errContains: "no closing brace",
		},
		{
			name: "write_error",
			path: "ro.html",
			setup: func(m *MockFileStore) {
				m.On("ReadFile", mock.Anything, "ro.html").Return([]byte(deck), nil)
				m.On("WriteFile", mock.Anything, "ro.html", mock.Anything).Return(errors.New("permission denied"))
			},
			wantErr:     true,
			errContains: "writing ro.html: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := &MockFileStore{}
			tt.setup(files)

			r, err := New(DefaultOptions(), files)
			require.NoError(t, err, "creating rewriter should succeed")

			result, err := r.ProcessFile(context.Background(), tt.path)
			if tt.wantErr {
				require.Error(t, err, "ProcessFile should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error should mention the cause")
			} else {
				require.NoError(t, err, "ProcessFile should succeed")
				require.NotNil(t, result)
				files.AssertExpectations(t)
			}

			if tt.check != nil {
				tt.check(t, files)
			}
		})
	}
}

func TestRewriter_Preview(t *testing.T) {
	files := &MockFileStore{}
	files.On("ReadFile", mock.Anything, "deck.html").Return([]byte(deck), nil)

	r, err := New(DefaultOptions(), files)
	require.NoError(t, err)

	result, err := r.Preview(context.Background(), "deck.html")
	require.NoError(t, err)

	assert.True(t, result.WasModified)
	assert.Equal(t, deck, string(result.OriginalContent))
	assert.Equal(t, 2, result.ReplacementCount, "one font size and one breakpoint block")
	files.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}
