package text

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func literal(name, from, to string) Rule {
	return RuleFunc{
		RuleName: name,
		Fn: func(ctx context.Context, content string) (string, int, error) {
			n := strings.Count(content, from)
			return strings.ReplaceAll(content, from, to), n, nil
		},
	}
}

func TestPipeline_Run(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		rules        []Rule
		want         string
		wantCount    int
		wantError    string
		wantModified bool
	}{
		{
			name:         "simple_replacement",
			content:      "Hello World",
			rules:        []Rule{literal("world", "World", "Universe")},
			want:         "Hello Universe",
			wantCount:    1,
			wantModified: true,
		},
		{
			name:    "rules_see_previous_output",
			content: "a",
			rules: []Rule{
				literal("a_to_b", "a", "b"),
				literal("b_to_c", "b", "c"),
			},
			want:         "c",
			wantCount:    2,
			wantModified: true,
		},
		{
			name:         "no_match",
			content:      "Hello World",
			rules:        []Rule{literal("goodbye", "Goodbye", "Hi")},
			want:         "Hello World",
			wantModified: false,
		},
		{
			name:         "empty_content",
			content:      "",
			rules:        []Rule{literal("world", "World", "Universe")},
			want:         "",
			wantModified: false,
		},
		{
			name:         "empty_rules",
			content:      "Hello World",
			rules:        nil,
			want:         "Hello World",
			wantModified: false,
		},
		{
			name:    "failing_rule",
			content: "Hello World",
			rules: []Rule{RuleFunc{
				RuleName: "broken",
				Fn: func(ctx context.Context, content string) (string, int, error) {
					return "", 0, errors.New("boom")
				},
			}},
			wantError: "applying rule broken: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewPipeline(tt.rules...).Run(context.Background(), strings.NewReader(tt.content))

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.content, string(result.OriginalContent))
			assert.Equal(t, tt.want, string(result.ModifiedContent))
			assert.Equal(t, tt.wantCount, result.ReplacementCount)
			assert.Equal(t, tt.wantModified, result.WasModified)
			assert.Len(t, result.Applied, len(tt.rules))
		})
	}
}

func TestRegexpRule_Apply(t *testing.T) {
	rule := NewRegexpRule("double", `(\d+)px`, func(content string, loc []int, groups []string) (string, bool, error) {
		if groups[1] == "0" {
			return "", false, nil
		}
		return groups[1] + groups[1] + "px", true, nil
	})

	got, n, err := rule.Apply(context.Background(), "a: 1px; b: 0px; c: 23px")
	require.NoError(t, err)
	assert.Equal(t, "a: 11px; b: 0px; c: 2323px", got)
	assert.Equal(t, 2, n, "declined matches are not counted")

	got, n, err = rule.Apply(context.Background(), "nothing here")
	require.NoError(t, err)
	assert.Equal(t, "nothing here", got)
	assert.Zero(t, n)
}

func TestRegexpRule_ApplyError(t *testing.T) {
	rule := NewRegexpRule("fails", `x`, func(content string, loc []int, groups []string) (string, bool, error) {
		return "", false, errors.New("bad match")
	})

	_, _, err := rule.Apply(context.Background(), "..x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rule fails at offset 2: bad match")
}

func TestPipeline_ValidateRules(t *testing.T) {
	tests := []struct {
		name      string
		rules     []Rule
		wantError string
	}{
		{
			name:  "valid_rules",
			rules: []Rule{literal("a", "a", "b"), literal("b", "b", "c")},
		},
		{
			name:      "missing_name",
			rules:     []Rule{literal("", "a", "b")},
			wantError: "name is required",
		},
		{
			name:      "duplicate_name",
			rules:     []Rule{literal("a", "a", "b"), literal("a", "b", "c")},
			wantError: `rule 1: name "a" already used by rule 0`,
		},
		{
			name:      "nil_rule",
			rules:     []Rule{nil},
			wantError: "rule is nil",
		},
		{
			name: "empty_rules",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewPipeline(tt.rules...).ValidateRules()

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
		})
	}
}
