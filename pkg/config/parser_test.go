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

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	// Save original parsers
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	// Reset parsers
	parsers = nil
	assert.Nil(t, GetParser(".slidefit.yaml"), "no parser should match an empty registry")

	Register(&TOMLParser{})
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.IsType(t, &TOMLParser{}, GetParser("x.toml"))
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: ".slidefit.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: ".slidefit.yml", want: &YAMLParser{}},
		{name: "upper_case_yaml", filename: "SLIDEFIT.YAML", want: &YAMLParser{}},
		{name: "hcl_file", filename: ".slidefit.hcl", want: &HCLParser{}},
		{name: "json_file", filename: ".slidefit.json", want: &JSONParser{}},
		{name: "toml_file", filename: ".slidefit.toml", want: &TOMLParser{}},
		{name: "unknown_file", filename: ".slidefit.ini", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should not find a parser")
				return
			}
			assert.IsType(t, tt.want, got, "parser type should match")
		})
	}
}

// 🧪 TestParsersRejectUnknownFields checks strict decoding in every format
func TestParsersRejectUnknownFields(t *testing.T) {
	tests := []struct {
		name        string
		parser      Parser
		data        string
		errContains string
	}{
		{name: "yaml", parser: &YAMLParser{}, data: "widht: 1920\n", errContains: "parsing YAML"},
		{name: "hcl", parser: &HCLParser{}, data: "widht = 1920\n", errContains: "Unsupported argument"},
		{name: "json", parser: &JSONParser{}, data: `{"widht": 1920}`, errContains: "unknown field"},
		{name: "toml", parser: &TOMLParser{}, data: "widht = 1920\n", errContains: "parsing TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parser.Parse(context.Background(), []byte(tt.data))
			require.Error(t, err, "unknown fields should be rejected")
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

// 🧪 TestParsersAgree checks that the same settings decode the same way in every format
func TestParsersAgree(t *testing.T) {
	inputs := []struct {
		parser Parser
		data   string
	}{
		{&YAMLParser{}, "exclude: [\"a.html\"]\nreference_width: 1280\nheadings:\n  - selector: h1\n    floor: 30\n"},
		{&HCLParser{}, "exclude = [\"a.html\"]\nreference_width = 1280\nheading \"h1\" {\n  floor = 30\n}\n"},
		{&JSONParser{}, `{"exclude": ["a.html"], "reference_width": 1280, "headings": [{"selector": "h1", "floor": 30}]}`},
		{&TOMLParser{}, "exclude = [\"a.html\"]\nreference_width = 1280\n[[headings]]\nselector = \"h1\"\nfloor = 30\n"},
	}

	want := &Config{
		Exclude:        []string{"a.html"},
		ReferenceWidth: 1280,
		Headings:       []Heading{{Selector: "h1", Floor: 30}},
	}

	for _, in := range inputs {
		got, err := in.parser.Parse(context.Background(), []byte(in.data))
		require.NoError(t, err, "%T should parse", in.parser)
		assert.Equal(t, want, got, "%T should decode the same config", in.parser)
	}
}

func TestJSONParser(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		want        *Config
		errContains string
	}{
		{name: "empty_file", data: "", want: &Config{}},
		{name: "whitespace_only", data: "  \n\t\n", want: &Config{}},
		{name: "byte_order_mark", data: "\xef\xbb\xbf{\"reference_width\": 1280}\n", want: &Config{ReferenceWidth: 1280}},
		{name: "trailing_newline", data: "{\"include\": [\"*.htm\"]}\n", want: &Config{Include: []string{"*.htm"}}},
		{name: "second_object", data: `{"reference_width": 1280} {"reference_width": 800}`, errContains: "unexpected data after the config object"},
		{name: "trailing_garbage", data: `{} ,`, errContains: "unexpected data after the config object"},
		{name: "not_an_object", data: `[1, 2]`, errContains: "parsing JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := (&JSONParser{}).Parse(context.Background(), []byte(tt.data))
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
