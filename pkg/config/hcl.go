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
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/slidefit/pkg/responsive"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".hcl")
}

// evalContext exposes the built-in defaults, so a file can say
// reference_height = defaults.reference_width * 9 / 16
func evalContext() *hcl.EvalContext {
	opts := responsive.DefaultOptions()

	floors := make(map[string]cty.Value, len(opts.Headings))
	for _, h := range opts.Headings {
		floors[h.Selector] = cty.NumberIntVal(int64(h.Floor))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"include":          cty.StringVal(DefaultInclude),
				"reference_width":  cty.NumberIntVal(int64(opts.ReferenceWidth)),
				"reference_height": cty.NumberIntVal(int64(opts.ReferenceHeight)),
				"floor":            cty.MapVal(floors),
			}),
		},
	}
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Define HCL schema
	type hclConfig struct {
		Include         []string `hcl:"include,optional"`
		Exclude         []string `hcl:"exclude,optional"`
		ReferenceWidth  int      `hcl:"reference_width,optional"`
		ReferenceHeight int      `hcl:"reference_height,optional"`
		Atomic          *bool    `hcl:"atomic,optional"`
		Headings        []struct {
			Selector string `hcl:"selector,label"`
			Floor    int    `hcl:"floor"`
		} `hcl:"heading,block"`
	}

	// Decode HCL
	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to model
	cfg := &Config{
		Include:         hclCfg.Include,
		Exclude:         hclCfg.Exclude,
		ReferenceWidth:  hclCfg.ReferenceWidth,
		ReferenceHeight: hclCfg.ReferenceHeight,
		Atomic:          hclCfg.Atomic,
	}
	for _, h := range hclCfg.Headings {
		cfg.Headings = append(cfg.Headings, Heading{Selector: h.Selector, Floor: h.Floor})
	}

	return cfg, nil
}
