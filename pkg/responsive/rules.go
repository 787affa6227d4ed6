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
	"github.com/walteh/slidefit/pkg/text"
)

// Rules builds the ordered rule set. Order matters: later rules see the
// output of earlier ones, and the global unit rules only touch what the
// block rules left in px.
func Rules(o Options) text.Pipeline {
	divisor := o.divisor()

	rules := []text.Rule{
		containerRule(o),
		bodyRule(),
		replaceBlockRule(slideNumberBlock),
	}

	for _, h := range o.Headings {
		rules = append(rules, fontSizeRule(h, divisor))
	}

	rules = append(rules,
		replaceBlockRule(navContainerBlock),
		replaceBlockRule(slideCounterBlock),
		replaceBlockRule(slideSelectBlock),
		replaceBlockRule(navButtonBlock),
		offsetRule(".nav-btn.prev", "left"),
		offsetRule(".nav-btn.next", "right"),
		shadowRule(divisor),
		radiusRule(divisor),
		breakpointRule(),
	)

	return text.NewPipeline(rules...)
}
