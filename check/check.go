// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package check

import (
	"fillmore-labs.com/moveguard/internal/config"
	"fillmore-labs.com/moveguard/internal/degrade"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// Public identifiers of the moveguard check.
const (
	// Name tags diagnostics emitted by the check.
	Name = "moveguard"

	// Doc is a one-line description of the check.
	Doc = `moveguard detects container element types that are copied instead of moved on resize`

	// URL points at the check documentation.
	URL = "https://pkg.go.dev/fillmore-labs.com/moveguard"
)

// Finding is one degrading container instantiation site together with its
// causal chain. The chain is ordered outer to inner: the element record
// first, then its immediate cause, then the nested cause.
type Finding struct {
	// Container is the spelled container type at the site.
	Container string

	// Element is the container's element type.
	Element *typegraph.Type

	// At is the location of the instantiation site.
	At typegraph.Location

	// Chain explains the degradation. It is empty when explanations are
	// disabled, and may be empty when no individual entity qualifies.
	Chain degrade.Chain
}

// Checker runs the moveguard check. Create one with [New]; a Checker is
// stateless between calls and safe for concurrent use.
type Checker struct {
	opts *runOptions
}

// New creates a configured [Checker]. It allows for programmatic
// configuration using [Option]; for command-line use the moveguard binary
// is typically sufficient.
func New(opts ...Option) *Checker {
	r := defaultRunOptions()
	Options(opts).apply(r)

	return &Checker{opts: r}
}

// Analyze runs the site driver over a resolved translation unit: every
// container site whose element type degrades yields one [Finding]. The unit
// is only read, never modified, and no state survives the call.
func (c *Checker) Analyze(tu *typegraph.TranslationUnit) []Finding {
	var findings []Finding

	for _, site := range tu.Sites {
		if degrade.Evaluate(site.Element) == degrade.Safe {
			continue
		}

		f := Finding{
			Container: site.Container,
			Element:   site.Element,
			At:        site.At,
		}

		if c.opts.behavior.Enabled(config.ExplainCauses) {
			f.Chain = degrade.Explain(site.Element)
		}

		findings = append(findings, f)
	}

	return findings
}
