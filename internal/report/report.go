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

// Package report renders findings in compiler diagnostic format, one
// warning line per finding followed by notes tracing the causal chain.
package report

import (
	"fmt"
	"io"

	"fillmore-labs.com/moveguard/check"
	"fillmore-labs.com/moveguard/internal/degrade"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// Renderer writes findings to a single output stream. A Renderer is
// stateless and safe for concurrent use as long as the underlying writer
// is.
type Renderer struct {
	out    io.Writer
	styles styles
}

// NewRenderer creates a [Renderer] writing to out. With color enabled,
// severities and locations are styled; see [ColorSupported] for terminal
// detection.
func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{out: out, styles: newStyles(color)}
}

// RenderAll writes all findings in order and returns the first write
// error.
func (r *Renderer) RenderAll(findings []check.Finding) error {
	for _, f := range findings {
		if err := r.Render(f); err != nil {
			return err
		}
	}

	return nil
}

// Render writes one finding: the warning at the instantiation site, then
// two notes per chain step, the blamed record's definition and the cause
// within it.
func (r *Renderer) Render(f check.Finding) error {
	message := fmt.Sprintf(
		"'%s' will copy elements on resize instead of moving because the move constructor of '%s' may throw",
		f.Container, f.Element.Name)

	if err := r.line(f.At, r.styles.warning.Render("warning:"), message, " ["+check.Name+"]"); err != nil {
		return err
	}

	for _, step := range f.Chain {
		if err := r.step(step); err != nil {
			return err
		}
	}

	return nil
}

func (r *Renderer) step(step degrade.CauseStep) error {
	defined := fmt.Sprintf("'%s' defined here", step.Record.DisplayName())
	if err := r.line(step.Record.DefinedAt, r.styles.note.Render("note:"), defined, ""); err != nil {
		return err
	}

	var cause string
	if t := step.BlamedType(); t != nil {
		cause = fmt.Sprintf("because the move constructor of '%s' may throw", t.Name)
	} else {
		cause = "throwing move constructor declared here"
	}

	return r.line(step.Location(), r.styles.note.Render("note:"), cause, "")
}

func (r *Renderer) line(at typegraph.Location, severity, message, tag string) error {
	location := r.styles.location.Render(at.String() + ":")

	_, err := fmt.Fprintf(r.out, "%s %s %s%s\n", location, severity, message, tag)

	return err
}
