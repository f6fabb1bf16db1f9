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

package report

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// styles holds the render styles for one diagnostic line. The zero value
// renders plain text.
type styles struct {
	location lipgloss.Style
	warning  lipgloss.Style
	note     lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		return styles{}
	}

	return styles{
		location: lipgloss.NewStyle().Bold(true),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		note:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	}
}

// ColorSupported reports whether out is a terminal that can take colored
// output. NO_COLOR disables color regardless.
func ColorSupported(out io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := out.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
