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

package frontend

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/moveguard/internal/typegraph"
)

// exceptionSpec extracts the raw exception specification from a function
// declarator. Absence of any specification is SpecNone, potentially
// throwing.
func (b *builder) exceptionSpec(fd *sitter.Node) typegraph.ExceptionSpec {
	for i := 0; i < int(fd.NamedChildCount()); i++ {
		c := fd.NamedChild(i)

		switch c.Type() {
		case "noexcept":
			return typegraph.ExceptionSpec{Kind: parseNoexcept(b.text(c))}

		case "throw_specifier":
			return typegraph.ExceptionSpec{Kind: parseThrowSpecifier(b.text(c))}
		}
	}

	return typegraph.ExceptionSpec{Kind: typegraph.SpecNone}
}

// parseNoexcept folds the argument of a noexcept specification. Only the
// literals true and false fold; any other expression stays dependent, which
// the classifier resolves to unknown.
func parseNoexcept(text string) typegraph.SpecKind {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "noexcept"))
	if rest == "" {
		return typegraph.SpecNoexcept
	}

	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")"))
	switch inner {
	case "true":
		return typegraph.SpecNoexceptTrue

	case "false":
		return typegraph.SpecNoexceptFalse

	default:
		return typegraph.SpecNoexceptDependent
	}
}

// parseThrowSpecifier distinguishes the empty dynamic specification throw()
// from a throwing one.
func parseThrowSpecifier(text string) typegraph.SpecKind {
	rest := strings.TrimSpace(strings.TrimPrefix(text, "throw"))

	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(rest, "("), ")"))
	if inner == "" {
		return typegraph.SpecDynamicNone
	}

	return typegraph.SpecDynamic
}
