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

// containerMatcher matches spelled template names against the configured
// container names. An unqualified spelling matches a qualified
// configuration, covering using-directives; the frontend does not track
// them.
type containerMatcher struct {
	qualified   map[string]struct{}
	unqualified map[string]struct{}
}

func newContainerMatcher(containers []string) *containerMatcher {
	m := &containerMatcher{
		qualified:   make(map[string]struct{}, len(containers)),
		unqualified: make(map[string]struct{}, len(containers)),
	}

	for _, c := range containers {
		m.qualified[c] = struct{}{}

		if i := strings.LastIndex(c, "::"); i >= 0 {
			m.unqualified[c[i+2:]] = struct{}{}
		} else {
			m.unqualified[c] = struct{}{}
		}
	}

	return m
}

func (m *containerMatcher) matches(full, name string) bool {
	if _, ok := m.qualified[full]; ok {
		return true
	}

	if full != name {
		return false // qualified with a non-matching scope
	}

	_, ok := m.unqualified[name]

	return ok
}

// extractSites walks the tree for container template references and
// resolves their first template argument as the element type. Sites appear
// in source order.
func (b *builder) extractSites(root *sitter.Node, containers []string) []typegraph.ContainerSite {
	m := newContainerMatcher(containers)

	var sites []typegraph.ContainerSite
	b.findSites(root, m, &sites)

	return sites
}

func (b *builder) findSites(n *sitter.Node, m *containerMatcher, sites *[]typegraph.ContainerSite) {
	if n.Type() == "template_type" {
		if site, ok := b.containerSite(n, m); ok {
			*sites = append(*sites, site)
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		b.findSites(n.NamedChild(i), m, sites)
	}
}

func (b *builder) containerSite(n *sitter.Node, m *containerMatcher) (typegraph.ContainerSite, bool) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return typegraph.ContainerSite{}, false
	}

	name := b.text(nameNode)

	// Collect the namespace qualification, outermost scope first. The
	// template is the name side of each enclosing qualified identifier.
	full, outer := name, n
	for p := outer.Parent(); p != nil && p.Type() == "qualified_identifier"; p = p.Parent() {
		if scope := p.ChildByFieldName("scope"); scope != nil {
			full = b.text(scope) + "::" + full
		}

		outer = p
	}

	if !m.matches(full, name) {
		return typegraph.ContainerSite{}, false
	}

	elemName, ok := b.firstTypeArgument(n)
	if !ok {
		return typegraph.ContainerSite{}, false
	}

	return typegraph.ContainerSite{
		Container: name + "<" + elemName + ">",
		Element:   b.resolveType(elemName),
		At:        b.location(outer),
	}, true
}

// firstTypeArgument returns the spelled first template argument when it is
// a type.
func (b *builder) firstTypeArgument(n *sitter.Node) (string, bool) {
	args := n.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return "", false
	}

	arg := args.NamedChild(0)
	if arg.Type() != "type_descriptor" {
		return "", false // a value argument, not a type
	}

	name := b.childText(arg, "type")
	if name == "" {
		name = b.text(arg)
	}

	return normalizeTypeName(name), true
}
