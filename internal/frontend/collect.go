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

// builder accumulates the declarations of one translation unit and turns
// them into typegraph descriptors.
type builder struct {
	src  []byte
	path string

	decls   []*recordDecl
	byName  map[string]*recordDecl
	alias   map[string]*recordDecl
	enums   map[string]struct{}
	forward map[string]struct{}
	types   map[string]*typegraph.Type
}

// recordDecl is a collected record definition plus the bookkeeping needed to
// synthesize implicit members and the triviality fact.
type recordDecl struct {
	node    *sitter.Node
	body    *sitter.Node
	name    string // qualified
	local   string // unqualified
	keyword string

	rec *typegraph.Record

	// declared* track user-declared special members, including defaulted
	// and deleted ones; they suppress the implicit move constructor.
	declaredCopy   bool
	declaredMove   bool
	declaredAssign bool
	declaredDtor   bool

	// provided*/deleted* feed the triviality approximation; a defaulted
	// special member keeps the record trivially copyable, a user-provided
	// or deleted one does not.
	providedCopy   bool
	providedMove   bool
	providedAssign bool
	providedDtor   bool
	deletedCopy    bool
	deletedMove    bool

	hasVirtualMethod bool
	hasVirtualBase   bool

	trivial trivialState
}

type trivialState uint8

const (
	trivialUnknown trivialState = iota
	trivialComputing
	trivialTrue
	trivialFalse
)

func newBuilder(src []byte, path string) *builder {
	return &builder{
		src:     src,
		path:    path,
		byName:  make(map[string]*recordDecl),
		alias:   make(map[string]*recordDecl),
		enums:   make(map[string]struct{}),
		forward: make(map[string]struct{}),
		types:   make(map[string]*typegraph.Type),
	}
}

// collect walks the tree and registers record definitions, enumerations and
// forward declarations. The scope stack holds the names of enclosing record
// definitions, qualifying nested types as "Outer::Inner".
func (b *builder) collect(n *sitter.Node, scope []string) {
	childScope := scope

	switch n.Type() {
	case "class_specifier", "struct_specifier":
		name := b.childText(n, "name")
		if name == "" {
			break // anonymous, nothing to register
		}

		if body := n.ChildByFieldName("body"); body != nil {
			rd := &recordDecl{
				node:    n,
				body:    body,
				name:    qualify(scope, name),
				local:   name,
				keyword: strings.TrimSuffix(n.Type(), "_specifier"),
			}

			b.decls = append(b.decls, rd)
			b.byName[rd.name] = rd

			if _, ok := b.alias[name]; !ok {
				b.alias[name] = rd
			}

			childScope = append(scope[:len(scope):len(scope)], name)
		} else if _, ok := b.byName[qualify(scope, name)]; !ok {
			b.forward[name] = struct{}{}
		}

	case "enum_specifier":
		if name := b.childText(n, "name"); name != "" {
			b.enums[qualify(scope, name)] = struct{}{}
			b.enums[name] = struct{}{}
		}
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		b.collect(n.NamedChild(i), childScope)
	}
}

// build turns the collected declarations into descriptors: first empty
// record shells so forward references resolve, then the members in
// declaration order, then the synthesized implicit move constructors, and
// finally the triviality facts.
func (b *builder) build() {
	for _, rd := range b.decls {
		loc := rd.node
		if name := rd.node.ChildByFieldName("name"); name != nil {
			loc = name
		}

		rd.rec = &typegraph.Record{
			Name:      rd.name,
			Keyword:   rd.keyword,
			DefinedAt: b.location(loc),
		}
	}

	for _, rd := range b.decls {
		b.buildBases(rd)
		b.buildMembers(rd)
	}

	for _, rd := range b.decls {
		b.synthesizeImplicitMove(rd)
	}

	for _, rd := range b.decls {
		rd.rec.TriviallyCopyable = b.triviallyCopyable(rd)
	}
}

// orderedRecords returns the built records in definition order.
func (b *builder) orderedRecords() []*typegraph.Record {
	records := make([]*typegraph.Record, len(b.decls))
	for i, rd := range b.decls {
		records[i] = rd.rec
	}

	return records
}

// synthesizeImplicitMove appends the implicitly declared move constructor
// when the record is eligible for one: no user-declared copy or move
// operation and no user-declared destructor.
func (b *builder) synthesizeImplicitMove(rd *recordDecl) {
	if rd.declaredMove || rd.declaredCopy || rd.declaredAssign || rd.declaredDtor {
		return
	}

	rd.rec.Constructors = append(rd.rec.Constructors, typegraph.Constructor{
		Parent:     rd.rec,
		Move:       true,
		Spec:       typegraph.ExceptionSpec{Kind: typegraph.SpecImplicit},
		DeclaredAt: rd.rec.DefinedAt,
	})
}

// childText returns the text of a field child, or "".
func (b *builder) childText(n *sitter.Node, field string) string {
	c := n.ChildByFieldName(field)
	if c == nil {
		return ""
	}

	return b.text(c)
}

func qualify(scope []string, name string) string {
	if len(scope) == 0 {
		return name
	}

	return strings.Join(scope, "::") + "::" + name
}
