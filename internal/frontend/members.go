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

// buildBases extracts the base class specifiers, in declaration order. The
// virtual keyword applies to the next base type only.
func (b *builder) buildBases(rd *recordDecl) {
	clause := namedChildOfType(rd.node, "base_class_clause")
	if clause == nil {
		return
	}

	virtual := false

	for i := 0; i < int(clause.ChildCount()); i++ {
		c := clause.Child(i)

		switch c.Type() {
		case "virtual":
			virtual = true

		case "access_specifier", ":", ",", "comment":
			// keeps the pending virtual flag

		case "type_identifier", "qualified_identifier", "template_type":
			if virtual {
				rd.hasVirtualBase = true
			}

			rd.rec.Bases = append(rd.rec.Bases, typegraph.Base{
				Type:       b.resolveType(b.text(c)),
				Virtual:    virtual,
				DeclaredAt: b.location(c),
			})

			virtual = false

		default:
			if b.text(c) == "virtual" { // older grammars expose the keyword differently
				virtual = true
			}
		}
	}
}

// buildMembers walks the member list in declaration order, extracting data
// members and constructors and noting the special members that suppress the
// implicit move constructor.
func (b *builder) buildMembers(rd *recordDecl) {
	for i := 0; i < int(rd.body.NamedChildCount()); i++ {
		member := rd.body.NamedChild(i)

		switch member.Type() {
		case "field_declaration", "declaration", "function_definition":
			if fd := functionDeclarator(member); fd != nil {
				b.buildFunctionMember(rd, member, fd)
			} else if member.Type() == "field_declaration" {
				b.buildDataMembers(rd, member)
			}

		default:
			// access specifiers, nested types, comments, using
			// declarations: nothing to extract here
		}
	}
}

// buildDataMembers appends one field per declarator of a member
// declaration. Pointer and reference members are scalar for the purposes of
// moving and resolve to a builtin-like type.
func (b *builder) buildDataMembers(rd *recordDecl, n *sitter.Node) {
	typeNode := n.ChildByFieldName("type")
	if typeNode == nil {
		return
	}

	static := b.hasStorageClass(n, "static")
	typeName := b.text(typeNode)

	for i := 0; i < int(n.NamedChildCount()); i++ {
		d := n.NamedChild(i)
		if !isDeclarator(d.Type()) {
			continue
		}

		name := declaratorName(b, d)
		if name == "" {
			continue
		}

		// Pointer and reference members are scalar: moving them is
		// trivial whatever they point at.
		fieldType := b.resolveType(typeName)
		switch {
		case hasDescendantOfType(d, "pointer_declarator") || strings.Contains(b.text(d), "*"):
			fieldType = b.scalarType(typeName + "*")

		case hasDescendantOfType(d, "reference_declarator"):
			fieldType = b.scalarType(typeName + "&")
		}

		rd.rec.Fields = append(rd.rec.Fields, typegraph.Field{
			Name:       name,
			Type:       fieldType,
			OwnMember:  !static,
			DeclaredAt: b.location(d),
		})
	}
}

// buildFunctionMember classifies a member function declaration: a
// constructor is parsed fully, other special members only set the flags
// that drive implicit member synthesis and triviality.
func (b *builder) buildFunctionMember(rd *recordDecl, n, fd *sitter.Node) {
	if hasChildOfType(n, "virtual", "virtual_function_specifier") {
		rd.hasVirtualMethod = true
	}

	name := fd.ChildByFieldName("declarator")
	if name == nil {
		return
	}

	switch name.Type() {
	case "destructor_name":
		rd.declaredDtor = true
		if !hasChildOfType(n, "default_method_clause") {
			rd.providedDtor = true
		}

	case "operator_name":
		if strings.Contains(b.text(name), "=") {
			rd.declaredAssign = true
			if !hasChildOfType(n, "default_method_clause") {
				rd.providedAssign = true
			}
		}

	case "identifier", "field_identifier", "type_identifier":
		if b.text(name) == rd.local {
			b.buildConstructor(rd, n, fd)
		}
	}
}

// buildConstructor appends a constructor descriptor, classifying copy and
// move constructors by their single parameter.
func (b *builder) buildConstructor(rd *recordDecl, n, fd *sitter.Node) {
	move, copyCtor := b.classifyConstructor(rd, fd)

	defaulted := hasChildOfType(n, "default_method_clause")
	deleted := hasChildOfType(n, "delete_method_clause")

	if move {
		rd.declaredMove = true
		rd.providedMove = !defaulted && !deleted
		rd.deletedMove = deleted
	}

	if copyCtor {
		rd.declaredCopy = true
		rd.providedCopy = !defaulted && !deleted
		rd.deletedCopy = deleted
	}

	if deleted {
		return // a deleted constructor does not take part in overload resolution
	}

	spec := b.exceptionSpec(fd)
	if defaulted && spec.Kind == typegraph.SpecNone {
		spec.Kind = typegraph.SpecImplicit
	}

	rd.rec.Constructors = append(rd.rec.Constructors, typegraph.Constructor{
		Parent:       rd.rec,
		Move:         move,
		Copy:         copyCtor,
		UserProvided: !defaulted,
		Spec:         spec,
		DeclaredAt:   b.location(n),
	})
}

// classifyConstructor inspects the parameter list: a single parameter of
// the record's own type is a copy constructor for an lvalue reference and a
// move constructor for an rvalue reference.
func (b *builder) classifyConstructor(rd *recordDecl, fd *sitter.Node) (move, copyCtor bool) {
	params := fd.ChildByFieldName("parameters")
	if params == nil {
		return false, false
	}

	var only *sitter.Node

	for i := 0; i < int(params.NamedChildCount()); i++ {
		p := params.NamedChild(i)
		if p.Type() != "parameter_declaration" && p.Type() != "optional_parameter_declaration" {
			continue
		}

		if only != nil {
			return false, false // more than one parameter
		}

		only = p
	}

	if only == nil {
		return false, false
	}

	base := normalizeTypeName(b.childText(only, "type"))
	if base != rd.local && base != rd.name {
		return false, false
	}

	text := b.text(only)
	switch {
	case strings.Contains(text, "&&"):
		return true, false

	case strings.Contains(text, "&"):
		return false, true

	default:
		return false, false
	}
}

// functionDeclarator digs the function declarator out of a member
// declaration, skipping reference and pointer wrappers around the return
// type.
func functionDeclarator(n *sitter.Node) *sitter.Node {
	d := n.ChildByFieldName("declarator")

	for d != nil {
		switch d.Type() {
		case "function_declarator":
			return d

		case "pointer_declarator", "reference_declarator":
			d = d.ChildByFieldName("declarator")
			if d == nil {
				return nil
			}

		default:
			return nil
		}
	}

	return nil
}

func isDeclarator(nodeType string) bool {
	switch nodeType {
	case "field_identifier", "identifier", "array_declarator", "pointer_declarator",
		"reference_declarator", "init_declarator":
		return true

	default:
		return false
	}
}

// declaratorName finds the declared identifier inside a possibly wrapped
// declarator.
func declaratorName(b *builder, d *sitter.Node) string {
	switch d.Type() {
	case "field_identifier", "identifier":
		return b.text(d)
	}

	for i := 0; i < int(d.NamedChildCount()); i++ {
		if name := declaratorName(b, d.NamedChild(i)); name != "" {
			return name
		}
	}

	return ""
}

// namedChildOfType returns the first named child with the given node type.
func namedChildOfType(n *sitter.Node, nodeType string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == nodeType {
			return c
		}
	}

	return nil
}

// hasChildOfType reports whether a direct child has one of the given node
// types.
func hasChildOfType(n *sitter.Node, nodeTypes ...string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		c := n.Child(i)
		for _, t := range nodeTypes {
			if c.Type() == t {
				return true
			}
		}
	}

	return false
}

// hasStorageClass reports whether a declaration carries the given storage
// class specifier, e.g. "static".
func (b *builder) hasStorageClass(n *sitter.Node, keyword string) bool {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "storage_class_specifier" && b.text(c) == keyword {
			return true
		}
	}

	return false
}

// hasDescendantOfType reports whether the subtree contains a node of the
// given type.
func hasDescendantOfType(n *sitter.Node, nodeType string) bool {
	if n.Type() == nodeType {
		return true
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		if hasDescendantOfType(n.NamedChild(i), nodeType) {
			return true
		}
	}

	return false
}
