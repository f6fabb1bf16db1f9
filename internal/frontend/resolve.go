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

	"fillmore-labs.com/moveguard/internal/typegraph"
)

// builtinWords are the words fundamental type spellings are composed of.
var builtinWords = map[string]struct{}{
	"void": {}, "bool": {}, "char": {}, "wchar_t": {},
	"char8_t": {}, "char16_t": {}, "char32_t": {},
	"short": {}, "int": {}, "long": {},
	"float": {}, "double": {},
	"signed": {}, "unsigned": {},
	// common integer typedefs, resolved optimistically
	"size_t": {}, "ptrdiff_t": {}, "nullptr_t": {},
	"int8_t": {}, "int16_t": {}, "int32_t": {}, "int64_t": {},
	"uint8_t": {}, "uint16_t": {}, "uint32_t": {}, "uint64_t": {},
	"intptr_t": {}, "uintptr_t": {},
}

// droppedWords are specifier words irrelevant for name lookup.
var droppedWords = map[string]struct{}{
	"const": {}, "volatile": {}, "struct": {}, "class": {},
	"enum": {}, "typename": {}, "mutable": {},
}

// normalizeTypeName strips qualifiers and elaboration keywords from a
// spelled type and collapses whitespace.
func normalizeTypeName(name string) string {
	var kept []string

	for _, word := range strings.Fields(name) {
		if _, drop := droppedWords[word]; !drop {
			kept = append(kept, word)
		}
	}

	return strings.Join(kept, " ")
}

// resolveType resolves a spelled type name against the translation unit's
// name table. Types are memoized, so two references to the same name share
// one descriptor. Names that cannot be resolved yield an unresolved type,
// which the analysis treats as safe.
func (b *builder) resolveType(name string) *typegraph.Type {
	name = normalizeTypeName(name)
	if name == "" {
		return &typegraph.Type{Kind: typegraph.Unresolved}
	}

	if t, ok := b.types[name]; ok {
		return t
	}

	t := &typegraph.Type{Name: name}
	b.types[name] = t

	switch {
	case isBuiltin(name):
		t.Kind = typegraph.Builtin

	case b.isEnum(name):
		t.Kind = typegraph.Enum

	default:
		if rd := b.lookupRecord(name); rd != nil {
			t.Kind = typegraph.RecordKind
			t.Record = rd.rec

			break
		}

		if _, fwd := b.forward[name]; fwd {
			t.Kind = typegraph.RecordKind // declared but never defined

			break
		}

		t.Kind = typegraph.Unresolved
	}

	return t
}

// scalarType returns a builtin-kind descriptor for pointer and reference
// members, which are trivially movable regardless of their pointee.
func (b *builder) scalarType(name string) *typegraph.Type {
	if t, ok := b.types[name]; ok {
		return t
	}

	t := &typegraph.Type{Name: name, Kind: typegraph.Builtin}
	b.types[name] = t

	return t
}

func isBuiltin(name string) bool {
	words := strings.Fields(name)
	if len(words) == 0 {
		return false
	}

	for _, word := range words {
		if _, ok := builtinWords[word]; !ok {
			return false
		}
	}

	return true
}

func (b *builder) isEnum(name string) bool {
	_, ok := b.enums[name]

	return ok
}

// lookupRecord finds a record definition by qualified name first, then by
// unqualified spelling.
func (b *builder) lookupRecord(name string) *recordDecl {
	if rd, ok := b.byName[name]; ok {
		return rd
	}

	if rd, ok := b.alias[name]; ok {
		return rd
	}

	return nil
}
