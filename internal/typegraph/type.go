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

package typegraph

// Kind classifies a resolved type.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// Unresolved marks a type the frontend could not resolve to a
	// declaration. Unresolved types are never blamed.
	Unresolved Kind = iota // unresolved

	// Builtin is a fundamental type such as int or double.
	Builtin // builtin

	// Enum is an enumeration type.
	Enum // enum

	// RecordKind is a class or struct type. The definition may still be
	// invisible; see [Type.Definition].
	RecordKind // record
)

// Type describes a type as far as the frontend could see it. The spelled
// Name is preserved for diagnostics.
type Type struct {
	Name   string
	Kind   Kind
	Record *Record // definition, nil when none is visible
}

// Definition returns the record definition backing the type, or nil for
// scalar, unresolved and incomplete record types.
func (t *Type) Definition() *Record {
	if t == nil || t.Kind != RecordKind {
		return nil
	}

	return t.Record
}
