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

// Record is the definition of a class or struct type.
//
// Constructors, Fields and Bases preserve declaration order. The analysis
// relies on this: the first qualifying field or base is the one blamed.
type Record struct {
	// Name is the qualified display name, e.g. "Outer::Inner".
	Name string

	// Keyword is the class key used at the definition, "struct" or "class".
	Keyword string

	// DefinedAt is the source location of the definition.
	DefinedAt Location

	// TriviallyCopyable is the frontend's triviality fact for the record.
	// It accounts for all bases and fields transitively; the analysis
	// consumes it and never recomputes it.
	TriviallyCopyable bool

	Constructors []Constructor
	Fields       []Field
	Bases        []Base
}

// DisplayName returns the record name prefixed with its class key, matching
// the spelling used in diagnostics ("struct Foo", "class Bar").
func (r *Record) DisplayName() string {
	if r.Keyword == "" {
		return r.Name
	}

	return r.Keyword + " " + r.Name
}

// MoveConstructor returns the record's move constructor, or nil when none is
// declared. When several constructors are flagged as move constructors the
// first declared one wins, mirroring the overload restrictions enforced by
// the frontend.
func (r *Record) MoveConstructor() *Constructor {
	for i := range r.Constructors {
		if r.Constructors[i].Move {
			return &r.Constructors[i]
		}
	}

	return nil
}

// Field is a data member of a record.
type Field struct {
	Name string
	Type *Type

	// OwnMember is false for members that do not take part in the object
	// representation, such as static data members.
	OwnMember bool

	DeclaredAt Location
}

// Base is a base class specifier of a record.
type Base struct {
	Type *Type

	// Virtual marks virtual inheritance. Virtual bases are never blamed by
	// the causal chain tracer.
	Virtual bool

	DeclaredAt Location
}
