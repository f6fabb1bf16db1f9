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

package excspec

import "fillmore-labs.com/moveguard/internal/typegraph"

// Classify maps a constructor's raw exception specification to a [State].
//
// Written specifications are classified directly from their form. Implicitly
// declared constructors carry no written specification; their state is
// derived from the move constructors of the record's bases and fields, the
// same way a compiler computes the implicit noexcept.
func Classify(ctor *typegraph.Constructor) State {
	if ctor == nil {
		return Unknown
	}

	switch ctor.Spec.Kind {
	case typegraph.SpecNoexcept, typegraph.SpecNoexceptTrue, typegraph.SpecDynamicNone:
		return NotThrowing

	case typegraph.SpecNone, typegraph.SpecNoexceptFalse, typegraph.SpecDynamic:
		return Throwing

	case typegraph.SpecNoexceptDependent, typegraph.SpecUnresolved:
		return Unknown

	case typegraph.SpecImplicit:
		return classifyImplicit(ctor.Parent)

	default:
		return Unknown
	}
}

// classifyImplicit derives the state of an implicitly declared move
// constructor from the record's bases and fields. A single throwing
// subobject makes the whole constructor throwing; a single unresolved one
// makes it unknown. Virtual bases take part here even though the tracer
// never blames them.
func classifyImplicit(r *typegraph.Record) State {
	if r == nil {
		return Unknown
	}

	state := NotThrowing

	for i := range r.Bases {
		state = combine(state, subobjectMoveState(r.Bases[i].Type))
		if state == Throwing {
			return Throwing
		}
	}

	for i := range r.Fields {
		if !r.Fields[i].OwnMember {
			continue
		}

		state = combine(state, subobjectMoveState(r.Fields[i].Type))
		if state == Throwing {
			return Throwing
		}
	}

	return state
}

// combine merges the states of two subobjects: Throwing dominates, then
// Unknown.
func combine(a, b State) State {
	switch {
	case a == Throwing || b == Throwing:
		return Throwing

	case a == Unknown || b == Unknown:
		return Unknown

	default:
		return NotThrowing
	}
}

// subobjectMoveState classifies the constructor an implicit move would
// invoke for one subobject of the given type.
func subobjectMoveState(t *typegraph.Type) State {
	if t == nil {
		return Unknown
	}

	switch t.Kind {
	case typegraph.Builtin, typegraph.Enum:
		return NotThrowing

	case typegraph.RecordKind:
		r := t.Record
		if r == nil {
			return Unknown
		}

		if r.TriviallyCopyable {
			return NotThrowing
		}

		return Classify(subobjectConstructor(r))

	default:
		return Unknown
	}
}

// subobjectConstructor selects the constructor an implicit move uses for a
// member of record type: the member's move constructor when it has one,
// otherwise its copy constructor.
func subobjectConstructor(r *typegraph.Record) *typegraph.Constructor {
	if ctor := r.MoveConstructor(); ctor != nil {
		return ctor
	}

	for i := range r.Constructors {
		if r.Constructors[i].Copy {
			return &r.Constructors[i]
		}
	}

	return nil
}
