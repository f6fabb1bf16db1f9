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

package degrade

import (
	"fillmore-labs.com/moveguard/internal/excspec"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// MaxDepth bounds the length of a causal chain. Nested causes below this
// depth exist but are not reported.
const MaxDepth = 3

// CauseKind names the entity blamed by a chain step.
type CauseKind uint8

//go:generate go tool stringer -type CauseKind -linecomment
const (
	// CauseThrowingMoveConstructor blames the record's own user-provided
	// move constructor. It is always terminal.
	CauseThrowingMoveConstructor CauseKind = iota // throwing move constructor

	// CauseThrowingField blames the first field whose type degrades.
	CauseThrowingField // throwing field

	// CauseThrowingBase blames the first non-virtual base whose type
	// degrades.
	CauseThrowingBase // throwing non-virtual base
)

// CauseStep is one level of a causal chain. Record is the record explained
// at this level; exactly one of Constructor, Field and Base is set,
// according to Kind.
type CauseStep struct {
	Record *typegraph.Record
	Kind   CauseKind

	Constructor *typegraph.Constructor
	Field       *typegraph.Field
	Base        *typegraph.Base
}

// Location returns the position of the blamed entity.
func (s CauseStep) Location() typegraph.Location {
	switch s.Kind {
	case CauseThrowingMoveConstructor:
		return s.Constructor.DeclaredAt

	case CauseThrowingField:
		return s.Field.DeclaredAt

	case CauseThrowingBase:
		return s.Base.DeclaredAt

	default:
		return typegraph.Location{}
	}
}

// BlamedType returns the field or base type whose move constructor may
// throw, or nil for a blamed constructor.
func (s CauseStep) BlamedType() *typegraph.Type {
	switch s.Kind {
	case CauseThrowingField:
		return s.Field.Type

	case CauseThrowingBase:
		return s.Base.Type

	default:
		return nil
	}
}

// Chain is an ordered causal chain, outermost record first. Its length never
// exceeds [MaxDepth].
type Chain []CauseStep

// Explain traces the cause of a positive [WillDegrade] verdict for the given
// element type, starting at depth 1.
//
// Per record, the priority is fixed: a user-provided throwing move
// constructor fully explains the degradation and ends the chain; otherwise
// the first degrading field in declaration order is blamed; otherwise the
// first degrading non-virtual base in declaration order. Virtual bases are
// never blamed: their move semantics are shared across the hierarchy, and
// attributing them to one subclass would be misleading.
//
// A record whose degradation none of the three rules explains, e.g. one with
// an implicitly deleted move constructor, contributes no step; the chain
// simply ends there.
func Explain(t *typegraph.Type) Chain {
	return explain(t, 1, nil)
}

func explain(t *typegraph.Type, depth int, chain Chain) Chain {
	r := t.Definition()
	if r == nil {
		return chain
	}

	if ctor := throwingUserProvidedMove(r); ctor != nil {
		return append(chain, CauseStep{Record: r, Kind: CauseThrowingMoveConstructor, Constructor: ctor})
	}

	if f := firstDegradingField(r); f != nil {
		chain = append(chain, CauseStep{Record: r, Kind: CauseThrowingField, Field: f})
		if depth >= MaxDepth {
			return chain
		}

		return explain(f.Type, depth+1, chain)
	}

	if b := firstDegradingBase(r); b != nil {
		chain = append(chain, CauseStep{Record: r, Kind: CauseThrowingBase, Base: b})
		if depth >= MaxDepth {
			return chain
		}

		return explain(b.Type, depth+1, chain)
	}

	return chain
}

// throwingUserProvidedMove returns the record's user-provided move
// constructor when it is classified as throwing. The scan stops at the first
// user-provided move constructor either way.
func throwingUserProvidedMove(r *typegraph.Record) *typegraph.Constructor {
	for i := range r.Constructors {
		ctor := &r.Constructors[i]
		if !ctor.Move || !ctor.UserProvided {
			continue
		}

		if excspec.Classify(ctor) == excspec.Throwing {
			return ctor
		}

		return nil
	}

	return nil
}

// firstDegradingField returns the first own data member whose type degrades,
// in declaration order.
func firstDegradingField(r *typegraph.Record) *typegraph.Field {
	for i := range r.Fields {
		f := &r.Fields[i]
		if f.OwnMember && WillDegrade(f.Type) {
			return f
		}
	}

	return nil
}

// firstDegradingBase returns the first non-virtual base whose type degrades,
// in declaration order.
func firstDegradingBase(r *typegraph.Record) *typegraph.Base {
	for i := range r.Bases {
		b := &r.Bases[i]
		if !b.Virtual && WillDegrade(b.Type) {
			return b
		}
	}

	return nil
}
