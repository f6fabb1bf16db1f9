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

import "fillmore-labs.com/moveguard/internal/typegraph"

// triviallyCopyable approximates the compiler's triviality fact for a
// record: no user-provided or deleted copy or move operation, no
// user-provided destructor, nothing virtual, and all bases and own fields
// trivially copyable in turn.
//
// Defaulted special members keep the record trivial. The recursion follows
// by-value containment only, which the host language keeps acyclic; the
// computing state guards against broken input.
func (b *builder) triviallyCopyable(rd *recordDecl) bool {
	switch rd.trivial {
	case trivialTrue:
		return true

	case trivialFalse, trivialComputing:
		return false
	}

	rd.trivial = trivialComputing

	result := b.computeTrivial(rd)
	if result {
		rd.trivial = trivialTrue
	} else {
		rd.trivial = trivialFalse
	}

	return result
}

func (b *builder) computeTrivial(rd *recordDecl) bool {
	if rd.providedCopy || rd.providedMove || rd.providedAssign || rd.providedDtor ||
		rd.deletedCopy || rd.deletedMove ||
		rd.hasVirtualMethod || rd.hasVirtualBase {
		return false
	}

	for i := range rd.rec.Bases {
		if !b.trivialType(rd.rec.Bases[i].Type) {
			return false
		}
	}

	for i := range rd.rec.Fields {
		f := &rd.rec.Fields[i]
		if f.OwnMember && !b.trivialType(f.Type) {
			return false
		}
	}

	return true
}

// trivialType resolves the triviality of a subobject type during
// construction of the descriptor graph, before the per-record facts are
// final.
func (b *builder) trivialType(t *typegraph.Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case typegraph.Builtin, typegraph.Enum:
		return true

	case typegraph.RecordKind:
		if t.Record == nil {
			return false
		}

		if rd, ok := b.byName[t.Record.Name]; ok {
			return b.triviallyCopyable(rd)
		}

		return false

	default:
		return false
	}
}
