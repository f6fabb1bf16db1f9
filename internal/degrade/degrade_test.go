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

package degrade_test

import (
	"testing"

	. "fillmore-labs.com/moveguard/internal/degrade"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// record wraps a definition in a resolved record type.
func record(r *typegraph.Record) *typegraph.Type {
	return &typegraph.Type{Name: r.Name, Kind: typegraph.RecordKind, Record: r}
}

// withMove builds a record with a single user-provided move constructor of
// the given specification.
func withMove(name string, kind typegraph.SpecKind) *typegraph.Record {
	r := &typegraph.Record{Name: name, Keyword: "struct"}
	r.Constructors = []typegraph.Constructor{
		{Parent: r, Move: true, UserProvided: true, Spec: typegraph.ExceptionSpec{Kind: kind}},
	}

	return r
}

func TestWillDegrade(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name string
		typ  *typegraph.Type
		want bool
	}{
		{
			name: "throwing move",
			typ:  record(withMove("S", typegraph.SpecNone)),
			want: true,
		},
		{
			name: "noexcept move",
			typ:  record(withMove("S", typegraph.SpecNoexcept)),
			want: false,
		},
		{
			name: "noexcept false move",
			typ:  record(withMove("S", typegraph.SpecNoexceptFalse)),
			want: true,
		},
		{
			name: "unknown move",
			typ:  record(withMove("S", typegraph.SpecNoexceptDependent)),
			want: false,
		},
		{
			name: "no move constructor",
			typ:  record(&typegraph.Record{Name: "S", Keyword: "struct"}),
			want: true,
		},
		{
			name: "trivially copyable",
			typ:  record(&typegraph.Record{Name: "S", Keyword: "struct", TriviallyCopyable: true}),
			want: false,
		},
		{
			name: "builtin",
			typ:  &typegraph.Type{Name: "int", Kind: typegraph.Builtin},
			want: false,
		},
		{
			name: "enum",
			typ:  &typegraph.Type{Name: "Color", Kind: typegraph.Enum},
			want: false,
		},
		{
			name: "incomplete record",
			typ:  &typegraph.Type{Name: "Fwd", Kind: typegraph.RecordKind},
			want: false,
		},
		{
			name: "unresolved",
			typ:  &typegraph.Type{Name: "T", Kind: typegraph.Unresolved},
			want: false,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := WillDegrade(tc.typ); got != tc.want {
				t.Errorf("WillDegrade(%s) = %t, want %t", tc.typ.Name, got, tc.want)
			}

			want := Safe
			if tc.want {
				want = Degrades
			}

			if got := Evaluate(tc.typ); got != want {
				t.Errorf("Evaluate(%s) = %s, want %s", tc.typ.Name, got, want)
			}
		})
	}
}

func TestWillDegradeIdempotent(t *testing.T) {
	t.Parallel()

	typ := record(withMove("S", typegraph.SpecNone))

	first := WillDegrade(typ)
	for i := 0; i < 3; i++ {
		if got := WillDegrade(typ); got != first {
			t.Fatalf("WillDegrade changed between calls: %t then %t", first, got)
		}
	}
}
