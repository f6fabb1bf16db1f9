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

package excspec_test

import (
	"testing"

	. "fillmore-labs.com/moveguard/internal/excspec"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

func TestClassifyWritten(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		kind typegraph.SpecKind
		want State
	}{
		{typegraph.SpecNoexcept, NotThrowing},
		{typegraph.SpecNoexceptTrue, NotThrowing},
		{typegraph.SpecDynamicNone, NotThrowing},
		{typegraph.SpecNone, Throwing},
		{typegraph.SpecNoexceptFalse, Throwing},
		{typegraph.SpecDynamic, Throwing},
		{typegraph.SpecNoexceptDependent, Unknown},
		{typegraph.SpecUnresolved, Unknown},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			ctor := &typegraph.Constructor{
				Move: true,
				Spec: typegraph.ExceptionSpec{Kind: tc.kind},
			}

			if got := Classify(ctor); got != tc.want {
				t.Errorf("Classify(%s) = %s, want %s", tc.kind, got, tc.want)
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	t.Parallel()

	if got := Classify(nil); got != Unknown {
		t.Errorf("Classify(nil) = %s, want %s", got, Unknown)
	}
}

// member returns a record-typed subobject whose move constructor has the
// given specification.
func member(name string, kind typegraph.SpecKind) *typegraph.Type {
	r := &typegraph.Record{Name: name, Keyword: "struct"}
	r.Constructors = []typegraph.Constructor{
		{Parent: r, Move: true, UserProvided: true, Spec: typegraph.ExceptionSpec{Kind: kind}},
	}

	return &typegraph.Type{Name: name, Kind: typegraph.RecordKind, Record: r}
}

func implicitMove(r *typegraph.Record) *typegraph.Constructor {
	r.Constructors = append(r.Constructors, typegraph.Constructor{
		Parent: r,
		Move:   true,
		Spec:   typegraph.ExceptionSpec{Kind: typegraph.SpecImplicit},
	})

	return &r.Constructors[len(r.Constructors)-1]
}

func TestClassifyImplicit(t *testing.T) {
	t.Parallel()

	intType := &typegraph.Type{Name: "int", Kind: typegraph.Builtin}

	testCases := [...]struct {
		name   string
		record *typegraph.Record
		want   State
	}{
		{
			name:   "empty",
			record: &typegraph.Record{Name: "Empty", Keyword: "struct"},
			want:   NotThrowing,
		},
		{
			name: "builtin members",
			record: &typegraph.Record{
				Name: "Plain", Keyword: "struct",
				Fields: []typegraph.Field{{Name: "n", Type: intType, OwnMember: true}},
			},
			want: NotThrowing,
		},
		{
			name: "nothrow member",
			record: &typegraph.Record{
				Name: "Wrapper", Keyword: "struct",
				Fields: []typegraph.Field{{Name: "m", Type: member("M", typegraph.SpecNoexcept), OwnMember: true}},
			},
			want: NotThrowing,
		},
		{
			name: "throwing member",
			record: &typegraph.Record{
				Name: "Wrapper", Keyword: "struct",
				Fields: []typegraph.Field{{Name: "m", Type: member("M", typegraph.SpecNone), OwnMember: true}},
			},
			want: Throwing,
		},
		{
			name: "throwing base",
			record: &typegraph.Record{
				Name: "Derived", Keyword: "struct",
				Bases: []typegraph.Base{{Type: member("B", typegraph.SpecNone)}},
			},
			want: Throwing,
		},
		{
			name: "throwing virtual base",
			record: &typegraph.Record{
				Name: "Derived", Keyword: "struct",
				Bases: []typegraph.Base{{Type: member("B", typegraph.SpecNone), Virtual: true}},
			},
			want: Throwing,
		},
		{
			name: "static member ignored",
			record: &typegraph.Record{
				Name: "Holder", Keyword: "struct",
				Fields: []typegraph.Field{{Name: "s", Type: member("M", typegraph.SpecNone), OwnMember: false}},
			},
			want: NotThrowing,
		},
		{
			name: "unresolved member",
			record: &typegraph.Record{
				Name: "Holder", Keyword: "struct",
				Fields: []typegraph.Field{{Name: "u", Type: member("M", typegraph.SpecUnresolved), OwnMember: true}},
			},
			want: Unknown,
		},
		{
			name: "throwing dominates unknown",
			record: &typegraph.Record{
				Name: "Holder", Keyword: "struct",
				Fields: []typegraph.Field{
					{Name: "u", Type: member("U", typegraph.SpecUnresolved), OwnMember: true},
					{Name: "m", Type: member("M", typegraph.SpecNone), OwnMember: true},
				},
			},
			want: Throwing,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctor := implicitMove(tc.record)

			if got := Classify(ctor); got != tc.want {
				t.Errorf("Classify(implicit of %s) = %s, want %s", tc.record.Name, got, tc.want)
			}
		})
	}
}

func TestClassifyImplicitCopyFallback(t *testing.T) {
	t.Parallel()

	// A member with only a copy constructor: the implicit move of the
	// enclosing record copies it instead.
	m := &typegraph.Record{Name: "CopyOnly", Keyword: "struct"}
	m.Constructors = []typegraph.Constructor{
		{Parent: m, Copy: true, UserProvided: true, Spec: typegraph.ExceptionSpec{Kind: typegraph.SpecNoexcept}},
	}

	holder := &typegraph.Record{
		Name: "Holder", Keyword: "struct",
		Fields: []typegraph.Field{{
			Name: "m", OwnMember: true,
			Type: &typegraph.Type{Name: "CopyOnly", Kind: typegraph.RecordKind, Record: m},
		}},
	}

	if got := Classify(implicitMove(holder)); got != NotThrowing {
		t.Errorf("Classify(implicit of Holder) = %s, want %s", got, NotThrowing)
	}
}
