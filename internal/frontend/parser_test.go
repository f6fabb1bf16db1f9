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

package frontend_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	. "fillmore-labs.com/moveguard/internal/frontend"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// parse resolves one file of the testdata archive.
func parse(t *testing.T, name string, containers ...string) *typegraph.TranslationUnit {
	t.Helper()

	archive, err := txtar.ParseFile(filepath.Join("testdata", "records.txtar"))
	require.NoError(t, err)

	for _, f := range archive.Files {
		if f.Name != name {
			continue
		}

		p := &Parser{Containers: containers, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

		tu, err := p.Parse(context.Background(), f.Data, name)
		require.NoError(t, err)

		return tu
	}

	t.Fatalf("%s not in archive", name)

	return nil
}

func record(t *testing.T, tu *typegraph.TranslationUnit, name string) *typegraph.Record {
	t.Helper()

	for _, r := range tu.Records {
		if r.Name == name {
			return r
		}
	}

	t.Fatalf("record %s not found in %s", name, tu.File)

	return nil
}

func TestParseRecord(t *testing.T) {
	t.Parallel()

	tu := parse(t, "throwing.cpp")
	require.Len(t, tu.Records, 1)

	r := record(t, tu, "S")
	assert.Equal(t, "struct", r.Keyword)
	assert.Equal(t, "struct S", r.DisplayName())
	assert.Equal(t, typegraph.Location{File: "throwing.cpp", Line: 1, Column: 8}, r.DefinedAt)

	ctor := r.MoveConstructor()
	require.NotNil(t, ctor)
	assert.True(t, ctor.UserProvided)
	assert.Equal(t, typegraph.SpecNone, ctor.Spec.Kind)
	assert.Equal(t, 2, ctor.DeclaredAt.Line)
}

func TestParseExceptionSpecs(t *testing.T) {
	t.Parallel()

	tu := parse(t, "specs.cpp")

	testCases := [...]struct {
		record string
		want   typegraph.SpecKind
	}{
		{"Plain", typegraph.SpecNone},
		{"Spelled", typegraph.SpecNoexcept},
		{"True", typegraph.SpecNoexceptTrue},
		{"False", typegraph.SpecNoexceptFalse},
		{"Dependent", typegraph.SpecNoexceptDependent},
		{"Empty", typegraph.SpecDynamicNone},
		{"Dynamic", typegraph.SpecDynamic},
	}

	for _, tc := range testCases {
		ctor := record(t, tu, tc.record).MoveConstructor()

		require.NotNil(t, ctor, tc.record)
		assert.Equal(t, tc.want, ctor.Spec.Kind, tc.record)
	}
}

func TestParseImplicitMove(t *testing.T) {
	t.Parallel()

	tu := parse(t, "implicit.cpp")

	derived := record(t, tu, "Derived")
	require.Len(t, derived.Bases, 1)
	assert.Equal(t, record(t, tu, "Base"), derived.Bases[0].Type.Record)

	ctor := derived.MoveConstructor()
	require.NotNil(t, ctor)
	assert.False(t, ctor.UserProvided)
	assert.Equal(t, typegraph.SpecImplicit, ctor.Spec.Kind)
}

func TestParseTriviality(t *testing.T) {
	t.Parallel()

	tu := parse(t, "trivial.cpp")

	assert.True(t, record(t, tu, "Pod").TriviallyCopyable)
	assert.False(t, record(t, tu, "NonPod").TriviallyCopyable)
	assert.False(t, record(t, tu, "Wrapper").TriviallyCopyable)
}

func TestParseNestedRecords(t *testing.T) {
	t.Parallel()

	tu := parse(t, "nested.cpp")

	inner := record(t, tu, "Outer::Inner")
	assert.Equal(t, "struct Outer::Inner", inner.DisplayName())

	outer := record(t, tu, "Outer")
	require.Len(t, outer.Fields, 1)
	assert.Equal(t, inner, outer.Fields[0].Type.Record)
}

func TestParseMembers(t *testing.T) {
	t.Parallel()

	tu := parse(t, "members.cpp")

	holder := record(t, tu, "Holder")
	require.Len(t, holder.Fields, 4)

	byName := make(map[string]*typegraph.Field, len(holder.Fields))
	for i := range holder.Fields {
		byName[holder.Fields[i].Name] = &holder.Fields[i]
	}

	require.Contains(t, byName, "shared")
	assert.False(t, byName["shared"].OwnMember, "static member")

	// Pointer and reference members move trivially regardless of the
	// pointee.
	require.Contains(t, byName, "ptr")
	assert.True(t, byName["ptr"].OwnMember)
	assert.Equal(t, typegraph.Builtin, byName["ptr"].Type.Kind)

	require.Contains(t, byName, "ref")
	assert.Equal(t, typegraph.Builtin, byName["ref"].Type.Kind)

	require.Contains(t, byName, "n")
	assert.Equal(t, typegraph.Builtin, byName["n"].Type.Kind)
}

func TestParseBases(t *testing.T) {
	t.Parallel()

	tu := parse(t, "bases.cpp")

	multi := record(t, tu, "Multi")
	require.Len(t, multi.Bases, 2)

	assert.Equal(t, "A", multi.Bases[0].Type.Name)
	assert.False(t, multi.Bases[0].Virtual)

	assert.Equal(t, "B", multi.Bases[1].Type.Name)
	assert.True(t, multi.Bases[1].Virtual)
}

func TestParseDefaulted(t *testing.T) {
	t.Parallel()

	tu := parse(t, "defaulted.cpp")

	ctor := record(t, tu, "Defaulted").MoveConstructor()
	require.NotNil(t, ctor)
	assert.False(t, ctor.UserProvided)
	assert.Equal(t, typegraph.SpecImplicit, ctor.Spec.Kind)

	// A deleted move constructor suppresses the implicit one and is not a
	// constructor itself.
	assert.Nil(t, record(t, tu, "Deleted").MoveConstructor())
}

func TestParseSites(t *testing.T) {
	t.Parallel()

	tu := parse(t, "sites.cpp")
	require.Len(t, tu.Sites, 2)

	s := record(t, tu, "S")
	for _, site := range tu.Sites {
		assert.Equal(t, "vector<S>", site.Container)
		assert.Equal(t, s, site.Element.Record)
	}

	assert.Equal(t, typegraph.Location{File: "sites.cpp", Line: 6, Column: 3}, tu.Sites[0].At)
	assert.Equal(t, 10, tu.Sites[1].At.Line)
}

func TestParseCustomContainers(t *testing.T) {
	t.Parallel()

	tu := parse(t, "sites.cpp", "std::deque", "my::list")
	require.Len(t, tu.Sites, 2)

	assert.Equal(t, "deque<S>", tu.Sites[0].Container)
	assert.Equal(t, "list<S>", tu.Sites[1].Container)
}

func TestParseInvalidContent(t *testing.T) {
	t.Parallel()

	p := &Parser{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, err := p.Parse(context.Background(), []byte{0xff, 0xfe}, "bad.cpp")
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestParseFileTooLarge(t *testing.T) {
	t.Parallel()

	p := &Parser{MaxFileSize: 16, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	_, err := p.Parse(context.Background(), make([]byte, 32), "big.cpp")
	require.ErrorIs(t, err, ErrFileTooLarge)
}
