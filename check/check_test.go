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

package check_test

import (
	"testing"

	. "fillmore-labs.com/moveguard/check"
	"fillmore-labs.com/moveguard/internal/typegraph"
)

// throwingElement is a record type with a user-provided throwing move
// constructor.
func throwingElement(name string) *typegraph.Type {
	r := &typegraph.Record{Name: name, Keyword: "struct"}
	r.Constructors = []typegraph.Constructor{
		{Parent: r, Move: true, UserProvided: true, Spec: typegraph.ExceptionSpec{Kind: typegraph.SpecNone}},
	}

	return &typegraph.Type{Name: name, Kind: typegraph.RecordKind, Record: r}
}

// safeElement is a record type with a noexcept move constructor.
func safeElement(name string) *typegraph.Type {
	r := &typegraph.Record{Name: name, Keyword: "struct"}
	r.Constructors = []typegraph.Constructor{
		{Parent: r, Move: true, UserProvided: true, Spec: typegraph.ExceptionSpec{Kind: typegraph.SpecNoexcept}},
	}

	return &typegraph.Type{Name: name, Kind: typegraph.RecordKind, Record: r}
}

func site(element *typegraph.Type, line int) typegraph.ContainerSite {
	return typegraph.ContainerSite{
		Container: "vector<" + element.Name + ">",
		Element:   element,
		At:        typegraph.Location{File: "test.cpp", Line: line, Column: 1},
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	bad, good := throwingElement("S"), safeElement("T")

	tu := &typegraph.TranslationUnit{
		File:  "test.cpp",
		Sites: []typegraph.ContainerSite{site(bad, 3), site(good, 4), site(bad, 5)},
	}

	findings := New().Analyze(tu)
	if len(findings) != 2 {
		t.Fatalf("Got %d findings, want 2", len(findings))
	}

	for _, f := range findings {
		if f.Element != bad {
			t.Errorf("Finding blames %s, want 'S'", f.Element.Name)
		}

		if len(f.Chain) != 1 {
			t.Errorf("Finding at %s has chain of length %d, want 1", f.At, len(f.Chain))
		}
	}

	if findings[0].At.Line != 3 || findings[1].At.Line != 5 {
		t.Errorf("Findings at lines %d and %d, want 3 and 5",
			findings[0].At.Line, findings[1].At.Line)
	}
}

func TestAnalyzeNoExplain(t *testing.T) {
	t.Parallel()

	tu := &typegraph.TranslationUnit{
		File:  "test.cpp",
		Sites: []typegraph.ContainerSite{site(throwingElement("S"), 1)},
	}

	findings := New(WithExplain(false)).Analyze(tu)
	if len(findings) != 1 {
		t.Fatalf("Got %d findings, want 1", len(findings))
	}

	if len(findings[0].Chain) != 0 {
		t.Errorf("Got chain of length %d, want none", len(findings[0].Chain))
	}
}

func TestAnalyzeClean(t *testing.T) {
	t.Parallel()

	tu := &typegraph.TranslationUnit{
		File:  "test.cpp",
		Sites: []typegraph.ContainerSite{site(safeElement("T"), 1)},
	}

	if findings := New().Analyze(tu); len(findings) != 0 {
		t.Errorf("Got %d findings, want none", len(findings))
	}
}
