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

// Constructor describes a single constructor of a record.
type Constructor struct {
	// Parent is the record the constructor belongs to. It is needed to
	// resolve implicit exception specifications, which depend on the
	// record's bases and fields.
	Parent *Record

	// Move marks the move constructor.
	Move bool

	// Copy marks a copy constructor. An implicit move constructor of an
	// enclosing record falls back to a member's copy constructor when the
	// member has no move constructor.
	Copy bool

	// UserProvided is true for constructors written in the source, false
	// for implicitly declared ones.
	UserProvided bool

	// Spec is the raw exception specification as the frontend saw it.
	Spec ExceptionSpec

	DeclaredAt Location
}

// SpecKind enumerates the raw exception specification forms a frontend can
// report. Classification into throwing/non-throwing/unknown is done by
// package excspec.
type SpecKind uint8

//go:generate go tool stringer -type SpecKind -linecomment
const (
	// SpecUnresolved marks a specification the frontend could not resolve,
	// e.g. an uninstantiated template.
	SpecUnresolved SpecKind = iota // unresolved

	// SpecNone means no exception specification was written.
	SpecNone // none

	// SpecNoexcept is a plain noexcept.
	SpecNoexcept // noexcept

	// SpecNoexceptTrue is noexcept(expr) where expr folded to true.
	SpecNoexceptTrue // noexcept(true)

	// SpecNoexceptFalse is noexcept(expr) where expr folded to false.
	SpecNoexceptFalse // noexcept(false)

	// SpecNoexceptDependent is noexcept(expr) where expr did not fold to a
	// constant.
	SpecNoexceptDependent // noexcept(dependent)

	// SpecDynamicNone is an empty dynamic specification, throw().
	SpecDynamicNone // throw()

	// SpecDynamic is a non-empty dynamic specification, throw(T, ...).
	SpecDynamic // throw(...)

	// SpecImplicit marks an implicitly declared special member whose
	// specification is derived from the bases and fields of its record.
	SpecImplicit // implicit
)

// ExceptionSpec is a constructor's raw exception specification.
type ExceptionSpec struct {
	Kind SpecKind
}
