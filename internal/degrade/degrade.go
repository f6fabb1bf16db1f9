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

// Verdict is the outcome of evaluating a single type.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// Safe means growth operations move the element, or copying it is not
	// a pessimization in the first place.
	Safe Verdict = iota // safe

	// Degrades means growth operations fall back to copying the element.
	Degrades // degrades
)

// Evaluate returns the [Verdict] for a container element type.
func Evaluate(t *typegraph.Type) Verdict {
	if WillDegrade(t) {
		return Degrades
	}

	return Safe
}

// WillDegrade reports whether a resizable container with the given element
// type copies elements on resize instead of moving them.
//
// Trivially copyable types never degrade: they are copied regardless, and
// that copy is not a pessimization. Types without a visible definition never
// degrade either, guessing would produce false positives. Everything else
// degrades exactly when it lacks a move constructor classified as
// non-throwing.
//
// The same predicate applies at every level: a field or base is evaluated by
// the exact rule used for the original element type.
func WillDegrade(t *typegraph.Type) bool {
	if TriviallyCopyable(t) {
		return false
	}

	r := t.Definition()
	if r == nil {
		return false
	}

	return !hasNothrowMove(r)
}

// hasNothrowMove reports whether the record has a move constructor that is
// not classified as throwing. An unknown classification counts as
// non-throwing.
func hasNothrowMove(r *typegraph.Record) bool {
	ctor := r.MoveConstructor()
	if ctor == nil {
		return false
	}

	return excspec.Classify(ctor) != excspec.Throwing
}
