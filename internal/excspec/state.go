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

// State is the classification of an exception specification.
type State uint8

//go:generate go tool stringer -type State -linecomment
const (
	// NotThrowing means the constructor provably cannot propagate an
	// exception, e.g. noexcept, noexcept(true) or throw().
	NotThrowing State = iota // not throwing

	// Throwing means the constructor can propagate an exception, e.g.
	// noexcept(false), a non-empty dynamic specification, or no
	// specification at all.
	Throwing // throwing

	// Unknown means the specification could not be resolved, e.g. a
	// dependent noexcept expression. Unknown is treated as safe downstream.
	Unknown // unknown
)
