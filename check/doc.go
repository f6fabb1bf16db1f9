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

// Package check implements the moveguard container pessimization check.
//
// # Overview
//
// Moveguard reports resizable containers whose element type is copied
// instead of moved during growth. A std::vector moves elements on resize
// only when the element's move constructor cannot throw; otherwise it falls
// back to element-wise copying, silently losing the performance benefit of
// move semantics.
//
// For every reported site the check attaches a causal chain explaining,
// level by level, which constructor, field or base class makes the element
// type unsafe to move:
//
//	example.cpp:14:30: warning: 'vector<Outer>' will copy elements on
//	resize instead of moving because the move constructor of 'Outer' may
//	throw
//	example.cpp:5:8: note: 'struct Outer' defined here
//	example.cpp:7:11: note: because the move constructor of 'Inner' may throw
//	example.cpp:1:8: note: 'struct Inner' defined here
//	example.cpp:3:5: note: throwing move constructor declared here
//
// Chains are bounded to three levels; deeper causes exist but are not
// reported. Ambiguous situations, such as dependent noexcept expressions or
// types without a visible definition, resolve to "no finding".
//
// # Usage
//
//	checker := check.New(check.WithContainers("std::vector", "std::deque"))
//	findings, err := checker.Check(ctx, source, "example.cpp")
package check
