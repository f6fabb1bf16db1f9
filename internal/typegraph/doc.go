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

// Package typegraph defines the immutable type descriptors the moveguard
// analysis operates on.
//
// Descriptors are produced by a frontend (see internal/frontend) and consumed
// read-only by the analysis packages. Field and base orderings reflect
// declaration order in the source and are never permuted: the causal chain
// tracer blames the first qualifying entity, so the order is load-bearing.
//
// A descriptor graph is acyclic with respect to by-value containment, since a
// record cannot contain itself by value. Constructors carry a back-reference
// to their record, which is the only cycle in the structure and is never
// followed by value traversals.
package typegraph
