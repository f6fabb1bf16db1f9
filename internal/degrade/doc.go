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

// Package degrade decides whether a container element type degrades to
// copying on resize, and explains why.
//
// A resizable container moves its elements during growth only when the
// element's move constructor cannot throw. [WillDegrade] is the verdict for
// a single type; [Explain] produces a depth-bounded causal chain naming the
// constructor, field or base responsible. Both are pure functions of the
// descriptor graph: the same input always yields the same verdict and the
// same chain.
//
// Ambiguity is resolved in favor of the code under analysis. Types without a
// visible definition and constructors with unresolved specifications never
// degrade and are never blamed.
package degrade
