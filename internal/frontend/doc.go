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

// Package frontend builds type descriptors from C++ sources.
//
// The frontend parses a single file with tree-sitter and extracts the facts
// the analysis needs: record definitions with fields, bases and constructors
// in declaration order, raw exception specifications, a triviality
// approximation, and the container instantiation sites.
//
// It is a best-effort resolver, not a compiler. Preprocessing is not
// performed, templates are not instantiated, and name lookup is a flat table
// of the names defined in the file. Everything the frontend cannot resolve
// is reported as unresolved or incomplete, which the analysis treats as
// safe. The worst outcome of a frontend gap is a missed finding, never a
// false one.
package frontend
