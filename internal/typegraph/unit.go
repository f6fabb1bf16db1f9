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

// ContainerSite is a single use of a resizable container type, e.g. a
// std::vector<T> type written in a declaration.
type ContainerSite struct {
	// Container is the spelled container type, e.g. "vector<Foo>".
	Container string

	// Element is the container's element type.
	Element *Type

	At Location
}

// TranslationUnit is the result of resolving one source file: the record
// table and the container sites found in it. It is a read-only view; a fresh
// unit is built per analysis and discarded afterwards.
type TranslationUnit struct {
	// File is the path of the analyzed source file.
	File string

	// Records holds all visible record definitions, in definition order.
	Records []*Record

	// Sites holds the container instantiation sites, in source order.
	Sites []ContainerSite
}
