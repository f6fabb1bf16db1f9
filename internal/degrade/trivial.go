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

import "fillmore-labs.com/moveguard/internal/typegraph"

// TriviallyCopyable reports whether the type is trivially copyable. Builtin
// and enumeration types always are; a record is iff the frontend reports it
// as such. An incomplete record is not trivially copyable, so it is not
// exempted merely by being unknown.
func TriviallyCopyable(t *typegraph.Type) bool {
	if t == nil {
		return false
	}

	switch t.Kind {
	case typegraph.Builtin, typegraph.Enum:
		return true

	case typegraph.RecordKind:
		return t.Record != nil && t.Record.TriviallyCopyable

	default:
		return false
	}
}
