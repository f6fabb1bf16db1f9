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

// Package config holds the behavioral options of the moveguard checker and
// the on-disk configuration file read by the CLI.
package config

// Behavior is a bitmask of checker options.
type Behavior uint8

const (
	// ExplainCauses attaches causal chains to findings. Without it only
	// the primary finding is reported.
	ExplainCauses Behavior = 1 << iota

	// IncludeHeaders extends the source file scan to header files.
	IncludeHeaders
)

// Default is the behavior used when nothing is configured.
const Default = ExplainCauses

// Enabled checks whether the given option is set.
func (b Behavior) Enabled(flag Behavior) bool {
	return b&flag != 0
}

// Set enables or disables the given option.
func (b *Behavior) Set(flag Behavior, value bool) {
	if value {
		*b |= flag
	} else {
		*b &^= flag
	}
}
