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

package check

import (
	"log/slog"

	"fillmore-labs.com/moveguard/internal/config"
)

// runOptions represent the resolved configuration of a moveguard checker.
type runOptions struct {
	// containers holds the qualified container type names whose element
	// types are checked.
	containers []string

	// excludes holds path substrings skipped by [Checker.Run].
	excludes []string

	// suffixes overrides the default source file suffixes when non-empty.
	suffixes []string

	// behavior holds behavioral options.
	behavior config.Behavior

	// logger receives frontend warnings. The analysis itself never logs.
	logger *slog.Logger
}

// defaultRunOptions returns the configuration used when no [Option] is
// given.
func defaultRunOptions() *runOptions {
	return &runOptions{
		containers: []string{"std::vector"},
		behavior:   config.Default,
		logger:     slog.Default(),
	}
}
