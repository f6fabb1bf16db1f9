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

// The moveguard command scans C++ sources for container element types that
// are copied instead of moved on resize.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCommand(os.Stdout, os.Stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			return 1
		}

		fmt.Fprintf(os.Stderr, "moveguard: %v\n", err)

		return 2
	}

	return 0
}
