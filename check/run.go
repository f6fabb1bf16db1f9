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
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"fillmore-labs.com/moveguard/internal/config"
	"fillmore-labs.com/moveguard/internal/frontend"
)

// sourceSuffixes are the translation unit suffixes scanned by default.
var sourceSuffixes = []string{".cpp", ".cc", ".cxx"}

// headerSuffixes are scanned additionally with [WithHeaders].
var headerSuffixes = []string{".h", ".hpp", ".hh", ".hxx"}

// Check parses a single C++ source file and analyzes its container sites.
func (c *Checker) Check(ctx context.Context, content []byte, path string) ([]Finding, error) {
	p := &frontend.Parser{
		Containers: c.opts.containers,
		Logger:     c.opts.logger,
	}

	tu, err := p.Parse(ctx, content, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}

	return c.Analyze(tu), nil
}

// Run walks the given paths, parses every matching C++ file and returns all
// findings in file walk order. Non-directory paths are checked regardless of
// suffix.
func (c *Checker) Run(ctx context.Context, paths ...string) ([]Finding, error) {
	var findings []Finding

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Name, err)
		}

		if !info.IsDir() {
			found, err := c.checkFile(ctx, path)
			if err != nil {
				return nil, err
			}

			findings = append(findings, found...)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() || !c.matches(p) {
				return nil
			}

			found, err := c.checkFile(ctx, p)
			if err != nil {
				return err
			}

			findings = append(findings, found...)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", Name, err)
		}
	}

	return findings, nil
}

// matches reports whether the path is a C++ file eligible for scanning.
func (c *Checker) matches(path string) bool {
	for _, exclude := range c.opts.excludes {
		if strings.Contains(path, exclude) {
			return false
		}
	}

	suffixes := c.opts.suffixes
	if len(suffixes) == 0 {
		suffixes = sourceSuffixes
	}

	if c.opts.behavior.Enabled(config.IncludeHeaders) {
		suffixes = append(suffixes[:len(suffixes):len(suffixes)], headerSuffixes...)
	}

	ext := filepath.Ext(path)
	for _, suffix := range suffixes {
		if ext == suffix {
			return true
		}
	}

	return false
}

func (c *Checker) checkFile(ctx context.Context, path string) ([]Finding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", Name, err)
	}

	return c.Check(ctx, content, path)
}
