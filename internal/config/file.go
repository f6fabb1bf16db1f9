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

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the configuration file the CLI looks for in the working
// directory when no explicit path is given.
const DefaultFileName = ".moveguard.yaml"

// File is the on-disk configuration of the moveguard CLI. Unset fields keep
// their built-in defaults.
type File struct {
	// Containers lists the qualified container type names whose element
	// types are checked. Defaults to std::vector.
	Containers []string `yaml:"containers"`

	// Include lists file suffixes to scan. Defaults to the usual C++
	// translation unit suffixes.
	Include []string `yaml:"include"`

	// Exclude lists path substrings that are skipped during the scan.
	Exclude []string `yaml:"exclude"`

	// Explain controls whether causal chains are attached to findings.
	Explain *bool `yaml:"explain"`

	// Headers controls whether header files are scanned too.
	Headers *bool `yaml:"headers"`
}

// Load reads a configuration file. A missing default file is not an error
// and yields an empty configuration; a missing explicit path is reported.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(r io.Reader, path string) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return &File{}, nil
		}

		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	return &file, nil
}
