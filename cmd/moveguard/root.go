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

package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/moveguard/check"
	"fillmore-labs.com/moveguard/internal/config"
	"fillmore-labs.com/moveguard/internal/report"
)

// errFindings signals a clean run that produced findings. The findings are
// already printed when it is returned.
var errFindings = errors.New("findings reported")

// flags holds the command line options of the root command. Unset flags
// defer to the configuration file.
type flags struct {
	configPath string
	containers []string
	exclude    []string
	explain    bool
	headers    bool
	noColor    bool
	verbose    bool
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	var fl flags

	cmd := &cobra.Command{
		Use:           "moveguard [flags] path ...",
		Short:         check.Doc,
		Long:          check.Doc + ".\n\nDocumentation is available at " + check.URL + ".",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scan(cmd, &fl, args, out, errOut)
		},
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.Flags().StringVarP(&fl.configPath, "config", "c", "", "configuration file (default "+config.DefaultFileName+")")
	cmd.Flags().StringSliceVar(&fl.containers, "containers", nil, "container type names to check (default std::vector)")
	cmd.Flags().StringSliceVar(&fl.exclude, "exclude", nil, "path substrings to skip")
	cmd.Flags().BoolVar(&fl.explain, "explain", true, "trace the cause of each finding")
	cmd.Flags().BoolVar(&fl.headers, "headers", false, "scan header files too")
	cmd.Flags().BoolVar(&fl.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&fl.verbose, "verbose", "v", false, "log parser warnings")

	return cmd
}

func scan(cmd *cobra.Command, fl *flags, paths []string, out, errOut io.Writer) error {
	file, err := config.Load(fl.configPath)
	if err != nil {
		return err
	}

	checker := check.New(options(cmd, fl, file, errOut)...)

	findings, err := checker.Run(cmd.Context(), paths...)
	if err != nil {
		return err
	}

	if len(findings) == 0 {
		return nil
	}

	color := !fl.noColor && report.ColorSupported(out)

	if err := report.NewRenderer(out, color).RenderAll(findings); err != nil {
		return err
	}

	return errFindings
}

// options merges the configuration file and the command line, flags taking
// precedence.
func options(cmd *cobra.Command, fl *flags, file *config.File, errOut io.Writer) []check.Option {
	var opts []check.Option

	level := slog.LevelError
	if fl.verbose {
		level = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	opts = append(opts, check.WithLogger(logger))

	if containers := fl.containers; len(containers) > 0 {
		opts = append(opts, check.WithContainers(containers...))
	} else if len(file.Containers) > 0 {
		opts = append(opts, check.WithContainers(file.Containers...))
	}

	excludes := file.Exclude
	excludes = append(excludes[:len(excludes):len(excludes)], fl.exclude...)
	if len(excludes) > 0 {
		opts = append(opts, check.WithExcludes(excludes...))
	}

	if len(file.Include) > 0 {
		opts = append(opts, check.WithSuffixes(file.Include...))
	}

	if cmd.Flags().Changed("explain") {
		opts = append(opts, check.WithExplain(fl.explain))
	} else if file.Explain != nil {
		opts = append(opts, check.WithExplain(*file.Explain))
	}

	if cmd.Flags().Changed("headers") {
		opts = append(opts, check.WithHeaders(fl.headers))
	} else if file.Headers != nil {
		opts = append(opts, check.WithHeaders(*file.Headers))
	}

	return opts
}
