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

// Option configures specific behavior of a [New] moveguard checker.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithContainers is an [Option] to configure the container type names whose
// element types are checked. The default is std::vector.
func WithContainers(containers ...string) Option { return containersOption{containers: containers} }

type containersOption struct{ containers []string }

func (o containersOption) apply(r *runOptions) {
	r.containers = o.containers
}

func (o containersOption) LogAttr() slog.Attr {
	return slog.Any("containers", o.containers)
}

// WithExcludes is an [Option] to configure path substrings skipped by
// [Checker.Run].
func WithExcludes(excludes ...string) Option { return excludesOption{excludes: excludes} }

type excludesOption struct{ excludes []string }

func (o excludesOption) apply(r *runOptions) {
	r.excludes = o.excludes
}

func (o excludesOption) LogAttr() slog.Attr {
	return slog.Any("excludes", o.excludes)
}

// WithSuffixes is an [Option] to override the file suffixes scanned by
// [Checker.Run]. An empty list keeps the defaults.
func WithSuffixes(suffixes ...string) Option { return suffixesOption{suffixes: suffixes} }

type suffixesOption struct{ suffixes []string }

func (o suffixesOption) apply(r *runOptions) {
	r.suffixes = o.suffixes
}

func (o suffixesOption) LogAttr() slog.Attr {
	return slog.Any("suffixes", o.suffixes)
}

// WithExplain is an [Option] to configure whether causal chains are attached
// to findings.
func WithExplain(explain bool) Option { return explainOption{explain: explain} }

type explainOption struct{ explain bool }

func (o explainOption) apply(r *runOptions) {
	r.behavior.Set(config.ExplainCauses, o.explain)
}

func (o explainOption) LogAttr() slog.Attr {
	return slog.Bool("explain", o.explain)
}

// WithHeaders is an [Option] to configure whether header files are scanned.
func WithHeaders(headers bool) Option { return headersOption{headers: headers} }

type headersOption struct{ headers bool }

func (o headersOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeHeaders, o.headers)
}

func (o headersOption) LogAttr() slog.Attr {
	return slog.Bool("headers", o.headers)
}

// WithLogger is an [Option] to configure the logger used by the frontend.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
