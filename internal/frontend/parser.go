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

package frontend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"fillmore-labs.com/moveguard/internal/typegraph"
)

// DefaultMaxFileSize is the largest source file the parser accepts.
const DefaultMaxFileSize = 10 * 1024 * 1024

var (
	// ErrFileTooLarge is returned when input exceeds the size limit.
	ErrFileTooLarge = errors.New("file exceeds maximum size limit")

	// ErrInvalidContent is returned for input that is not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
)

// Parser builds translation units from C++ sources. The zero value is
// usable; a Parser is safe for concurrent use, every Parse call creates its
// own tree-sitter parser instance.
type Parser struct {
	// Containers holds the qualified container type names to extract
	// instantiation sites for. Empty means std::vector.
	Containers []string

	// MaxFileSize caps the accepted input size; zero means
	// [DefaultMaxFileSize].
	MaxFileSize int64

	// Logger receives warnings about oversized or syntactically broken
	// input. Nil means [slog.Default].
	Logger *slog.Logger
}

// Parse resolves one C++ source file into a [typegraph.TranslationUnit].
//
// Parsing is error-tolerant: syntactically broken input yields partial
// results rather than an error. The context is checked before and after the
// tree-sitter run; the run itself cannot be interrupted.
func (p *Parser) Parse(ctx context.Context, content []byte, path string) (*typegraph.TranslationUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled before start: %w", err)
	}

	maxSize := p.MaxFileSize
	if maxSize == 0 {
		maxSize = DefaultMaxFileSize
	}

	if int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w: size %d exceeds limit %d", ErrFileTooLarge, len(content), maxSize)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: content is not valid UTF-8", ErrInvalidContent)
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}

	parser := sitter.NewParser()
	parser.SetLanguage(cpp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse canceled after tree-sitter: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		logger.Warn("source contains syntax errors, results may be partial",
			slog.String("file", path))
	}

	containers := p.Containers
	if len(containers) == 0 {
		containers = []string{"std::vector"}
	}

	b := newBuilder(content, path)
	b.collect(root, nil)
	b.build()

	return &typegraph.TranslationUnit{
		File:    path,
		Records: b.orderedRecords(),
		Sites:   b.extractSites(root, containers),
	}, nil
}

// location converts a tree-sitter start point to a 1-based source location.
func (b *builder) location(n *sitter.Node) typegraph.Location {
	return typegraph.Location{
		File:   b.path,
		Line:   int(n.StartPoint().Row) + 1,
		Column: int(n.StartPoint().Column) + 1,
	}
}

// text returns the source text of a node.
func (b *builder) text(n *sitter.Node) string {
	return string(b.src[n.StartByte():n.EndByte()])
}
