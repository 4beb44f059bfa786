// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package sexp

import (
	"unicode"

	"github.com/consensys/go-flatten/pkg/util/source"
)

// Parse a given file into exactly one S-expression, or return an error if the
// file is malformed.  A source map is also returned for error reporting.
func Parse(srcfile *source.File) (SExp, *source.Map[SExp], *source.SyntaxError) {
	p := NewParser(srcfile)
	// Parse the input
	sExp, err := p.Parse()
	if err != nil {
		return nil, nil, err
	}
	// Sanity check everything was parsed
	if p.SkipWhiteSpace(); p.index != len(p.text) {
		return nil, nil, p.error("unexpected remainder")
	}
	//
	return sExp, p.srcmap, nil
}

// ParseAll converts a given file into zero or more S-expressions, or returns an
// error if the file is malformed.  A source map is also returned for error
// reporting.
func ParseAll(srcfile *source.File) ([]SExp, *source.Map[SExp], *source.SyntaxError) {
	var (
		p     = NewParser(srcfile)
		terms []SExp
	)
	//
	for {
		term, err := p.Parse()
		//
		if err != nil {
			return terms, p.srcmap, err
		} else if term == nil {
			// EOF reached
			return terms, p.srcmap, nil
		}
		//
		terms = append(terms, term)
	}
}

// Parser represents a parser in the process of parsing a given file into one
// or more S-expressions.
type Parser struct {
	// Source file being parsed
	srcfile *source.File
	// Cache (for simplicity)
	text []rune
	// Determine current position within text
	index int
	// Mapping from constructed S-Expressions to their spans in the original text.
	srcmap *source.Map[SExp]
}

// NewParser constructs a new instance of Parser
func NewParser(srcfile *source.File) *Parser {
	return &Parser{
		srcfile: srcfile,
		text:    srcfile.Contents(),
		index:   0,
		srcmap:  source.NewSourceMap[SExp](srcfile),
	}
}

// Parse the next S-Expression, returning nil at the end of the file.
func (p *Parser) Parse() (SExp, *source.SyntaxError) {
	var term SExp
	// Skip whitespace to get the correct starting point for this term.
	p.SkipWhiteSpace()
	//
	start := p.index
	token := p.next()
	//
	switch {
	case token == nil:
		return nil, nil
	case len(token) == 1 && token[0] == ')':
		p.index-- // backup
		return nil, p.error("unexpected end-of-list")
	case len(token) == 1 && token[0] == '(':
		elements, err := p.parseSequence()
		//
		if err != nil {
			return nil, err
		}
		//
		term = &List{elements}
	default:
		term = &Symbol{string(token)}
	}
	// Register item in source map
	p.srcmap.Put(term, source.NewSpan(start, p.index))
	//
	return term, nil
}

// SkipWhiteSpace skips over any whitespace, including comments.
func (p *Parser) SkipWhiteSpace() {
	for p.index < len(p.text) && (unicode.IsSpace(p.text[p.index]) || p.text[p.index] == ';') {
		if p.text[p.index] == ';' {
			// Skip comment
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		} else {
			p.index++
		}
	}
}

// Extract the next token.
func (p *Parser) next() []rune {
	p.SkipWhiteSpace()
	// Catch end-of-file
	if p.index == len(p.text) {
		return nil
	} else if c := p.text[p.index]; c == '(' || c == ')' {
		p.index++
		return p.text[p.index-1 : p.index]
	}
	// Symbol
	end := p.index
	//
	for end < len(p.text) && !isTerminator(p.text[end]) {
		end++
	}
	//
	token := p.text[p.index:end]
	p.index = end
	//
	return token
}

func (p *Parser) parseSequence() ([]SExp, *source.SyntaxError) {
	var elements []SExp
	//
	for p.SkipWhiteSpace(); p.index >= len(p.text) || p.text[p.index] != ')'; p.SkipWhiteSpace() {
		element, err := p.Parse()
		//
		if err != nil {
			return nil, err
		} else if element == nil {
			return nil, p.error("unexpected end-of-file")
		}
		//
		elements = append(elements, element)
	}
	// Consume terminator
	p.index++
	//
	return elements, nil
}

// Construct a parser error at the current position in the input stream.
func (p *Parser) error(msg string) *source.SyntaxError {
	var start = min(p.index, max(0, len(p.text)-1))
	//
	return p.srcfile.SyntaxError(source.NewSpan(start, start+1), msg)
}

func isTerminator(c rune) bool {
	return c == '(' || c == ')' || c == ';' || unicode.IsSpace(c)
}
