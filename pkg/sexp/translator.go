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
	"fmt"

	"github.com/consensys/go-flatten/pkg/util/source"
)

// SymbolRule is a symbol translator responsible for converting a symbol into an
// item of type T.  A rule returns false when it does not apply to the given
// symbol, allowing the next rule to be tried.
type SymbolRule[T any] func(string) (T, bool, error)

// ListRule is a list translator responsible for converting a list into an item
// of type T.  The list is given untranslated, hence the rule decides how (and
// whether) to translate its elements.
type ListRule[T any] func(*List) (T, []source.SyntaxError)

// RecursiveRule is a list translator for lists whose arguments are themselves
// translated (recursively) by the enclosing translator.  The rule is given the
// name of the list, along with the translated arguments.
type RecursiveRule[T any] func(string, []T) (T, error)

// Translator is a generic mechanism for translating S-Expressions into a
// structured form.
type Translator[T any] struct {
	srcmap  *source.Map[SExp]
	lists   map[string]ListRule[T]
	symbols []SymbolRule[T]
}

// NewTranslator constructs a new Translator instance for S-Expressions
// originating from a given source map.
func NewTranslator[T any](srcmap *source.Map[SExp]) *Translator[T] {
	return &Translator[T]{
		srcmap:  srcmap,
		lists:   make(map[string]ListRule[T]),
		symbols: make([]SymbolRule[T], 0),
	}
}

// AddListRule adds a new list translator to this translator.
func (p *Translator[T]) AddListRule(name string, rule ListRule[T]) {
	p.lists[name] = rule
}

// AddRecursiveRule adds a new recursive list translator to this translator.
func (p *Translator[T]) AddRecursiveRule(name string, rule RecursiveRule[T]) {
	p.lists[name] = func(list *List) (T, []source.SyntaxError) {
		var (
			empty T
			errs  []source.SyntaxError
			args  = make([]T, list.Len()-1)
		)
		// Translate arguments
		for i, s := range list.Elements[1:] {
			var errors []source.SyntaxError
			//
			args[i], errors = p.Translate(s)
			errs = append(errs, errors...)
		}
		//
		if len(errs) > 0 {
			return empty, errs
		}
		//
		node, err := rule(name, args)
		//
		if err != nil {
			return empty, p.SyntaxErrors(list, err.Error())
		}
		//
		return node, nil
	}
}

// AddSymbolRule adds a new symbol translator to this translator.  Symbol rules
// are tried in the order they are added.
func (p *Translator[T]) AddSymbolRule(rule SymbolRule[T]) {
	p.symbols = append(p.symbols, rule)
}

// SourceMap returns the source map used by this translator.
func (p *Translator[T]) SourceMap() *source.Map[SExp] {
	return p.srcmap
}

// SyntaxError constructs a syntax error for a given S-Expression.
func (p *Translator[T]) SyntaxError(node SExp, msg string) *source.SyntaxError {
	return p.srcmap.SyntaxError(node, msg)
}

// SyntaxErrors constructs a singleton array of syntax errors for a given
// S-Expression.
func (p *Translator[T]) SyntaxErrors(node SExp, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.SyntaxError(node, msg)}
}

// Translate an S-Expression into an item of type T.  This fails when the
// S-Expression is not well-formed with respect to the rules of this
// translator.
func (p *Translator[T]) Translate(sexp SExp) (T, []source.SyntaxError) {
	var empty T
	//
	switch e := sexp.(type) {
	case *List:
		return p.translateList(e)
	case *Symbol:
		for _, rule := range p.symbols {
			node, ok, err := rule(e.Value)
			//
			if ok && err != nil {
				return empty, p.SyntaxErrors(e, err.Error())
			} else if ok {
				return node, nil
			}
		}
		//
		return empty, p.SyntaxErrors(e, fmt.Sprintf("unknown symbol \"%s\"", e.Value))
	default:
		panic("unreachable")
	}
}

// Translate a list whose kind is determined by its first element, which must
// be a symbol.
func (p *Translator[T]) translateList(list *List) (T, []source.SyntaxError) {
	var empty T
	//
	if list.Len() == 0 || list.Get(0).AsSymbol() == nil {
		return empty, p.SyntaxErrors(list, "invalid list")
	}
	//
	name := list.Get(0).AsSymbol().Value
	//
	if rule, ok := p.lists[name]; ok {
		return rule(list)
	}
	//
	return empty, p.SyntaxErrors(list, fmt.Sprintf("unknown list \"%s\"", name))
}
