/*
 * Cadence - The resource-oriented smart contract programming language
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tagger is a minimal grammar stage: it splits source text into the
// operand, operator, and bracket items the resolver consumes.
//
// Identifiers and numbers are operands. The fixity of an operator is decided
// by the whitespace around it:
//
//	a + b   loose infix
//	a+b     tight infix
//	- a     loose prefix
//	-a      tight prefix
//	a!      postfix
package tagger

import (
	"strings"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
)

// Tagger tags source text using the operators and brackets of a precedence table
type Tagger struct {
	table *precedence.Table
}

func New(table *precedence.Table) *Tagger {
	return &Tagger{
		table: table,
	}
}

// Tag splits the source into items
func (t *Tagger) Tag(source []byte) ([]resolver.Item, error) {
	tokens, err := newScanner(t.table, source).scan()
	if err != nil {
		return nil, err
	}

	c := &classifier{
		table:  t.table,
		tokens: tokens,
		items:  make([]resolver.Item, 0, len(tokens)),
	}
	for index := range tokens {
		c.classify(index)
	}
	return c.items, nil
}

// Tag splits the source into items, using the default table
func Tag(source string) ([]resolver.Item, error) {
	return New(precedence.Default()).Tag([]byte(source))
}

type classifier struct {
	table  *precedence.Table
	tokens []token
	items  []resolver.Item
	// open is the stack of the spellings of the currently open left brackets
	open []string
}

func (c *classifier) emit(kind resolver.ItemKind, tok token) {
	c.items = append(c.items, resolver.NewOperatorItem(kind, ast.NewOperator(tok.text, tok.Range)))
}

// afterOperand returns true if the previous item ends an operand
func (c *classifier) afterOperand() bool {
	count := len(c.items)
	if count == 0 {
		return false
	}
	switch c.items[count-1].Kind {
	case resolver.ItemKindOperand,
		resolver.ItemKindPostfix,
		resolver.ItemKindRight:
		return true
	}
	return false
}

// spaceAfter returns true if the token at the given index is followed by whitespace,
// or is the last token
func (c *classifier) spaceAfter(index int) bool {
	next := index + 1
	return next >= len(c.tokens) || c.tokens[next].spaceBefore
}

func (c *classifier) classify(index int) {
	tok := c.tokens[index]

	switch tok.kind {
	case tokenIdentifier:
		c.items = append(c.items, resolver.NewOperand(ast.NewIdentifierExpression(tok.text, tok.Range)))

	case tokenNumber:
		c.items = append(c.items, resolver.NewOperand(ast.NewLiteralExpression(tok.text, tok.Range)))

	case tokenBracket:
		c.classifyBracket(tok)

	case tokenOperator:
		c.emit(c.operatorKind(index), tok)

	default:
		panic(errors.NewUnreachableError())
	}
}

func (c *classifier) operatorKind(index int) resolver.ItemKind {
	tok := c.tokens[index]
	spaceAfter := c.spaceAfter(index)

	if !c.afterOperand() {
		if spaceAfter {
			return resolver.ItemKindLoosePrefix
		}
		return resolver.ItemKindTightPrefix
	}

	switch {
	case tok.spaceBefore && spaceAfter:
		return resolver.ItemKindLooseInfix

	case tok.spaceBefore:
		return resolver.ItemKindTightPrefix

	case spaceAfter:
		return resolver.ItemKindPostfix

	case c.closes(index + 1):
		return resolver.ItemKindPostfix

	default:
		return resolver.ItemKindTightInfix
	}
}

func bracketBase(spelling string) string {
	return strings.TrimPrefix(spelling, bigPrefix)
}

// isClosing returns true if the bracket, following an operand, closes the innermost open bracket
func (c *classifier) isClosing(spelling string) bool {
	base := bracketBase(spelling)

	if c.table.IsEncloser(base) {
		count := len(c.open)
		return count > 0 && c.table.MatchedBrackets(c.open[count-1], spelling)
	}

	return c.table.IsRight(base) && !c.table.IsLeft(base)
}

// closes returns true if the token at the given index is a bracket
// which closes the innermost open bracket
func (c *classifier) closes(index int) bool {
	if index >= len(c.tokens) {
		return false
	}
	tok := c.tokens[index]
	return tok.kind == tokenBracket && c.isClosing(tok.text)
}

func (c *classifier) classifyBracket(tok token) {
	if c.afterOperand() && c.isClosing(tok.text) {
		c.emit(resolver.ItemKindRight, tok)
		if count := len(c.open); count > 0 {
			c.open = c.open[:count-1]
		}
		return
	}

	if c.table.IsLeft(bracketBase(tok.text)) {
		c.emit(resolver.ItemKindLeft, tok)
		c.open = append(c.open, tok.text)
		return
	}

	c.emit(resolver.ItemKindRight, tok)
	if count := len(c.open); count > 0 {
		c.open = c.open[:count-1]
	}
}
