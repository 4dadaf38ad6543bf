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

// Package resolver resolves the flat sequences of operands, operators, and brackets
// produced by the grammar stage into expression trees,
// according to the precedence of the operators.
package resolver

import (
	"time"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
)

// Resolver resolves item sequences using a precedence table.
// A Resolver is safe for concurrent use.
type Resolver struct {
	table    *precedence.Table
	config   Config
	division precedence.Class
}

// New returns a resolver for the given table.
// A nil config uses the default configuration, which does not log.
func New(table *precedence.Table, config *Config) *Resolver {
	resolverConfig := defaultConfig()
	if config != nil {
		resolverConfig = *config
	}

	return &Resolver{
		table:    table,
		config:   resolverConfig,
		division: table.Canonicalize(divisionOperator),
	}
}

func (r *Resolver) Table() *precedence.Table {
	return r.table
}

// layer is the content of an open bracket.
// The bottom layer of the stack has no bracket.
type layer struct {
	left  ast.Operator
	items []Item
}

// Resolve resolves the given items into a single expression.
// The first problem found aborts the resolution.
func (r *Resolver) Resolve(items []Item) (result ast.Expression, err error) {
	var layerCount int

	if r.tracingEnabled() {
		startTime := time.Now()
		defer func() {
			r.reportResolveTrace(len(items), layerCount, err, time.Since(startTime))
		}()
	}

	result, layerCount, err = r.resolveEnclosing(items)
	if err != nil {
		if event := r.config.Logger.Debug(); event.Enabled() {
			event.
				Err(err).
				Str("kind", KindOf(err).Name()).
				Str("items", FormatItems(items)).
				Msg("failed to resolve expression")
		}
		return nil, err
	}

	return result, nil
}

func (r *Resolver) resolveEnclosing(items []Item) (ast.Expression, int, error) {
	stack := []layer{{}}
	layerCount := 1

	for _, item := range items {
		top := &stack[len(stack)-1]

		switch item.Kind {
		case ItemKindLeft:
			stack = append(stack, layer{
				left: item.Operator,
			})
			layerCount++

		case ItemKindRight:
			right := item.Operator

			if len(stack) == 1 || !r.table.MatchedBrackets(top.left.Name, right.Name) {
				err := NewStructuralError(
					right.Range,
					"right encloser `%s` without matching left encloser",
					right.Name,
				)
				if len(stack) > 1 {
					err.Hint = "`" + top.left.Name + "` is still open"
				}
				return nil, layerCount, err
			}

			enclosing, err := r.resolveBracketLayer(*top, right)
			if err != nil {
				return nil, layerCount, err
			}

			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.items = append(parent.items, NewOperand(enclosing))

		default:
			top.items = append(top.items, item)
		}
	}

	if len(stack) > 1 {
		left := stack[len(stack)-1].left
		err := NewStructuralError(
			left.Range,
			"left encloser `%s` without right encloser",
			left.Name,
		)
		err.Hint = "add the matching right bracket"
		return nil, layerCount, err
	}

	bottom := stack[0].items
	var bottomRange ast.Range
	if len(items) > 0 {
		bottomRange = ast.Spanning(items[0], items[len(items)-1])
	}

	result, err := r.resolveLayer(bottom, bottomRange)
	if err != nil {
		return nil, layerCount, err
	}

	r.config.Logger.Trace().
		Stringer("result", result).
		Msg("resolved expression")

	return result, layerCount, nil
}

func (r *Resolver) resolveBracketLayer(l layer, right ast.Operator) (ast.Expression, error) {
	if r.tracingEnabled() {
		startTime := time.Now()
		defer func() {
			r.reportLayerTrace(l.left.Name, len(l.items), time.Since(startTime))
		}()
	}

	var arguments []ast.Expression

	if len(l.items) > 0 {
		argument, err := r.resolveLayer(l.items, ast.Spanning(l.left, right))
		if err != nil {
			return nil, err
		}
		arguments = []ast.Expression{argument}
	}

	enclosing := ast.NewEnclosingExpression(l.left, right, arguments)

	r.config.Logger.Trace().
		Str("left", l.left.Name).
		Str("right", right.Name).
		Int("items", len(l.items)).
		Stringer("result", enclosing).
		Msg("resolved bracket layer")

	return enclosing, nil
}
