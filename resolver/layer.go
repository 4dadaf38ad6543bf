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

package resolver

import (
	"slices"

	"github.com/onflow/opresolve/ast"
)

const divisionOperator = "/"

// resolveLayer resolves the items of one bracket layer into a single expression.
// The items must not contain brackets.
// The given range is reported when the layer is empty.
func (r *Resolver) resolveLayer(items []Item, layerRange ast.Range) (ast.Expression, error) {
	items, err := r.resolvePostfix(items)
	if err != nil {
		return nil, err
	}

	items, err = r.resolveNonAssociative(items)
	if err != nil {
		return nil, err
	}

	items, err = r.resolvePrefix(items)
	if err != nil {
		return nil, err
	}

	items, err = r.resolveJuxtaposition(items)
	if err != nil {
		return nil, err
	}

	return r.resolveInfix(items, layerRange)
}

// resolvePostfix applies each postfix operator to the operand preceding it
func (r *Resolver) resolvePostfix(items []Item) ([]Item, error) {
	result := make([]Item, 0, len(items))

	for _, item := range items {
		if item.Kind != ItemKindPostfix {
			result = append(result, item)
			continue
		}

		last := len(result) - 1
		if last < 0 || result[last].Kind != ItemKindOperand {
			return nil, NewStructuralError(
				item.Operator.Range,
				"postfix operator `%s` without argument",
				item.Operator.Name,
			)
		}

		result[last] = NewOperand(
			ast.NewPostfixExpression(item.Operator, result[last].Expression),
		)
	}

	return result, nil
}

func (r *Resolver) isDivision(operator ast.Operator) bool {
	return r.table.Canonicalize(operator.Name).Equal(r.division)
}

// nonAssociativeConflict returns true if two neighboring infix operators are both non-associative,
// e.g. the two divisions of `a / b / c`, or `a / b ≠ c`
func (r *Resolver) nonAssociativeConflict(first, second ast.Operator) bool {
	return r.table.IsNonAssociative(first.Name) &&
		r.table.IsNonAssociative(second.Name)
}

// resolveNonAssociative rejects repeated non-associative operators,
// and applies tight divisions, which bind tighter than any other infix operator
func (r *Resolver) resolveNonAssociative(items []Item) ([]Item, error) {
	pending := slices.Clone(items)
	result := make([]Item, 0, len(items))

	for i := 0; i < len(pending); {
		remaining := pending[i:]

		if len(remaining) >= 4 &&
			remaining[0].Kind == ItemKindOperand &&
			remaining[1].Kind.IsInfix() &&
			remaining[2].Kind == ItemKindOperand &&
			remaining[3].Kind.IsInfix() &&
			r.nonAssociativeConflict(remaining[1].Operator, remaining[3].Operator) {

			return nil, &AssociativityError{
				First:  remaining[1].Operator,
				Second: remaining[3].Operator,
			}
		}

		if len(remaining) >= 3 &&
			remaining[0].Kind == ItemKindOperand &&
			remaining[1].Kind == ItemKindTightInfix &&
			remaining[2].Kind == ItemKindOperand &&
			r.isDivision(remaining[1].Operator) {

			// the application replaces the right operand and is rescanned
			pending[i+2] = NewOperand(
				ast.NewInfixExpression(
					remaining[1].Operator,
					remaining[0].Expression,
					remaining[2].Expression,
				),
			)
			i += 2
			continue
		}

		first := remaining[0]
		if first.Kind == ItemKindTightInfix && r.isDivision(first.Operator) {
			return nil, NewStructuralError(
				first.Operator.Range,
				"misuse of `%s`",
				first.Operator.Name,
			)
		}

		result = append(result, first)
		i++
	}

	return result, nil
}

// resolvePrefix applies each prefix operator to the operand following it,
// from right to left, so `- - a` is `-(-a)`
func (r *Resolver) resolvePrefix(items []Item) ([]Item, error) {
	// reversed holds the resolved remainder in reverse order,
	// so its last element is the item following the current one
	reversed := make([]Item, 0, len(items))

	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if !item.Kind.IsPrefix() {
			reversed = append(reversed, item)
			continue
		}

		operator := item.Operator

		last := len(reversed) - 1
		if last < 0 || reversed[last].Kind != ItemKindOperand {
			return nil, NewStructuralError(
				operator.Range,
				"prefix operator `%s` without argument",
				operator.Name,
			)
		}

		if last > 0 {
			next := reversed[last-1]

			switch {
			case item.Kind == ItemKindLoosePrefix && next.Kind == ItemKindTightInfix:
				return nil, NewPrecedenceError(
					operator.Range,
					next.Operator.Range,
					"loose prefix operator `%s` near tight operator `%s`",
					operator.Name,
					next.Operator.Name,
				)

			case item.Kind == ItemKindTightPrefix && next.Kind == ItemKindOperand && !r.config.NoSpace:
				return nil, NewPrecedenceError(
					operator.Range,
					ast.NewRangeFromPositioned(next),
					"prefix operator `%s` near loose juxtaposition",
					operator.Name,
				)
			}
		}

		reversed[last] = NewOperand(
			ast.NewPrefixExpression(operator, reversed[last].Expression),
		)
	}

	slices.Reverse(reversed)
	return reversed, nil
}

// resolveJuxtaposition combines each run of adjacent operands into one juxtaposition
func (r *Resolver) resolveJuxtaposition(items []Item) ([]Item, error) {
	result := make([]Item, 0, len(items))

	for i := 0; i < len(items); {
		end := i
		for end < len(items) && items[end].Kind == ItemKindOperand {
			end++
		}

		if end-i < 2 {
			result = append(result, items[i])
			i++
			continue
		}

		run := items[i:end]
		runRange := ast.Spanning(run[0], run[len(run)-1])

		if i > 0 {
			previous := items[i-1]
			if previous.Kind == ItemKindTightInfix {
				return nil, NewPrecedenceError(
					runRange,
					previous.Operator.Range,
					"precedence mismatch: `%s` and juxtaposition",
					previous.Operator.Name,
				)
			}
		}

		if end < len(items) {
			next := items[end]
			if next.Kind == ItemKindTightInfix {
				return nil, NewPrecedenceError(
					runRange,
					next.Operator.Range,
					"precedence mismatch: juxtaposition and `%s`",
					next.Operator.Name,
				)
			}
		}

		expressions := make([]ast.Expression, 0, len(run))
		for _, operand := range run {
			expressions = append(expressions, operand.Expression)
		}

		result = append(result, NewOperand(ast.NewJuxtapositionExpression(expressions)))
		i = end
	}

	return result, nil
}

// checkAlternation ensures the items are an alternation of operands and infix operators,
// starting and ending with an operand
func checkAlternation(items []Item, layerRange ast.Range) error {
	if len(items) == 0 {
		return NewStructuralError(layerRange, "empty juxtaposition/operation expression")
	}

	for i, item := range items {
		expectOperand := i%2 == 0

		switch {
		case expectOperand && item.Kind == ItemKindOperand,
			!expectOperand && item.Kind.IsInfix():
			continue

		case expectOperand && item.Kind.IsInfix():
			return NewStructuralError(
				item.Operator.Range,
				"interpreted `%s` with no left operand as infix",
				item.Operator.Name,
			)

		case item.Kind == ItemKindOperand:
			return NewProgramInvariantError(
				ast.Spanning(items[i-1], item),
				"failed to process juxtaposition",
			)

		default:
			return NewProgramInvariantError(
				ast.NewRangeFromPositioned(item),
				"unexpected %s in infix reduction",
				item,
			)
		}
	}

	last := items[len(items)-1]
	if last.Kind != ItemKindOperand {
		return NewStructuralError(
			last.Operator.Range,
			"interpreted `%s` with no right operand as infix",
			last.Operator.Name,
		)
	}

	return nil
}

// resolveInfix reduces an alternation of operands and infix operators
// using a stack of pending frames
func (r *Resolver) resolveInfix(items []Item, layerRange ast.Range) (ast.Expression, error) {
	err := checkAlternation(items, layerRange)
	if err != nil {
		return nil, err
	}

	var stack frameStack

	for i := 0; i+1 < len(items); i += 2 {
		operand := items[i].Expression
		operatorItem := items[i+1]

		err := r.shift(
			&stack,
			operand,
			operatorItem.Operator,
			operatorItem.Kind == ItemKindTightInfix,
		)
		if err != nil {
			return nil, err
		}
	}

	result := items[len(items)-1].Expression
	for len(stack) > 0 {
		top := stack.pop()
		result, err = r.finishFrame(top, result)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
