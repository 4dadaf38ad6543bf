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
	"github.com/onflow/opresolve/errors"
	"github.com/onflow/opresolve/precedence"
)

type shiftAction uint8

const (
	shiftActionUnknown shiftAction = iota
	// shiftActionExtend adds the operand and operator to the top frame
	shiftActionExtend
	// shiftActionPush starts a new frame on top of the stack
	shiftActionPush
	// shiftActionFinish pops the top frame, folds it with the operand, and retries
	shiftActionFinish
)

// shift adds an operand and the infix operator following it to the frame stack
func (r *Resolver) shift(
	stack *frameStack,
	operand ast.Expression,
	operator ast.Operator,
	tight bool,
) error {
	chain := r.table.IsChain(operator.Name)

	for {
		top, ok := stack.peek()
		if !ok {
			stack.push(r.newFrame(chain, tight, operand, operator))
			return nil
		}

		action, err := r.decide(top, operator, chain, tight)
		if err != nil {
			return err
		}

		switch action {
		case shiftActionExtend:
			return r.extendFrame(top, operand, operator)

		case shiftActionPush:
			stack.push(r.newFrame(chain, tight, operand, operator))
			return nil

		case shiftActionFinish:
			operand, err = r.finishFrame(stack.pop(), operand)
			if err != nil {
				return err
			}

		default:
			panic(errors.NewUnreachableError())
		}
	}
}

func (r *Resolver) newFrame(chain bool, tight bool, operand ast.Expression, operator ast.Operator) frame {
	if chain {
		return newChainFrame(tight, operand, operator)
	}
	return newOperatorFrame(tight, operand, operator)
}

// decide determines how an operator is added, given the frame on top of the stack
func (r *Resolver) decide(
	top *frame,
	operator ast.Operator,
	chain bool,
	tight bool,
) (shiftAction, error) {

	topOperator := top.lastOperator()
	relation := r.table.Relation(operator.Name, topOperator.Name)

	if tight != top.isTight() {
		switch {
		case chain && top.isChain():
			return shiftActionUnknown, NewPrecedenceError(
				operator.Range,
				topOperator.Range,
				"chaining with inconsistent spacing: `%s` and `%s`",
				topOperator.Name,
				operator.Name,
			)

		case tight:
			// a tight operator must bind tighter than the loose operator it follows
			if relation == precedence.RelationHigher {
				return shiftActionPush, nil
			}
			return shiftActionUnknown, NewPrecedenceError(
				operator.Range,
				topOperator.Range,
				"loose operator `%s` near tight operator `%s`",
				topOperator.Name,
				operator.Name,
			)

		default:
			// a loose operator must bind less tightly than the tight operator it follows
			if relation == precedence.RelationLower {
				return shiftActionFinish, nil
			}
			return shiftActionUnknown, NewPrecedenceError(
				operator.Range,
				topOperator.Range,
				"tight operator `%s` near loose operator `%s`",
				topOperator.Name,
				operator.Name,
			)
		}
	}

	if chain && top.isChain() {
		return shiftActionExtend, nil
	}

	if !chain && !top.isChain() && operator.Name == topOperator.Name {
		return shiftActionExtend, nil
	}

	switch relation {
	case precedence.RelationHigher:
		return shiftActionPush, nil

	case precedence.RelationLower:
		return shiftActionFinish, nil

	case precedence.RelationEqual:
		if !chain && !top.isChain() {
			return shiftActionFinish, nil
		}

		nonChaining := operator
		if chain {
			nonChaining = topOperator
		}
		return shiftActionUnknown, NewPrecedenceError(
			nonChaining.Range,
			operator.Range,
			"chaining operator `%s` not parsed as such",
			nonChaining.Name,
		)

	case precedence.RelationNone:
		spacing := "loose"
		if tight {
			spacing = "tight"
		}
		return shiftActionUnknown, NewPrecedenceError(
			operator.Range,
			topOperator.Range,
			"%s operators `%s` and `%s` have incomparable precedence",
			spacing,
			topOperator.Name,
			operator.Name,
		)

	default:
		panic(errors.NewUnreachableError())
	}
}

func (r *Resolver) incompatibleChainingError(links []chainLink, operator ast.Operator) *PrecedenceError {
	first := links[0].operator
	return NewPrecedenceError(
		ast.Spanning(first, operator),
		first.Range,
		"incompatible chaining operators: `%s` and `%s`",
		first.Name,
		operator.Name,
	)
}

func (r *Resolver) extendFrame(top *frame, operand ast.Expression, operator ast.Operator) error {
	if !top.isChain() {
		top.operands = append(top.operands, operand)
		return nil
	}

	// a repeated spelling keeps the chain valid
	if !slices.Contains(top.chainOperators, operator.Name) {
		names := append(slices.Clone(top.chainOperators), operator.Name)
		if !r.table.IsValidChaining(names) {
			return r.incompatibleChainingError(top.links, operator)
		}
		top.chainOperators = names
	}

	top.links = append(top.links, chainLink{
		operand:  operand,
		operator: operator,
	})
	return nil
}

// finishFrame folds the frame and the last operand, i.e. the right operand of its last operator,
// into one expression
func (r *Resolver) finishFrame(f frame, last ast.Expression) (ast.Expression, error) {
	if !f.isChain() {
		if len(f.operands) < 1 {
			return nil, NewProgramInvariantError(
				f.operator.Range,
				"frame of operator `%s` has no operands",
				f.operator.Name,
			)
		}

		arguments := make([]ast.Expression, 0, len(f.operands)+1)
		arguments = append(arguments, f.operands...)
		arguments = append(arguments, last)

		return ast.NewMultifixExpression(f.operator, arguments), nil
	}

	if len(f.links) == 0 {
		return nil, NewStructuralError(
			ast.NewRangeFromPositioned(last),
			"empty chain expression",
		)
	}

	if !r.table.IsValidChaining(f.chainOperatorNames()) {
		return nil, r.incompatibleChainingError(f.links, f.lastOperator())
	}

	links := make([]ast.ChainLink, 0, len(f.links))
	for i, link := range f.links {
		expression := last
		if i+1 < len(f.links) {
			expression = f.links[i+1].operand
		}
		links = append(links, ast.ChainLink{
			Operator:   link.operator,
			Expression: expression,
		})
	}

	return ast.NewChainExpression(f.links[0].operand, links), nil
}
