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
)

type frameKind uint8

const (
	frameKindUnknown frameKind = iota
	frameKindTight
	frameKindLoose
	frameKindTightChain
	frameKindLooseChain
)

// chainLink is an operand which is followed by a chaining operator
type chainLink struct {
	operand  ast.Expression
	operator ast.Operator
}

// frame is a pending operator application of the infix reduction.
// Tight and loose frames hold one operator and the operands preceding each of its occurrences,
// chain frames hold the links of a chain so far.
// The right-most operand is not part of a frame until the frame is finished.
type frame struct {
	kind     frameKind
	operator ast.Operator
	operands []ast.Expression
	links    []chainLink
	// chainOperators are the distinct spellings of the operators in links
	chainOperators []string
}

func newOperatorFrame(tight bool, operand ast.Expression, operator ast.Operator) frame {
	kind := frameKindLoose
	if tight {
		kind = frameKindTight
	}
	return frame{
		kind:     kind,
		operator: operator,
		operands: []ast.Expression{operand},
	}
}

func newChainFrame(tight bool, operand ast.Expression, operator ast.Operator) frame {
	kind := frameKindLooseChain
	if tight {
		kind = frameKindTightChain
	}
	return frame{
		kind: kind,
		links: []chainLink{
			{
				operand:  operand,
				operator: operator,
			},
		},
		chainOperators: []string{operator.Name},
	}
}

func (f *frame) isChain() bool {
	switch f.kind {
	case frameKindTightChain, frameKindLooseChain:
		return true
	case frameKindTight, frameKindLoose:
		return false
	default:
		panic(errors.NewUnreachableError())
	}
}

func (f *frame) isTight() bool {
	return f.kind == frameKindTight || f.kind == frameKindTightChain
}

// lastOperator returns the operator precedence decisions are based on:
// the operator of a tight or loose frame, or the most recent operator of a chain
func (f *frame) lastOperator() ast.Operator {
	if f.isChain() {
		return f.links[len(f.links)-1].operator
	}
	return f.operator
}

// chainOperatorNames returns the distinct spellings of the operators in links
func (f *frame) chainOperatorNames() []string {
	var names []string
	for _, link := range f.links {
		if !slices.Contains(names, link.operator.Name) {
			names = append(names, link.operator.Name)
		}
	}
	return names
}

// frameStack is the stack of pending frames, the last element is the top
type frameStack []frame

func (s *frameStack) push(f frame) {
	*s = append(*s, f)
}

func (s *frameStack) peek() (*frame, bool) {
	count := len(*s)
	if count == 0 {
		return nil, false
	}
	return &(*s)[count-1], true
}

func (s *frameStack) pop() frame {
	count := len(*s)
	top := (*s)[count-1]
	*s = (*s)[:count-1]
	return top
}
