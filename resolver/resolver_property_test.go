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

package resolver_test

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/resolver"
)

func operands(count int, operator func(string) element, spellings ...string) []element {
	elements := []element{operand("x0")}
	for i := 1; i < count; i++ {
		spelling := spellings[i%len(spellings)]
		elements = append(elements, operator(spelling), operand(fmt.Sprintf("x%d", i)))
	}
	return elements
}

func TestResolve_Properties(t *testing.T) {

	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("repeated operator is one flat application", prop.ForAll(
		func(count int, tightness bool) bool {
			operator := loose
			if tightness {
				operator = tight
			}

			result, err := resolve(operands(count, operator, "+")...)
			if err != nil {
				return false
			}

			operation, ok := result.(*ast.OperatorExpression)
			return ok &&
				operation.Operator.Name == "+" &&
				len(operation.Arguments) == count
		},
		gen.IntRange(2, 64),
		gen.Bool(),
	))

	properties.Property("compatible chaining operators are one chain", prop.ForAll(
		func(count int, spellings []string) bool {
			if len(spellings) == 0 {
				spellings = []string{"<"}
			}

			result, err := resolve(operands(count, loose, spellings...)...)
			if err != nil {
				return false
			}

			chain, ok := result.(*ast.ChainExpression)
			return ok && len(chain.Links) == count-1
		},
		gen.IntRange(2, 32),
		gen.SliceOf(gen.OneConstOf("<", "≤", "=", "≡")),
	))

	properties.Property("brackets resolve to their contents", prop.ForAll(
		func(depth int) bool {
			var elements []element
			for i := 0; i < depth; i++ {
				elements = append(elements, left("("))
			}
			elements = append(elements, operand("a"), loose("+"), operand("b"))
			for i := 0; i < depth; i++ {
				elements = append(elements, right(")"))
			}

			result, err := resolve(elements...)
			if err != nil {
				return false
			}

			for i := 0; i < depth; i++ {
				enclosing, ok := result.(*ast.EnclosingExpression)
				if !ok || len(enclosing.Arguments) != 1 {
					return false
				}
				result = enclosing.Arguments[0]
			}

			return result.String() == "(a + b)"
		},
		gen.IntRange(0, 100),
	))

	properties.Property("unbalanced brackets are structural errors", prop.ForAll(
		func(opened int, closed int) bool {
			if opened == closed {
				return true
			}

			var elements []element
			for i := 0; i < opened; i++ {
				elements = append(elements, left("("))
			}
			elements = append(elements, operand("a"))
			for i := 0; i < closed; i++ {
				elements = append(elements, right(")"))
			}

			_, err := resolve(elements...)
			return resolver.KindOf(err) == resolver.ErrorKindStructural
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
