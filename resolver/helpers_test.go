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
	"unicode/utf8"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/precedence"
	"github.com/onflow/opresolve/resolver"
)

type element struct {
	kind resolver.ItemKind
	name string
}

func operand(name string) element {
	return element{kind: resolver.ItemKindOperand, name: name}
}

func loose(name string) element {
	return element{kind: resolver.ItemKindLooseInfix, name: name}
}

func tight(name string) element {
	return element{kind: resolver.ItemKindTightInfix, name: name}
}

func loosePrefix(name string) element {
	return element{kind: resolver.ItemKindLoosePrefix, name: name}
}

func tightPrefix(name string) element {
	return element{kind: resolver.ItemKindTightPrefix, name: name}
}

func postfix(name string) element {
	return element{kind: resolver.ItemKindPostfix, name: name}
}

func left(name string) element {
	return element{kind: resolver.ItemKindLeft, name: name}
}

func right(name string) element {
	return element{kind: resolver.ItemKindRight, name: name}
}

// sequence returns the items for the given elements,
// positioned as if they were written on one line, separated by a space
func sequence(elements ...element) []resolver.Item {
	items := make([]resolver.Item, 0, len(elements))

	offset := 0
	for _, e := range elements {
		width := utf8.RuneCountInString(e.name)
		r := ast.NewRange(
			ast.NewPosition(offset, 1, offset),
			ast.NewPosition(offset+width-1, 1, offset+width-1),
		)
		offset += width + 1

		if e.kind == resolver.ItemKindOperand {
			items = append(items, resolver.NewOperand(ast.NewIdentifierExpression(e.name, r)))
		} else {
			items = append(items, resolver.NewOperatorItem(e.kind, ast.NewOperator(e.name, r)))
		}
	}

	return items
}

func resolveWithConfig(config *resolver.Config, elements ...element) (ast.Expression, error) {
	return resolver.New(precedence.Default(), config).Resolve(sequence(elements...))
}

func resolve(elements ...element) (ast.Expression, error) {
	return resolveWithConfig(nil, elements...)
}
