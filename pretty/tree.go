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

// Package pretty prints resolution errors with code excerpts,
// and resolved expressions as source or as a tree.
package pretty

import (
	"fmt"
	"strings"

	"github.com/turbolent/prettier"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
)

const indent = "    "

// Format prints the expression as source, breaking lines which are longer than the given width
func Format(expression ast.Expression, maxLineWidth int) string {
	var b strings.Builder
	prettier.Prettier(&b, expression.Doc(), maxLineWidth, indent)
	return b.String()
}

// Tree prints the structure of the expression, one node per line,
// with the children of a node indented below it
func Tree(expression ast.Expression) string {
	var b strings.Builder
	prettier.Prettier(&b, treeDoc(expression), 0, indent)
	return b.String()
}

func nodeLabel(expression ast.Expression) string {
	switch expression := expression.(type) {
	case *ast.IdentifierExpression:
		return fmt.Sprintf("identifier %s", expression.Identifier)

	case *ast.LiteralExpression:
		return fmt.Sprintf("literal %s", expression.Literal)

	case *ast.OperatorExpression:
		fixity := strings.TrimPrefix(expression.Fixity.String(), "Fixity")
		return fmt.Sprintf("%s %s", strings.ToLower(fixity), expression.Operator.Name)

	case *ast.ChainExpression:
		operators := expression.Operators()
		names := make([]string, len(operators))
		for i, operator := range operators {
			names[i] = operator.Name
		}
		return fmt.Sprintf("chain %s", strings.Join(names, " "))

	case *ast.JuxtapositionExpression:
		return "juxtaposition"

	case *ast.EnclosingExpression:
		return fmt.Sprintf("enclosing %s %s", expression.Left.Name, expression.Right.Name)

	default:
		panic(errors.NewUnreachableError())
	}
}

func treeDoc(expression ast.Expression) prettier.Doc {
	var children []prettier.Doc
	expression.Walk(func(child ast.Expression) {
		children = append(children,
			prettier.HardLine{},
			treeDoc(child),
		)
	})

	label := prettier.Text(nodeLabel(expression))
	if len(children) == 0 {
		return label
	}

	return prettier.Concat{
		label,
		prettier.Indent{
			Doc: prettier.Concat(children),
		},
	}
}
