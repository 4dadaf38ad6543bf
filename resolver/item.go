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
	"fmt"
	"strings"

	"github.com/onflow/opresolve/ast"
	"github.com/onflow/opresolve/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=ItemKind

// ItemKind is the tag of an item in a flat operator/operand sequence
type ItemKind uint8

const (
	ItemKindUnknown ItemKind = iota
	ItemKindOperand
	ItemKindTightPrefix
	ItemKindLoosePrefix
	ItemKindPostfix
	ItemKindTightInfix
	ItemKindLooseInfix
	ItemKindLeft
	ItemKindRight
)

func (k ItemKind) IsPrefix() bool {
	return k == ItemKindTightPrefix || k == ItemKindLoosePrefix
}

func (k ItemKind) IsInfix() bool {
	return k == ItemKindTightInfix || k == ItemKindLooseInfix
}

func (k ItemKind) IsBracket() bool {
	return k == ItemKindLeft || k == ItemKindRight
}

// IsTight returns true for operators written without surrounding whitespace
func (k ItemKind) IsTight() bool {
	return k == ItemKindTightPrefix || k == ItemKindTightInfix
}

// Item is an element of the sequence produced by the grammar stage.
// An operand item carries an already parsed expression,
// all other items carry an operator or bracket.
type Item struct {
	Kind       ItemKind
	Operator   ast.Operator
	Expression ast.Expression
}

var _ ast.HasPosition = Item{}

func NewOperand(expression ast.Expression) Item {
	return Item{
		Kind:       ItemKindOperand,
		Expression: expression,
	}
}

func NewOperatorItem(kind ItemKind, operator ast.Operator) Item {
	if kind == ItemKindOperand || kind == ItemKindUnknown {
		panic(errors.NewUnexpectedError("invalid operator item kind: %s", kind))
	}
	return Item{
		Kind:     kind,
		Operator: operator,
	}
}

func (i Item) StartPosition() ast.Position {
	if i.Kind == ItemKindOperand {
		return i.Expression.StartPosition()
	}
	return i.Operator.StartPosition()
}

func (i Item) EndPosition() ast.Position {
	if i.Kind == ItemKindOperand {
		return i.Expression.EndPosition()
	}
	return i.Operator.EndPosition()
}

func (i Item) String() string {
	switch i.Kind {
	case ItemKindOperand:
		return i.Expression.String()
	case ItemKindTightPrefix:
		return fmt.Sprintf("tight-prefix(%s)", i.Operator)
	case ItemKindLoosePrefix:
		return fmt.Sprintf("loose-prefix(%s)", i.Operator)
	case ItemKindPostfix:
		return fmt.Sprintf("postfix(%s)", i.Operator)
	case ItemKindTightInfix:
		return fmt.Sprintf("tight-infix(%s)", i.Operator)
	case ItemKindLooseInfix:
		return fmt.Sprintf("loose-infix(%s)", i.Operator)
	case ItemKindLeft:
		return fmt.Sprintf("left(%s)", i.Operator)
	case ItemKindRight:
		return fmt.Sprintf("right(%s)", i.Operator)
	}
	return i.Kind.String()
}

// FormatItems renders a sequence for diagnostics, e.g. `a loose-infix(+) b`
func FormatItems(items []Item) string {
	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	return sb.String()
}
